package crypto

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/vaultpass/passcheck-go/internal/charset"
)

// fixedSource always returns the same index, clamped to the requested range.
type fixedSource struct{ n int }

func (f fixedSource) IntN(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewSecureGenerator()
	if err != nil {
		t.Fatalf("NewSecureGenerator() unexpected error: %v", err)
	}
	return g
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "default length", length: DefaultLength},
		{name: "minimum length", length: MinLength},
		{name: "maximum length", length: MaxLength},
		{name: "typical length", length: 32},
		{name: "length too short", length: 3, wantErr: ErrLengthTooShort},
		{name: "zero length", length: 0, wantErr: ErrLengthTooShort},
		{name: "negative length", length: -5, wantErr: ErrLengthTooShort},
		{name: "length too long", length: 200, wantErr: ErrLengthTooLong},
	}

	g := newTestGenerator(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := g.Generate(tt.length)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.length)
			}
		})
	}
}

func TestGenerateContainsEveryClass(t *testing.T) {
	g := newTestGenerator(t)

	// Run many times, including at the minimum length where every position is mandatory.
	for _, length := range []int{MinLength, 5, 8, 16} {
		for i := 0; i < 200; i++ {
			password, err := g.Generate(length)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, class := range charset.Classes {
				if !class.In(password) {
					t.Errorf("password %q missing %s character", password, class)
				}
			}
		}
	}
}

func TestGenerateUsesOnlyKnownCharacters(t *testing.T) {
	g := newTestGenerator(t)
	pool := charset.All()

	password, err := g.Generate(MaxLength)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	for _, ch := range password {
		if !strings.ContainsRune(pool, ch) {
			t.Errorf("password contains unexpected character %q", string(ch))
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	g := newTestGenerator(t)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := g.Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(7, 11)))
	b := NewGenerator(rand.New(rand.NewPCG(7, 11)))

	for i := 0; i < 10; i++ {
		pa, err := a.Generate(20)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		pb, err := b.Generate(20)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if pa != pb {
			t.Errorf("seeded generators diverged: %q != %q", pa, pb)
		}
	}
}

func TestGenerateWithFixedSource(t *testing.T) {
	// Index 0 everywhere: mandatory picks are "aA0!", fill repeats 'a', and the
	// shuffle swaps each position with the first.
	g := NewGenerator(fixedSource{n: 0})

	password, err := g.Generate(MinLength)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "A0!a" {
		t.Errorf("Generate() = %q, want %q", password, "A0!a")
	}

	password, err = g.Generate(6)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	for _, class := range charset.Classes {
		if !class.In(password) {
			t.Errorf("password %q missing %s character", password, class)
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p, err := g.Generate(16)
				if err != nil {
					errs <- err
					return
				}
				if len(p) != 16 {
					errs <- errors.New("wrong length")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Generate() error: %v", err)
	}
}
