package crypto

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/vaultpass/passcheck-go/internal/charset"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 12
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 4")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator builds random passwords containing every character class.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	src Source
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewSecureGenerator returns a Generator backed by a ChaCha8 stream seeded from crypto/rand.
func NewSecureGenerator() (*Generator, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding generator: %w", err)
	}
	return NewGenerator(rand.New(rand.NewChaCha8(seed))), nil
}

// Generate returns a password of the given length with at least one lowercase,
// uppercase, digit and special character. Lengths outside [MinLength, MaxLength]
// are rejected rather than adjusted.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	result := make([]byte, length)

	// One character from each class first.
	for i, class := range charset.Classes {
		result[i] = g.pick(class.Alphabet())
	}

	pool := charset.All()
	for i := len(charset.Classes); i < length; i++ {
		result[i] = g.pick(pool)
	}

	g.shuffle(result)

	return string(result), nil
}

func (g *Generator) pick(alphabet string) byte {
	return alphabet[g.src.IntN(len(alphabet))]
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
