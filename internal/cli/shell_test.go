package cli

import (
	"bytes"
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

func runShell(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	gen := crypto.NewGenerator(rand.New(rand.NewPCG(5, 6)))
	sh := New(strings.NewReader(input), &out, gen, 12)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	Render(&out, strength.Evaluate("password"))

	got := out.String()
	assert.Contains(t, got, "PASSWORD STRENGTH ANALYSIS")
	assert.Contains(t, got, "Password: ********\n")
	assert.Contains(t, got, "Strength: Medium\n")
	assert.Contains(t, got, "Score: 4/9\n")
	assert.Contains(t, got, "Suggestions for improvement:")
	assert.Contains(t, got, "1. Add uppercase letters\n")
	assert.Contains(t, got, "4. Avoid common patterns like")
	assert.NotContains(t, got, "password\n")
}

func TestRenderAllRulesPassed(t *testing.T) {
	var out bytes.Buffer
	Render(&out, strength.Evaluate("MyStr0ng!Pass"))

	got := out.String()
	assert.Contains(t, got, "Strength: Very Strong\n")
	assert.Contains(t, got, "Score: 9/9\n")
	assert.Contains(t, got, "Excellent! Your password meets all security criteria.")
	assert.NotContains(t, got, "Suggestions")
	assert.NotContains(t, got, "MyStr0ng!Pass")
}

func TestShellCheck(t *testing.T) {
	out := runShell(t, "1\nMyStr0ng!Pass\n3\n")

	assert.Contains(t, out, "PASSWORD STRENGTH CHECKER")
	assert.Contains(t, out, "Password: *************\n")
	assert.Contains(t, out, "Score: 9/9")
	assert.NotContains(t, out, "MyStr0ng!Pass")
	assert.True(t, strings.HasSuffix(out, "Thank you for using Password Strength Checker!\n"))
}

func TestShellCheckEmptyPassword(t *testing.T) {
	out := runShell(t, "1\n\n3\n")
	assert.Contains(t, out, "Please enter a valid password.")
	assert.NotContains(t, out, "PASSWORD STRENGTH ANALYSIS")
}

func TestShellGenerate(t *testing.T) {
	out := runShell(t, "2\n16\n3\n")

	m := regexp.MustCompile(`Generated strong password: (\S+)\n`).FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	assert.Len(t, m[1], 16)
	assert.Contains(t, out, "Password: "+strings.Repeat("*", 16)+"\n")
}

func TestShellGenerateDefaultLength(t *testing.T) {
	out := runShell(t, "2\n\n3\n")

	assert.Contains(t, out, "(default 12)")
	m := regexp.MustCompile(`Generated strong password: (\S+)\n`).FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	assert.Len(t, m[1], 12)
}

func TestShellGenerateInvalidLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"non-numeric", "2\ntwelve\n3\n", "Please enter a valid number."},
		{"too short", "2\n3\n3\n", "Minimum length is 4 characters."},
		{"negative", "2\n-8\n3\n", "Minimum length is 4 characters."},
		{"too long", "2\n1000\n3\n", "Maximum length is 128 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runShell(t, tt.input)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Generated strong password")
		})
	}
}

func TestShellInvalidChoice(t *testing.T) {
	out := runShell(t, "9\n 3 \n")
	assert.Contains(t, out, "Invalid choice. Please enter 1, 2, or 3.")
	assert.Contains(t, out, "Thank you for using Password Strength Checker!")
}

func TestShellEndOfInput(t *testing.T) {
	out := runShell(t, "1\n")
	assert.NotContains(t, out, "Thank you")
}

func TestShellCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := New(strings.NewReader("3\n"), &out, crypto.NewGenerator(rand.New(rand.NewPCG(1, 1))), 12)
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}
