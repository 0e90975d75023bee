// Package cli is the interactive terminal front end for the checker and generator.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

// Shell runs the menu loop over a line-oriented reader.
type Shell struct {
	in            *bufio.Scanner
	out           io.Writer
	gen           *crypto.Generator
	defaultLength int
}

// New returns a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, gen *crypto.Generator, defaultLength int) *Shell {
	return &Shell{
		in:            bufio.NewScanner(in),
		out:           out,
		gen:           gen,
		defaultLength: defaultLength,
	}
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "PASSWORD STRENGTH CHECKER")
	fmt.Fprintln(s.out, divider)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "\nOptions:")
		fmt.Fprintln(s.out, "1. Check password strength")
		fmt.Fprintln(s.out, "2. Generate strong password")
		fmt.Fprintln(s.out, "3. Exit")

		choice, ok := s.prompt("\nEnter your choice (1-3): ")
		if !ok {
			return s.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if !s.check() {
				return s.in.Err()
			}
		case "2":
			if !s.generate() {
				return s.in.Err()
			}
		case "3":
			fmt.Fprintln(s.out, "\nThank you for using Password Strength Checker!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

// prompt prints label and reads one line. It returns false once input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) check() bool {
	password, ok := s.prompt("\nEnter password to check: ")
	if !ok {
		return false
	}
	if password == "" {
		fmt.Fprintln(s.out, "Please enter a valid password.")
		return true
	}

	Render(s.out, strength.Evaluate(password))
	return true
}

func (s *Shell) generate() bool {
	input, ok := s.prompt(fmt.Sprintf("\nEnter desired password length (default %d): ", s.defaultLength))
	if !ok {
		return false
	}

	length := s.defaultLength
	if input = strings.TrimSpace(input); input != "" {
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			return true
		}
		length = n
	}

	password, err := s.gen.Generate(length)
	switch {
	case errors.Is(err, crypto.ErrLengthTooShort):
		fmt.Fprintf(s.out, "Minimum length is %d characters.\n", crypto.MinLength)
		return true
	case errors.Is(err, crypto.ErrLengthTooLong):
		fmt.Fprintf(s.out, "Maximum length is %d characters.\n", crypto.MaxLength)
		return true
	case err != nil:
		slog.Error("password generation failed", "error", err)
		fmt.Fprintln(s.out, "Could not generate a password, please try again.")
		return true
	}

	fmt.Fprintf(s.out, "\nGenerated strong password: %s\n", password)
	Render(s.out, strength.Evaluate(password))
	return true
}
