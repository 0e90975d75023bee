package charset

import "strings"

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = `!@#$%^&*(),.?":{}|<>`
)

// Class is one of the character classes a password is composed from.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Special
)

// Classes lists every class in the order the generator draws its mandatory characters.
var Classes = []Class{Lowercase, Uppercase, Digit, Special}

// Alphabet returns the fixed set of characters belonging to the class.
func (c Class) Alphabet() string {
	switch c {
	case Lowercase:
		return LowercaseChars
	case Uppercase:
		return UppercaseChars
	case Digit:
		return DigitChars
	case Special:
		return SpecialChars
	default:
		return ""
	}
}

// In reports whether s contains at least one character of the class.
func (c Class) In(s string) bool {
	return strings.ContainsAny(s, c.Alphabet())
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// All returns the union of every class alphabet.
func All() string {
	return LowercaseChars + UppercaseChars + DigitChars + SpecialChars
}
