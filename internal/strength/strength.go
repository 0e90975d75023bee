// Package strength scores passwords against a fixed set of composition heuristics.
package strength

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passcheck-go/internal/charset"
)

const (
	MaxScore = 9

	// MinLength is the shortest password that earns any length points.
	MinLength = 6
	// RecommendedLength earns the full length award.
	RecommendedLength = 8
	// MaxRepeat is the longest run of one character that is still accepted.
	MaxRepeat = 2
)

// CommonPatterns are substrings that cost a point when found, case-insensitively.
var CommonPatterns = []string{"123", "abc", "qwerty", "password", "111", "000"}

// Label is the qualitative bucket a score falls into.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Medium
	Strong
	VeryStrong
)

func (l Label) String() string {
	switch l {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LabelFor maps a score to its label using inclusive lower bounds.
func LabelFor(score int) Label {
	switch {
	case score >= 8:
		return VeryStrong
	case score >= 6:
		return Strong
	case score >= 4:
		return Medium
	case score >= 2:
		return Weak
	default:
		return VeryWeak
	}
}

// Result is the outcome of a single evaluation.
type Result struct {
	Password string   `json:"-"`
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Label    Label    `json:"strength"`
	Feedback []string `json:"feedback"`
}

// Masked returns one asterisk per character of the evaluated password.
func (r Result) Masked() string {
	return strings.Repeat("*", utf8.RuneCountInString(r.Password))
}

type rule struct {
	points   int
	pass     func(string) bool
	feedback string
}

var rules = []rule{
	{1, charset.Uppercase.In, "Add uppercase letters"},
	{1, charset.Lowercase.In, "Add lowercase letters"},
	{1, charset.Digit.In, "Add numbers"},
	{2, charset.Special.In, fmt.Sprintf("Add special characters (%s)", charset.SpecialChars)},
	{1, noLongRuns, "Avoid repeating characters more than twice"},
	{1, noCommonPatterns, "Avoid common patterns like " + quoteList(CommonPatterns)},
}

// Evaluate scores password. It accepts any string, including the empty one.
func Evaluate(password string) Result {
	res := Result{
		Password: password,
		MaxScore: MaxScore,
		Feedback: []string{},
	}

	switch n := utf8.RuneCountInString(password); {
	case n >= RecommendedLength:
		res.Score += 2
	case n >= MinLength:
		res.Score++
		res.Feedback = append(res.Feedback, fmt.Sprintf("Password should be at least %d characters long", RecommendedLength))
	default:
		res.Feedback = append(res.Feedback, fmt.Sprintf("Password is too short (minimum %d characters)", MinLength))
	}

	for _, r := range rules {
		if r.pass(password) {
			res.Score += r.points
		} else {
			res.Feedback = append(res.Feedback, r.feedback)
		}
	}

	res.Label = LabelFor(res.Score)
	return res
}

// noLongRuns reports whether no character repeats more than MaxRepeat times in a row.
func noLongRuns(s string) bool {
	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > MaxRepeat {
			return false
		}
		prev = r
	}
	return true
}

func noCommonPatterns(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range CommonPatterns {
		if strings.Contains(lower, p) {
			return false
		}
	}
	return true
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

// Meets reports whether the result scored at least minScore.
func (r Result) Meets(minScore int) bool {
	return r.Score >= minScore
}
