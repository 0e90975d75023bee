package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/vaultpass/passcheck-go/internal/strength"
)

var divider = strings.Repeat("=", 50)

// Render writes a human-readable report of res. The password is masked.
func Render(w io.Writer, res strength.Result) {
	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintln(w, "PASSWORD STRENGTH ANALYSIS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Password: %s\n", res.Masked())
	fmt.Fprintf(w, "Strength: %s\n", res.Label)
	fmt.Fprintf(w, "Score: %d/%d\n", res.Score, res.MaxScore)

	if len(res.Feedback) == 0 {
		fmt.Fprintln(w, "\nExcellent! Your password meets all security criteria.")
		return
	}

	fmt.Fprintln(w, "\nSuggestions for improvement:")
	for i, s := range res.Feedback {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}
