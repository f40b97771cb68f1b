package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Davincible/gf2m/pkg/gf2m"
)

// MaxInputLength bounds user-supplied polynomial text.
const MaxInputLength = 8192

var (
	bitsPattern        = regexp.MustCompile(`^[01_]+$`)
	hexPattern         = regexp.MustCompile(`^0[xX][0-9a-fA-F_]+$`)
	termsPattern       = regexp.MustCompile(`^[0-9xX^+\s]+$`)
	profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,63}$`)
)

// Output formats understood by the CLI.
const (
	FormatText   = "text"
	FormatBits   = "bits"
	FormatHex    = "hex"
	FormatCoeffs = "coeffs"
)

func ValidatePolynomial(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("polynomial cannot be empty")
	}

	if len(input) > MaxInputLength {
		return fmt.Errorf("polynomial too long (max %d characters)", MaxInputLength)
	}

	if !bitsPattern.MatchString(input) && !hexPattern.MatchString(input) && !termsPattern.MatchString(input) {
		return fmt.Errorf("invalid polynomial %q: expected bits (1011), hex (0xb) or terms (x^3 + x + 1)", input)
	}

	return nil
}

// ParsePolynomial validates and parses a polynomial argument.
func ParsePolynomial(input string) (gf2m.Polynomial, error) {
	input = SanitizeInput(input)
	if err := ValidatePolynomial(input); err != nil {
		return gf2m.Polynomial{}, err
	}

	p, err := gf2m.Parse(input)
	if err != nil {
		return gf2m.Polynomial{}, fmt.Errorf("invalid polynomial %q: %w", input, err)
	}
	return p, nil
}

func ValidateDegree(m int) error {
	if m < 1 || m > gf2m.MaxDegree {
		return fmt.Errorf("degree must be between 1 and %d (got %d)", gf2m.MaxDegree, m)
	}
	return nil
}

func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatBits, FormatHex, FormatCoeffs:
		return nil
	}
	return fmt.Errorf("unknown format %q (use %s, %s, %s or %s)",
		format, FormatText, FormatBits, FormatHex, FormatCoeffs)
}

func ValidateProfileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q", name)
	}

	return nil
}

// SanitizeInput trims whitespace and joins multi-line input into one line.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, " ")
}
