package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Davincible/gf2m/internal/validation"
	"github.com/Davincible/gf2m/pkg/config"
	"github.com/Davincible/gf2m/pkg/gf2m"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PolynomialResult is the JSON rendering of a polynomial
type PolynomialResult struct {
	Text   string `json:"text"`
	Bits   string `json:"bits"`
	Hex    string `json:"hex"`
	Degree int    `json:"degree"`
}

// OperationResult is the JSON output of an arithmetic command
type OperationResult struct {
	Operation string                      `json:"operation"`
	Field     string                      `json:"field,omitempty"`
	Operands  []PolynomialResult          `json:"operands"`
	Results   map[string]PolynomialResult `json:"results"`
}

func newPolynomialResult(p gf2m.Polynomial) PolynomialResult {
	return PolynomialResult{
		Text:   p.String(),
		Bits:   p.Render(true),
		Hex:    p.Hex(),
		Degree: p.Degree(),
	}
}

// loadConfigManager returns the user's configuration, or nil when it cannot
// be read; commands then fall back to built-in defaults.
func loadConfigManager() *config.ConfigManager {
	cm, err := config.NewConfigManager()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		return nil
	}
	return cm
}

func defaultSettings(cm *config.ConfigManager) config.DefaultSettings {
	if cm == nil {
		return config.DefaultConfig().Defaults
	}
	return cm.GetConfig().Defaults
}

// resolveField picks the field from --modulus, --profile, --degree or the
// configured defaults, in that order.
func resolveField(cmd *cobra.Command) (*gf2m.Field, error) {
	flags := cmd.Flags()
	modulusText, _ := flags.GetString("modulus")
	profileName, _ := flags.GetString("profile")
	degree, _ := flags.GetInt("degree")

	if modulusText != "" {
		modulus, err := validation.ParsePolynomial(modulusText)
		if err != nil {
			return nil, fmt.Errorf("invalid modulus: %w", err)
		}
		return gf2m.NewFieldFromModulus(modulus)
	}

	cm := loadConfigManager()
	defaults := defaultSettings(cm)

	if profileName == "" && !flags.Changed("degree") {
		profileName = defaults.Profile
		degree = defaults.Degree
	}

	if profileName != "" {
		if cm == nil {
			return nil, fmt.Errorf("profile '%s' requested but config is unavailable", profileName)
		}
		profile, err := cm.GetProfile(profileName)
		if err != nil {
			return nil, err
		}
		return profile.Field()
	}

	if err := validation.ValidateDegree(degree); err != nil {
		return nil, err
	}
	slog.Debug("Resolving field", "degree", degree)
	return gf2m.NewField(degree)
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = defaultSettings(loadConfigManager()).Format
	}
	if err := validation.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func formatPolynomial(p gf2m.Polynomial, format string) string {
	switch format {
	case validation.FormatBits:
		return p.Render(true)
	case validation.FormatHex:
		return p.Hex()
	case validation.FormatCoeffs:
		coeffs := p.Coefficients()
		parts := make([]string, len(coeffs))
		for i, c := range coeffs {
			parts[i] = strconv.Itoa(c)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return p.String()
	}
}

func parsePolynomialArgs(args []string) ([]gf2m.Polynomial, error) {
	polys := make([]gf2m.Polynomial, len(args))
	for i, arg := range args {
		p, err := validation.ParsePolynomial(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		polys[i] = p
	}
	return polys, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// configureColor disables colored output when stdout is not a terminal or
// the user turned it off.
func configureColor(cmd *cobra.Command) {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
		return
	}
	if cm := loadConfigManager(); cm != nil && !cm.GetConfig().UI.UseColor {
		color.NoColor = true
	}
}

// printResults writes labelled polynomials as colored text
func printResults(w io.Writer, title string, field *gf2m.Field, labels []string, values []gf2m.Polynomial, format string) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	green.Fprintf(w, "=== %s ===\n", title)
	if field != nil {
		cyan.Fprintf(w, "Field: %s\n", field)
	}
	for i, label := range labels {
		yellow.Fprintf(w, "%s:", label)
		fmt.Fprintf(w, " %s\n", formatPolynomial(values[i], format))
	}
}
