package cli

import (
	"fmt"
	"strconv"

	"github.com/Davincible/gf2m/internal/validation"
	"github.com/Davincible/gf2m/pkg/gf2m"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// FieldInfo is the JSON output of the field and irreducible commands
type FieldInfo struct {
	Degree    int               `json:"degree"`
	Order     string            `json:"order"`
	Modulus   PolynomialResult  `json:"modulus"`
	Generator *PolynomialResult `json:"generator,omitempty"`
}

func newFieldInfo(f *gf2m.Field) FieldInfo {
	info := FieldInfo{
		Degree:  f.Degree(),
		Order:   f.Order().String(),
		Modulus: newPolynomialResult(f.Modulus()),
	}
	if f.Degree() <= gf2m.MaxTableDegree {
		if table, err := gf2m.NewLogTable(f); err == nil {
			g := newPolynomialResult(table.Generator().Polynomial())
			info.Generator = &g
		}
	}
	return info
}

func writeFieldInfo(cmd *cobra.Command, f *gf2m.Field, format string) error {
	w := cmd.OutOrStdout()
	if outputJSON, _ := cmd.Flags().GetBool("json"); outputJSON {
		return writeJSON(w, newFieldInfo(f))
	}

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	green.Fprintf(w, "=== GF(2^%d) ===\n", f.Degree())
	yellow.Fprint(w, "Modulus:")
	fmt.Fprintf(w, " %s\n", formatPolynomial(f.Modulus(), format))
	yellow.Fprint(w, "Order:")
	fmt.Fprintf(w, " %s\n", f.Order())
	if info := newFieldInfo(f); info.Generator != nil {
		yellow.Fprint(w, "Generator:")
		fmt.Fprintf(w, " %s\n", info.Generator.Text)
	}
	return nil
}

func NewFieldCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "field",
		Short: "Show the selected field",
		Long: `Show the degree, modulus and order of the field selected by --degree,
--modulus, --profile or the configured defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			field, err := resolveField(cmd)
			if err != nil {
				return err
			}
			return writeFieldInfo(cmd, field, format)
		},
	}
}

func NewIrreducibleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "irreducible [degree]",
		Short: "Print the irreducible polynomial used for a degree",
		Long: `Print the irreducible polynomial of the given degree used as the field
modulus: the customary polynomial for standard fields, otherwise the
lowest trinomial or pentanomial.`,
		Example: `  gf2m irreducible 163
  gf2m irreducible 64 --format hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid degree %q", args[0])
			}
			if err := validation.ValidateDegree(m); err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			field, err := gf2m.NewField(m)
			if err != nil {
				return err
			}
			return writeFieldInfo(cmd, field, format)
		},
	}
}

// CheckResult is the JSON output of the check command
type CheckResult struct {
	Polynomial  PolynomialResult `json:"polynomial"`
	Irreducible bool             `json:"irreducible"`
}

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [polynomial]",
		Short: "Test a polynomial for irreducibility",
		Long:  `Test whether a polynomial is irreducible over GF(2) using Ben-Or's algorithm.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := validation.ParsePolynomial(args[0])
			if err != nil {
				return err
			}
			if p.Degree() > gf2m.MaxParseDegree {
				return fmt.Errorf("degree %d too large", p.Degree())
			}

			irreducible := gf2m.IsIrreducible(p)
			w := cmd.OutOrStdout()

			if outputJSON, _ := cmd.Flags().GetBool("json"); outputJSON {
				return writeJSON(w, CheckResult{
					Polynomial:  newPolynomialResult(p),
					Irreducible: irreducible,
				})
			}

			if irreducible {
				color.New(color.FgGreen, color.Bold).Fprintf(w, "✓ %s is irreducible\n", p)
			} else {
				color.New(color.FgRed, color.Bold).Fprintf(w, "✗ %s is reducible\n", p)
			}
			return nil
		},
	}
}

// RenderResult is the JSON output of the render command
type RenderResult struct {
	PolynomialResult
	Kind         string `json:"kind"`
	Coefficients []int  `json:"coefficients"`
}

func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [polynomial]",
		Short: "Show a polynomial in every supported notation",
		Long: `Parse a polynomial given as bits (highest degree first), hex or a sum
of powers of x, and print it in each notation. The bit string output
lists the constant term first.`,
		Example: `  gf2m render 1011
  gf2m render "x^8 + x^4 + x^3 + x + 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := validation.ParsePolynomial(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outputJSON, _ := cmd.Flags().GetBool("json"); outputJSON {
				return writeJSON(w, RenderResult{
					PolynomialResult: newPolynomialResult(p),
					Kind:             p.Kind().String(),
					Coefficients:     p.Coefficients(),
				})
			}

			yellow := color.New(color.FgYellow)
			rows := []struct{ label, value string }{
				{"Text", p.Render(false)},
				{"Bits (x^0 first)", p.Render(true)},
				{"Hex", p.Hex()},
				{"Coefficients", formatPolynomial(p, validation.FormatCoeffs)},
				{"Degree", strconv.Itoa(p.Degree())},
				{"Kind", p.Kind().String()},
			}
			for _, row := range rows {
				yellow.Fprintf(w, "%s:", row.label)
				fmt.Fprintf(w, " %s\n", row.value)
			}
			return nil
		},
	}
}

// LogResult is the JSON output of the log command
type LogResult struct {
	Field     string           `json:"field"`
	Element   PolynomialResult `json:"element"`
	Generator PolynomialResult `json:"generator"`
	Log       int              `json:"log"`
}

func NewLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log [a]",
		Short: "Discrete logarithm in a small field",
		Long: fmt.Sprintf(`Compute k with g^k = a, where g is the smallest generator of the
multiplicative group. Available for fields up to GF(2^%d).`, gf2m.MaxTableDegree),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := validation.ParsePolynomial(args[0])
			if err != nil {
				return err
			}
			field, err := resolveField(cmd)
			if err != nil {
				return err
			}
			table, err := gf2m.NewLogTable(field)
			if err != nil {
				return err
			}

			a := field.FromPolynomial(p)
			k, err := table.Log(a)
			if err != nil {
				return fmt.Errorf("log failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if outputJSON, _ := cmd.Flags().GetBool("json"); outputJSON {
				return writeJSON(w, LogResult{
					Field:     field.String(),
					Element:   newPolynomialResult(a.Polynomial()),
					Generator: newPolynomialResult(table.Generator().Polynomial()),
					Log:       k,
				})
			}

			fmt.Fprintf(w, "%s = (%s)^%d\n", a, table.Generator(), k)
			return nil
		},
	}
}
