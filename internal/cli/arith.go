package cli

import (
	"fmt"
	"math/big"

	"github.com/Davincible/gf2m/internal/validation"
	"github.com/Davincible/gf2m/pkg/gf2m"
	"github.com/spf13/cobra"
)

type namedResult struct {
	name  string
	value gf2m.Polynomial
}

type fieldOp func(a, b gf2m.FieldElement) ([]namedResult, error)
type polyOp func(a, b gf2m.Polynomial) ([]namedResult, error)

// newBinaryCommand builds a command taking two polynomials. Without --poly the
// operands are reduced into the selected field and fop is used; commands with
// a nil fop always work on bare polynomials.
func newBinaryCommand(use, short, long string, fop fieldOp, pop polyOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [a] [b]",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			polys, err := parsePolynomialArgs(args)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			rawPoly, _ := cmd.Flags().GetBool("poly")
			var (
				field   *gf2m.Field
				results []namedResult
			)

			if rawPoly || fop == nil {
				results, err = pop(polys[0], polys[1])
			} else {
				field, err = resolveField(cmd)
				if err != nil {
					return err
				}
				a, b := field.FromPolynomial(polys[0]), field.FromPolynomial(polys[1])
				polys = []gf2m.Polynomial{a.Polynomial(), b.Polynomial()}
				results, err = fop(a, b)
			}
			if err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}

			return writeOperation(cmd, use, field, polys, results, format)
		},
	}
}

func writeOperation(cmd *cobra.Command, op string, field *gf2m.Field, operands []gf2m.Polynomial, results []namedResult, format string) error {
	w := cmd.OutOrStdout()
	outputJSON, _ := cmd.Flags().GetBool("json")

	if outputJSON {
		out := OperationResult{
			Operation: op,
			Operands:  make([]PolynomialResult, len(operands)),
			Results:   make(map[string]PolynomialResult, len(results)),
		}
		if field != nil {
			out.Field = field.String()
		}
		for i, p := range operands {
			out.Operands[i] = newPolynomialResult(p)
		}
		for _, r := range results {
			out.Results[r.name] = newPolynomialResult(r.value)
		}
		return writeJSON(w, out)
	}

	labels := make([]string, 0, len(operands)+len(results))
	values := make([]gf2m.Polynomial, 0, len(operands)+len(results))
	for i, p := range operands {
		labels = append(labels, string(rune('a'+i)))
		values = append(values, p)
	}
	for _, r := range results {
		labels = append(labels, r.name)
		values = append(values, r.value)
	}
	printResults(w, op, field, labels, values, format)
	return nil
}

func single(name string, e gf2m.FieldElement, err error) ([]namedResult, error) {
	if err != nil {
		return nil, err
	}
	return []namedResult{{name, e.Polynomial()}}, nil
}

func singlePoly(name string, p gf2m.Polynomial, err error) ([]namedResult, error) {
	if err != nil {
		return nil, err
	}
	return []namedResult{{name, p}}, nil
}

// NewArithmeticCommands returns the two-operand arithmetic commands
func NewArithmeticCommands() []*cobra.Command {
	return []*cobra.Command{
		newBinaryCommand("add", "Add two elements (XOR)",
			`Add two polynomials. Over GF(2) this is the XOR of their coefficients.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				sum, err := a.Add(b)
				return single("sum", sum, err)
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				return singlePoly("sum", a.Add(b), nil)
			},
		),
		newBinaryCommand("sub", "Subtract two elements (same as add)",
			`Subtract two polynomials. In characteristic 2 this equals addition.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				diff, err := a.Sub(b)
				return single("difference", diff, err)
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				return singlePoly("difference", a.Sub(b), nil)
			},
		),
		newBinaryCommand("mul", "Multiply two elements",
			`Multiply two polynomials by shift-and-XOR, reducing modulo the field
polynomial unless --poly is given.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				prod, err := a.Mul(b)
				return single("product", prod, err)
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				return singlePoly("product", a.Mul(b), nil)
			},
		),
		newBinaryCommand("divmod", "Polynomial long division with remainder",
			`Divide a by b as polynomials, printing quotient and remainder.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				quo, err := a.FloorDiv(b)
				if err != nil {
					return nil, err
				}
				rem, err := a.Mod(b)
				if err != nil {
					return nil, err
				}
				return []namedResult{{"quotient", quo.Polynomial()}, {"remainder", rem.Polynomial()}}, nil
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				quo, rem, err := a.DivMod(b)
				if err != nil {
					return nil, err
				}
				return []namedResult{{"quotient", quo}, {"remainder", rem}}, nil
			},
		),
		newBinaryCommand("mod", "Remainder of polynomial division",
			`Compute a mod b as polynomials.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				rem, err := a.Mod(b)
				return single("remainder", rem, err)
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				rem, err := a.Mod(b)
				return singlePoly("remainder", rem, err)
			},
		),
		newBinaryCommand("div", "Divide two elements",
			`Divide a by b. In a field this multiplies a by the inverse of b;
with --poly it is the quotient of polynomial long division.`,
			func(a, b gf2m.FieldElement) ([]namedResult, error) {
				quo, err := a.Divide(b)
				return single("quotient", quo, err)
			},
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				quo, err := a.FloorDiv(b)
				return singlePoly("quotient", quo, err)
			},
		),
		newBinaryCommand("gcd", "Greatest common divisor of two polynomials",
			`Compute the greatest common divisor of two polynomials.`,
			nil,
			func(a, b gf2m.Polynomial) ([]namedResult, error) {
				return singlePoly("gcd", gf2m.GCD(a, b), nil)
			},
		),
	}
}

func NewInverseCommand() *cobra.Command {
	var modulusText string

	cmd := &cobra.Command{
		Use:   "inv [a]",
		Short: "Multiplicative inverse",
		Long: `Compute the multiplicative inverse of a polynomial with the extended
Euclidean algorithm, modulo the field polynomial or the polynomial given
with --mod.`,
		Example: `  # Inverse in the AES field
  gf2m inv 0x53 --profile aes

  # Inverse modulo an explicit polynomial
  gf2m inv "x^2 + 1" --mod "x^3 + x + 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			polys, err := parsePolynomialArgs(args)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			if modulusText != "" {
				modulus, err := validation.ParsePolynomial(modulusText)
				if err != nil {
					return fmt.Errorf("invalid modulus: %w", err)
				}
				inv, err := polys[0].MultiplicativeInverse(modulus)
				if err != nil {
					return fmt.Errorf("inv failed: %w", err)
				}
				return writeOperation(cmd, "inv", nil,
					[]gf2m.Polynomial{polys[0], modulus},
					[]namedResult{{"inverse", inv}}, format)
			}

			field, err := resolveField(cmd)
			if err != nil {
				return err
			}
			a := field.FromPolynomial(polys[0])
			inv, err := a.Inverse()
			if err != nil {
				return fmt.Errorf("inv failed: %w", err)
			}
			return writeOperation(cmd, "inv", field,
				[]gf2m.Polynomial{a.Polynomial()},
				[]namedResult{{"inverse", inv.Polynomial()}}, format)
		},
	}

	cmd.Flags().StringVar(&modulusText, "mod", "", "Invert modulo this polynomial instead of the field polynomial")

	return cmd
}

func NewPowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pow [a] [n]",
		Short: "Raise a field element to an integer power",
		Long: `Compute a^n in the selected field by square-and-multiply. Negative
exponents raise the inverse.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			polys, err := parsePolynomialArgs(args[:1])
			if err != nil {
				return err
			}
			n, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("invalid exponent %q", args[1])
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			field, err := resolveField(cmd)
			if err != nil {
				return err
			}
			a := field.FromPolynomial(polys[0])
			power, err := a.Pow(n)
			if err != nil {
				return fmt.Errorf("pow failed: %w", err)
			}
			return writeOperation(cmd, "pow", field,
				[]gf2m.Polynomial{a.Polynomial()},
				[]namedResult{{"power", power.Polynomial()}}, format)
		},
	}
}
