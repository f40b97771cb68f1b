package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the gf2m command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gf2m",
		Short: "Arithmetic over binary polynomials and GF(2^m)",
		Long: `gf2m performs arithmetic on polynomials with coefficients in GF(2) and
on elements of the finite fields GF(2^m) they generate.

Polynomials can be written as:
- a sum of powers of x:   "x^3 + x + 1"
- a bit string:           1011 (highest degree first)
- a hex integer:          0xb  (bit i is the coefficient of x^i)

The field is selected with --modulus, --profile or --degree, falling back
to the configured defaults (GF(2^8) with the AES polynomial). Use --poly
to work with bare polynomials without reduction.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			configureColor(cmd)
		},
	}

	rootCmd.AddCommand(NewArithmeticCommands()...)
	rootCmd.AddCommand(
		NewInverseCommand(),
		NewPowCommand(),
		NewRenderCommand(),
		NewFieldCommand(),
		NewIrreducibleCommand(),
		NewCheckCommand(),
		NewLogCommand(),
		NewRandomCommand(),
		NewProfileCommand(),
	)

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.BoolP("json", "j", false, "Output in JSON format")
	flags.Bool("no-color", false, "Disable colored output")
	flags.IntP("degree", "m", 8, "Field degree m for GF(2^m)")
	flags.String("modulus", "", "Explicit irreducible field polynomial")
	flags.StringP("profile", "p", "", "Named field profile")
	flags.StringP("format", "f", "", "Output format: text, bits, hex or coeffs")
	flags.Bool("poly", false, "Operate on bare polynomials without field reduction")

	return rootCmd
}
