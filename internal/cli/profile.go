package cli

import (
	"fmt"

	"github.com/Davincible/gf2m/internal/validation"
	"github.com/Davincible/gf2m/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewProfileCommand creates a command group for saved field profiles
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved field profiles",
		Long: `Save, list, show and delete named field definitions. Saved profiles
are stored next to the configuration file and can be selected with
--profile. Builtin profiles cover the AES, GCM and NIST binary fields.`,
	}

	cmd.AddCommand(
		newProfileAddCommand(),
		newProfileListCommand(),
		newProfileShowCommand(),
		newProfileDeleteCommand(),
	)

	return cmd
}

func openConfig() (*config.ConfigManager, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cm, nil
}

func newProfileAddCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add [name] [modulus]",
		Short: "Save a field profile",
		Example: `  gf2m profile add alt8 "x^8 + x^4 + x^3 + x^2 + 1"
  gf2m profile add ghash 0x100000000000000000000000000000087`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateProfileName(args[0]); err != nil {
				return err
			}
			if err := validation.ValidatePolynomial(args[1]); err != nil {
				return err
			}

			cm, err := openConfig()
			if err != nil {
				return err
			}

			profile := &config.FieldProfile{
				Name:        args[0],
				Description: description,
				Modulus:     validation.SanitizeInput(args[1]),
			}
			if err := cm.AddProfile(profile); err != nil {
				return fmt.Errorf("failed to add profile: %w", err)
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Saved profile '%s' (GF(2^%d))\n", profile.Name, profile.Degree)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")

	return cmd
}

func newProfileListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List field profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := openConfig()
			if err != nil {
				return err
			}

			profiles := cm.ListProfiles()
			w := cmd.OutOrStdout()
			if outputJSON, _ := cmd.Flags().GetBool("json"); outputJSON {
				return writeJSON(w, profiles)
			}

			cyan := color.New(color.FgCyan, color.Bold)
			for _, p := range profiles {
				cyan.Fprintf(w, "%-8s", p.Name)
				fmt.Fprintf(w, " GF(2^%d)  %s\n", p.Degree, p.Description)
			}
			return nil
		},
	}
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a field profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := openConfig()
			if err != nil {
				return err
			}
			profile, err := cm.GetProfile(args[0])
			if err != nil {
				return err
			}
			field, err := profile.Field()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			return writeFieldInfo(cmd, field, format)
		},
	}
}

func newProfileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved field profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := openConfig()
			if err != nil {
				return err
			}
			if err := cm.DeleteProfile(args[0]); err != nil {
				return err
			}

			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "Deleted profile '%s'\n", args[0])
			return nil
		},
	}
}
