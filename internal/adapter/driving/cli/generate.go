package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// copyToClipboard is swapped out in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

func newGenerateCommand(a *app) *cobra.Command {
	var (
		cfg        model.GenerationConfig
		copyResult bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: `Generate a random password of the requested length. Every character is drawn
uniformly from the union of the selected classes, so a selected class is not
guaranteed to appear. Disable a class with e.g. --special=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				cfg.Length = a.cfg.DefaultLength
			}

			password, err := application.NewPasswordGenerator(nil).Generate(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)

			if copyResult {
				if err := copyToClipboard(password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&cfg.Length, "length", "l", 12, "password length (at least 6; default from PASSKEEP_GENERATOR_DEFAULT_LENGTH)")
	cmd.Flags().BoolVar(&cfg.IncludeUpper, "upper", true, "include uppercase letters (A-Z)")
	cmd.Flags().BoolVar(&cfg.IncludeLower, "lower", true, "include lowercase letters (a-z)")
	cmd.Flags().BoolVar(&cfg.IncludeDigits, "digits", true, "include numbers (0-9)")
	cmd.Flags().BoolVar(&cfg.IncludeSpecial, "special", true, "include special characters ("+application.SpecialCharacters+")")
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "also copy the password to the clipboard")
	return cmd
}
