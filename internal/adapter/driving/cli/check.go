package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

type strengthOutput struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Strength string   `json:"strength"`
	Tips     []string `json:"tips"`
}

func newCheckCommand(_ *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password against the five strength rules",
		Long: `Score a password: one point each for a length of at least 8, an uppercase
letter, a lowercase letter, a digit, and a special character. 5 is strong,
3-4 is medium, anything lower is weak.

The password is read from the terminal without echo when not given as an
argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				var err error
				password, err = readSecret(cmd, "Enter your password: ")
				if err != nil {
					return err
				}
			}

			result := application.EvaluateStrength(password)

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), strengthOutput{
					Score:    result.Score,
					MaxScore: model.MaxStrengthScore,
					Strength: string(result.Strength()),
					Tips:     result.Tips,
				})
			case "text":
				printStrength(cmd.OutOrStdout(), result)
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func printStrength(w io.Writer, result model.StrengthResult) {
	switch result.Strength() {
	case model.StrengthStrong:
		color.New(color.FgGreen, color.Bold).Fprintf(w, "Strong Password (%d/%d)\n", result.Score, model.MaxStrengthScore)
	case model.StrengthMedium:
		color.New(color.FgYellow, color.Bold).Fprintf(w, "Medium Password (%d/%d)\n", result.Score, model.MaxStrengthScore)
	default:
		color.New(color.FgRed, color.Bold).Fprintf(w, "Weak Password (%d/%d)\n", result.Score, model.MaxStrengthScore)
	}

	if len(result.Tips) == 0 {
		return
	}
	fmt.Fprintln(w, "Tips to Improve Password Strength:")
	for _, tip := range result.Tips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
