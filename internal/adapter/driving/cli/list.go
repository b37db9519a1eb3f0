package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

type credentialOutput struct {
	ID       int64  `json:"id"`
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func newListCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved passwords",
		Long:  `List every saved entry in the order it was saved. Passwords are shown in plaintext.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}

			return a.withCredentials(cmd.Context(), func(svc *application.CredentialService) error {
				creds, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}

				if format == "json" {
					out := make([]credentialOutput, 0, len(creds))
					for _, c := range creds {
						out = append(out, credentialOutput{ID: c.ID, Site: c.Site, Username: c.Username, Password: c.Password})
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				return printCredentialsTable(cmd.OutOrStdout(), creds)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}

func printCredentialsTable(w io.Writer, creds []model.Credential) error {
	if len(creds) == 0 {
		fmt.Fprintln(w, "No saved passwords found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSITE\tUSERNAME\tPASSWORD")
	for _, c := range creds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Site, c.Username, c.Password)
	}
	return tw.Flush()
}
