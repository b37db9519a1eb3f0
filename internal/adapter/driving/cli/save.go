package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/passkeep/internal/application"
)

func newSaveCommand(a *app) *cobra.Command {
	var req application.SaveCredentialRequest

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a site, username, and password",
		Long: `Save a site/username/password entry to the local database. All three values
are required. The password is prompted without echo when --password is not
given. Entries are stored in plaintext.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				password, err := readSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
				req.Password = password
			}

			if err := req.Validate(); err != nil {
				if errors.Is(err, application.ErrMissingRequiredField) {
					color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "Please fill in all fields.")
				}
				return err
			}

			return a.withCredentials(cmd.Context(), func(svc *application.CredentialService) error {
				saved, err := svc.Save(cmd.Context(), req)
				if err != nil {
					return err
				}

				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Password saved successfully! (id %d)\n", saved.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&req.Site, "site", "s", "", "website or app name")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}
