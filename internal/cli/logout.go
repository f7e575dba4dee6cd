package cli

import "github.com/spf13/cobra"

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and remove the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.Auth.Logout(a.ctx(cmd)); err != nil {
				return err
			}
			a.text.Logout()
			return nil
		},
	}
}
