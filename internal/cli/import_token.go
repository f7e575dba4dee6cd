package cli

import "github.com/spf13/cobra"

func (a *app) importTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-token [manifest-path]",
		Short: "Import the session from the iOS Shkolo app",
		Long: "Reads the bearer token out of the Shkolo iOS app's preferences\n" +
			"manifest and saves it as the session. Without an argument the\n" +
			"default simulator location is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			imp, err := a.services.Auth.ImportToken(a.ctx(cmd), path)
			if err != nil {
				return err
			}
			a.text.ImportToken(imp)
			return nil
		},
	}
}
