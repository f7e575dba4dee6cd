package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/models"
)

func (a *app) loginGoogleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login-google [id-token]",
		Short: "Log in with a Google ID token",
		Long: "Exchanges a Google ID token for a Shkolo session. Without an\n" +
			"argument the OAuth instructions are printed and the token is read\n" +
			"from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) > 0 {
				token = args[0]
			} else {
				var err error
				token, err = a.promptGoogleToken()
				if err != nil {
					return err
				}
			}
			if token == "" {
				return errors.New("no token provided")
			}
			users, err := a.services.Auth.LoginGoogle(a.ctx(cmd), models.GoogleLoginRequest{IDToken: token})
			if err != nil {
				return err
			}
			a.text.Login(users, true)
			return nil
		},
	}
}

func (a *app) promptGoogleToken() (string, error) {
	fmt.Fprintln(a.stdout, "Google OAuth Login")
	fmt.Fprintln(a.stdout, "==================")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "To login with Google, you need to obtain an ID token.")
	fmt.Fprintf(a.stdout, "Client ID: %s\n", adapter.GoogleClientID)
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Steps:")
	fmt.Fprintln(a.stdout, "1. Use Google OAuth to authenticate with the client ID above")
	fmt.Fprintln(a.stdout, "2. Copy the ID token from the response")
	fmt.Fprintln(a.stdout, "3. Run: shkolo login-google <YOUR_ID_TOKEN>")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Or paste the ID token now:")
	fmt.Fprint(a.stdout, "ID Token: ")
	return a.readLine()
}
