package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/x1024/shkolo-cli/models"
)

func (a *app) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username] [password]",
		Short: "Log in with username and password",
		Long: "Authenticates against the Shkolo API and saves the session in the\n" +
			"config directory. Missing credentials are prompted for; the\n" +
			"password prompt does not echo.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := a.promptCredentials(args)
			if err != nil {
				return err
			}
			users, err := a.services.Auth.Login(a.ctx(cmd), creds)
			if err != nil {
				return err
			}
			a.text.Login(users, false)
			return nil
		},
	}
}

func (a *app) promptCredentials(args []string) (models.LoginRequest, error) {
	var creds models.LoginRequest

	if len(args) > 0 {
		creds.Username = args[0]
	} else {
		fmt.Fprint(a.stdout, "Username: ")
		line, err := a.readLine()
		if err != nil {
			return creds, err
		}
		creds.Username = line
	}

	if len(args) > 1 {
		creds.Password = args[1]
		return creds, nil
	}

	fmt.Fprint(a.stdout, "Password: ")
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(a.stdout)
		if err != nil {
			return creds, fmt.Errorf("reading password: %w", err)
		}
		creds.Password = string(pw)
		return creds, nil
	}

	// not a terminal, read the piped password as a plain line
	line, err := a.readLine()
	if err != nil {
		return creds, err
	}
	creds.Password = line
	return creds, nil
}
