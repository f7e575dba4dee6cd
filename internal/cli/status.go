package cli

import "github.com/spf13/cobra"

func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.services.Auth.Status(a.ctx(cmd))
			if err != nil {
				return err
			}
			a.text.Status(st, a.cfg.App.ConfigDir, a.cfg.Cache.TTL.Duration)
			return nil
		},
	}
}
