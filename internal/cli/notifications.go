package cli

import "github.com/spf13/cobra"

func (a *app) notificationsCommand() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show the account's notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			items, err := a.services.Inbox.Notifications(ctx, page)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Notifications(items)
			}
			a.text.Notifications(items)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	return cmd
}
