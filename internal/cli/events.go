package cli

import "github.com/spf13/cobra"

func (a *app) eventsCommand() *cobra.Command {
	var schoolCalendar bool
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show upcoming events and test invitations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Inbox.Events(ctx, schoolCalendar, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Events(report)
			}
			a.text.Events(report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&schoolCalendar, "school-calendar", false, "show the school calendar instead")
	return cmd
}
