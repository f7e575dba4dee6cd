package cli

import "github.com/spf13/cobra"

func (a *app) scheduleCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the class schedule for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Schedule(ctx, a.student, date, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Schedule(report)
			}
			a.text.Schedule(report)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	return cmd
}
