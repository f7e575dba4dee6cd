package cli

import "github.com/spf13/cobra"

func (a *app) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a compact day summary for every pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Summary(ctx, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Summary(report)
			}
			a.text.Summary(report)
			return nil
		},
	}
}
