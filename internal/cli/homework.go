package cli

import "github.com/spf13/cobra"

func (a *app) homeworkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "homework",
		Short: "Show homework for every pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Homework(ctx, a.student, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Homework(report)
			}
			a.text.Homework(report)
			return nil
		},
	}
}
