package cli

import "github.com/spf13/cobra"

func (a *app) gradesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show grades per course for every pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Grades(ctx, a.student, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Grades(report)
			}
			a.text.Grades(report)
			return nil
		},
	}
}
