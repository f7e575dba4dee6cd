package cli

import "github.com/spf13/cobra"

func (a *app) absencesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "absences",
		Short: "Show absences for every pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			report, err := a.services.Diary.Absences(ctx, a.student, a.fetchOptions())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.json.Absences(report)
			}
			a.text.Absences(report)
			return nil
		},
	}
}
