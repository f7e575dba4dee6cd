package cli

import (
	"github.com/spf13/cobra"

	"github.com/x1024/shkolo-cli/internal/tui"
)

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			return tui.Run(ctx, a.services, a.log)
		},
	}
}
