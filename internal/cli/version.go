package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// build info needs no configuration, skip the shared setup
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "Build version: %s\n", stamp(a.build.Version))
			fmt.Fprintf(a.stdout, "Build date: %s\n", stamp(a.build.Date))
			fmt.Fprintf(a.stdout, "Build commit: %s\n", stamp(a.build.Commit))
		},
	}
}

func stamp(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
