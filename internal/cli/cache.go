package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local response cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "Cache directory: %s\n", a.cfg.App.ConfigDir)
			fmt.Fprintf(a.stdout, "Cache TTL: %d seconds\n", int(a.cfg.Cache.TTL.Duration.Seconds()))
			fmt.Fprintln(a.stdout)
			fmt.Fprintln(a.stdout, "Options:")
			fmt.Fprintln(a.stdout, "  clear     Clear cache (preserves token)")
			fmt.Fprintln(a.stdout, "  clear-all Clear all cache including token")
			fmt.Fprintln(a.stdout, "  refresh   Force refresh all data")
			return nil
		},
	}
	cmd.AddCommand(
		a.cacheClearCommand(),
		a.cacheClearAllCommand(),
		a.cacheRefreshCommand(),
	)
	return cmd
}

func (a *app) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the cached responses, keeping the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.repo != nil {
				if err := a.repo.Purge(a.ctx(cmd)); err != nil {
					return err
				}
			}
			fmt.Fprintln(a.stdout, "Cache cleared (token preserved)")
			return nil
		},
	}
}

func (a *app) cacheClearAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-all",
		Short: "Clear the cached responses and the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.repo != nil {
				if err := a.repo.Purge(a.ctx(cmd)); err != nil {
					return err
				}
			}
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "All cache cleared (including token)")
			return nil
		},
	}
}

func (a *app) cacheRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch and cache all data for every pupil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			if err := a.restore(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "Refreshing all data...")
			students, err := a.services.Diary.Prime(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "  Refreshed %d students\n", len(students))
			for _, s := range students {
				fmt.Fprintf(a.stdout, "  Refreshed data for %s\n", s.Name)
			}
			fmt.Fprintln(a.stdout, "All data refreshed!")
			return nil
		},
	}
}
