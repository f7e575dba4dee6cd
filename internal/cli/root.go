package cli

import "github.com/spf13/cobra"

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "shkolo",
		Short: "Command-line client for the Shkolo school diary",
		Long: "Shkolo CLI talks to the REST API behind the Shkolo mobile app and\n" +
			"shows homework, schedules, grades, absences, notifications and\n" +
			"events for every pupil linked to the account, as text or JSON.",
		Example: "  shkolo import-token        # import the session from the iOS app\n" +
			"  shkolo login               # log in with username/password\n" +
			"  shkolo homework            # homework for every pupil\n" +
			"  shkolo schedule --date 2026-02-20\n" +
			"  shkolo grades --json\n" +
			"  shkolo raw GET /v1/diary/pupils",
		Version:       a.build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetIn(a.stdin)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ~/.shkolo/config.json)")
	pf.StringVar(&a.baseURL, "base-url", "", "API base URL")
	pf.StringVar(&a.lang, "lang", "", "API response language")
	pf.StringVarP(&a.student, "student", "s", "", "pupil selector: 1-based index or name substring")
	pf.BoolVar(&a.jsonOut, "json", false, "machine-readable JSON output")
	pf.BoolVarP(&a.refresh, "refresh", "r", false, "refetch from the API even when cached")
	pf.BoolVar(&a.noCache, "no-cache", false, "bypass the cache entirely")
	pf.IntVar(&a.cacheTTL, "cache-ttl", 0, "cache TTL in seconds (default 3600)")

	root.AddCommand(
		a.loginCommand(),
		a.loginGoogleCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.importTokenCommand(),
		a.homeworkCommand(),
		a.scheduleCommand(),
		a.gradesCommand(),
		a.absencesCommand(),
		a.summaryCommand(),
		a.notificationsCommand(),
		a.eventsCommand(),
		a.rawCommand(),
		a.cacheCommand(),
		a.exportCommand(),
		a.tuiCommand(),
		a.versionCommand(),
	)
	return root
}
