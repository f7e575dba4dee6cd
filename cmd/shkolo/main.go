package main

import (
	"os"

	"github.com/x1024/shkolo-cli/internal/cli"
)

// populated at build time via ldflags
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Run(cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}))
}
