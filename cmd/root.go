package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "pigeon-build [config-file]",
	Short:        "Run a code generator over configured input groups",
	Args:         cobra.MaximumNArgs(1),
	RunE:         runBatch,
	SilenceUsage: true,
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pigeon-build {{.Version}} (" + commit + ", " + date + ")\n")
}
