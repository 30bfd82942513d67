package cmd

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/pigeonbuild/cli/config"
	"github.com/pigeonbuild/cli/discovery"
	"github.com/pigeonbuild/cli/logger"
	"github.com/pigeonbuild/cli/outpath"
	"github.com/pigeonbuild/cli/runner"
	"github.com/pigeonbuild/cli/ui"
)

var cfg Config

func init() {
	rootCmd.Flags().StringVarP(&cfg.Generator, "generator", "g", "pigeon", "generator executable invoked once per input file")
	rootCmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 1, "number of generator processes to run in parallel")
	rootCmd.Flags().StringVar(&cfg.Marker, "marker", outpath.DefaultRootMarker, "source root segment mirrored into output trees")
	rootCmd.Flags().StringVar(&cfg.SourceExt, "source-ext", discovery.DefaultSourceExt, "extension accepted from directory inputs")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "show verbose output")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	logger.Setup(cfg.Verbose)
	console := ui.NewConsole(ui.Options{Verbose: cfg.Verbose, NoColor: cfg.NoColor})

	configPath := config.DefaultFileName
	if len(args) == 1 {
		configPath = args[0]
	}

	// Step 1: Load the config document (the only fatal failure class)
	console.Step(1, 3, "Loading "+configPath)
	doc, err := config.Load(configPath)
	if err != nil {
		console.ErrorMsg("Failed to load config", err)
		return err
	}

	// Step 2: Resolve groups and discover their input files
	console.Step(2, 3, "Resolving input groups")
	disc := discovery.Discoverer{SourceExt: cfg.SourceExt}

	var groups []config.Group
	err = console.RunWithSpinner("Resolving inputs...", func() error {
		var resolveErr error
		groups, resolveErr = config.ResolveGroups(doc, disc)
		return resolveErr
	})
	if err != nil {
		console.ErrorMsg("Failed to resolve groups", err)
		return err
	}
	if len(groups) == 0 {
		console.WarnMsg("No input files matched any group")
		return nil
	}
	for _, g := range groups {
		console.Detail(fmt.Sprintf("%s: %d files", g.Name, len(g.Files)))
	}

	if _, err := exec.LookPath(cfg.Generator); err != nil {
		console.WarnMsg(fmt.Sprintf("%s not found in PATH, invocations will likely fail", cfg.Generator))
	}

	// Step 3: Run the generator over every group
	console.Step(3, 3, "Running "+cfg.Generator)
	r := runner.New(console, runner.Options{
		Generator: cfg.Generator,
		Jobs:      cfg.Jobs,
		Resolver:  outpath.Resolver{RootMarker: cfg.Marker},
	})
	summary := r.Run(cmd.Context(), groups)

	printSummary(console, summary, time.Since(start))

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Failed+summary.Succeeded)
	}
	return nil
}

func printSummary(console *ui.Console, s runner.Summary, duration time.Duration) {
	console.Println()
	if s.Failed == 0 {
		console.SuccessMsg(fmt.Sprintf("Generated %d files across %d groups (%s)",
			s.Succeeded, len(s.Groups), ui.FormatDuration(duration)))
		return
	}
	console.ErrorMsg(fmt.Sprintf("%d succeeded, %d failed (%s)",
		s.Succeeded, s.Failed, ui.FormatDuration(duration)), nil)
}
