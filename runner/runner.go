// Package runner drives the batch: one generator invocation per discovered
// file, failures counted but never fatal to the run.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/pigeonbuild/cli/config"
	"github.com/pigeonbuild/cli/outpath"
	"github.com/pigeonbuild/cli/ui"
)

// Options configures a Runner.
type Options struct {
	// Generator is the executable invoked once per input file.
	Generator string
	// Jobs is the number of generator processes allowed to run at once.
	// Values below 2 mean fully sequential execution with a live transcript.
	Jobs int
	// Resolver rewrites output paths for directory-creation options.
	Resolver outpath.Resolver
}

// Runner invokes the generator over resolved groups. Console output and
// verbosity are supplied at construction.
type Runner struct {
	generator string
	jobs      int
	resolver  outpath.Resolver
	console   *ui.Console
}

// New builds a Runner reporting to console.
func New(console *ui.Console, opts Options) *Runner {
	return &Runner{
		generator: opts.Generator,
		jobs:      opts.Jobs,
		resolver:  opts.Resolver,
		console:   console,
	}
}

// FileResult records one invocation's outcome. Err is nil on success.
type FileResult struct {
	Path string
	Err  error
}

// GroupResult aggregates one group's outcomes.
type GroupResult struct {
	Name      string
	Files     []FileResult
	Succeeded int
	Failed    int
}

// Summary aggregates the whole run.
type Summary struct {
	Groups    []GroupResult
	Succeeded int
	Failed    int
}

// Run processes every group in order and every file in discovery order,
// printing a transcript line per file and a tally per group. A failing file
// never stops the run.
func (r *Runner) Run(ctx context.Context, groups []config.Group) Summary {
	var sum Summary
	for _, g := range groups {
		gr := r.runGroup(ctx, g)
		sum.Groups = append(sum.Groups, gr)
		sum.Succeeded += gr.Succeeded
		sum.Failed += gr.Failed
	}
	return sum
}

func (r *Runner) runGroup(ctx context.Context, g config.Group) GroupResult {
	r.console.Println()
	r.console.Printf("%s %s\n", ui.Bold.Render(g.Name), ui.Dim.Render(fmt.Sprintf("(%d files)", len(g.Files))))

	results := make([]FileResult, len(g.Files))

	if r.jobs > 1 {
		// Invocations are independent, so they may overlap; results land in
		// a slice indexed by discovery order and the transcript is printed
		// afterwards, keeping the report deterministic.
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(r.jobs)
		for i, f := range g.Files {
			eg.Go(func() error {
				results[i] = r.runFile(egCtx, g, f)
				return nil
			})
		}
		eg.Wait()
		for _, res := range results {
			r.printResult(res)
		}
	} else {
		for i, f := range g.Files {
			results[i] = r.runFile(ctx, g, f)
			r.printResult(results[i])
		}
	}

	gr := GroupResult{Name: g.Name, Files: results}
	for _, res := range results {
		if res.Err != nil {
			gr.Failed++
		} else {
			gr.Succeeded++
		}
	}

	tally := fmt.Sprintf("%s: %d succeeded, %d failed", g.Name, gr.Succeeded, gr.Failed)
	if gr.Failed > 0 {
		r.console.Printf("%s %s\n", ui.Error.Render("✗"), tally)
	} else {
		r.console.Printf("%s %s\n", ui.Success.Render("✓"), tally)
	}
	return gr
}

func (r *Runner) printResult(res FileResult) {
	if res.Err != nil {
		r.console.ErrorMsg(res.Path, res.Err)
		return
	}
	r.console.Detail(res.Path)
}

func (r *Runner) runFile(ctx context.Context, g config.Group, f config.DiscoveredFile) FileResult {
	args, err := r.buildArgs(g, f)
	if err != nil {
		return FileResult{Path: f.Path, Err: err}
	}

	r.console.Verbosef("invoking: %s %v", r.generator, args)

	cmd := exec.CommandContext(ctx, r.generator, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return FileResult{Path: f.Path, Err: fmt.Errorf("%s failed: %w\n%s", r.generator, err, stderr.String())}
	}
	return FileResult{Path: f.Path}
}
