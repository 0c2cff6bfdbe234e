package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"folio/internal/diag"
	"folio/internal/docfile"
	"folio/internal/export"
	"folio/internal/observ"
	"folio/internal/typeset"
	"folio/internal/world"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file...>",
	Short: "Compile document files into laid-out pages",
	Long:  "Compile TOML document files into laid-out pages and emit msgpack payloads.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  buildExecution,
}

func init() {
	buildCmd.Flags().String("config", "", "style configuration file (TOML)")
	buildCmd.Flags().StringP("out-dir", "o", "target", "output directory for emitted payloads")
	buildCmd.Flags().Bool("dry-run", false, "lay out without writing payloads")
	buildCmd.Flags().Int("jobs", 0, "parallel build jobs (0 = GOMAXPROCS)")
}

// buildOutcome is one file's result, filled by its worker goroutine.
type buildOutcome struct {
	Path      string
	Output    string
	Pages     int
	Attempts  int
	Converged bool
	Diags     *diag.Bag
	Err       error
}

func buildExecution(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}

	w := world.Builtin()
	if configPath != "" {
		lib, err := world.LoadLibrary(configPath)
		if err != nil {
			return err
		}
		w = world.NewWorld(lib)
		logger.Debug("loaded style configuration", "path", configPath)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]buildOutcome, len(args))
	timers := make([]*observ.Timer, len(args))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			out := buildOutcome{Path: path}
			defer func() { outcomes[i] = out }()

			content, err := docfile.Load(path)
			if err != nil {
				out.Err = err
				return nil
			}

			timer := observ.NewTimer()
			timers[i] = timer
			res, err := typeset.TypesetWith(w, content, typeset.Options{
				MaxDiagnostics: maxDiagnostics,
				Timer:          timer,
			})
			if err != nil {
				out.Err = err
				return nil
			}
			out.Pages = res.Document.PageCount()
			out.Attempts = res.Attempts
			out.Converged = res.Converged
			out.Diags = res.Diags

			if !dryRun {
				target := filepath.Join(outDir, outputName(path))
				if err := export.WriteFile(target, res.Document); err != nil {
					out.Err = err
					return nil
				}
				out.Output = target
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, out := range outcomes {
		if out.Err != nil {
			logger.Error("build failed", "file", out.Path, "err", out.Err)
			failed++
			continue
		}
		diag.Render(cmd.ErrOrStderr(), out.Diags.Items())
		if showTimings && timers[i] != nil {
			fmt.Fprint(cmd.OutOrStdout(), timers[i].Summary())
		}
	}
	renderBuildSummary(cmd.OutOrStdout(), outcomes)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

// outputName maps an input path to the emitted payload name.
func outputName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "out"
	}
	return base + ".fp"
}
