package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mathdoc/internal/catalog"
	"github.com/mesh-intelligence/mathdoc/internal/exercise"
	"github.com/mesh-intelligence/mathdoc/internal/numeric"
	"github.com/mesh-intelligence/mathdoc/internal/paths"
	"github.com/mesh-intelligence/mathdoc/pkg/mdprint"
	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

type runFlags struct {
	stdout bool
	format string
	seed   uint64
}

func newRunCmd() *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run [exercise...]",
		Short: "Render exercises to markdown",
		Long: `Run renders each named exercise (all of them when none is named) to
<output-dir>/<exercise>.md. Figures are written next to the document as
<exercise>-1.svg, <exercise>-2.svg, ... and recorded in the figure catalog,
replacing the figures of the previous run.

Example:
  mathdoc run
  mathdoc run 04-power-and-log --format png
  mathdoc run 04-power-and-log --stdout --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercises(cmd, args, rf)
		},
	}
	cmd.Flags().BoolVar(&rf.stdout, "stdout", false, "write markdown to stdout instead of files")
	cmd.Flags().StringVar(&rf.format, "format", "", "figure format (overrides figure_format)")
	cmd.Flags().Uint64Var(&rf.seed, "seed", 0, "random seed (overrides seed; 0 keeps config)")
	return cmd
}

func runExercises(cmd *cobra.Command, args []string, rf runFlags) error {
	cfg := state.cfg
	if rf.format != "" {
		if !types.KnownFigureFormat(rf.format) {
			return userError(fmt.Errorf("%w %q", types.ErrFigureFormatUnknown, rf.format))
		}
		cfg.FigureFormat = rf.format
	}
	if rf.seed != 0 {
		cfg.Seed = rf.seed
	}

	exercises := exercise.All()
	if len(args) > 0 {
		exercises = exercises[:0]
		for _, name := range args {
			ex, err := exercise.Lookup(name)
			if err != nil {
				return userError(err)
			}
			exercises = append(exercises, ex)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create output directory: %w", err))
	}

	var cat *catalog.Catalog
	if cfg.Catalog {
		var err error
		cat, err = catalog.OpenFor(cfg.OutputDir)
		if err != nil {
			return sysError(fmt.Errorf("open catalog: %w", err))
		}
		defer cat.Close()
	}

	for _, ex := range exercises {
		docPath := paths.DocumentPath(cfg.OutputDir, ex.Name)
		if err := renderExercise(ex, cfg, cat, docPath, rf.stdout, cmd.OutOrStdout()); err != nil {
			return sysError(fmt.Errorf("run %s: %w", ex.Name, err))
		}
		if !rf.stdout {
			fmt.Fprintln(cmd.OutOrStdout(), docPath)
		}
	}
	return nil
}

// renderExercise writes one exercise to docPath, or to out when toStdout is
// set. Figures always go next to docPath.
func renderExercise(ex exercise.Exercise, cfg types.Config, cat *catalog.Catalog, docPath string, toStdout bool, out io.Writer) (err error) {
	var opts []mdprint.FigureOption
	if cat != nil {
		if _, err := removeFigures(cat, cfg.OutputDir, ex.Name); err != nil {
			return err
		}
		rec, err := catalog.NewRecorder(cat, ex.Name)
		if err != nil {
			return err
		}
		opts = append(opts, mdprint.WithRecorder(rec))
		state.logger.Printf("%s: run %s", ex.Name, rec.RunID())
	}

	w := out
	if !toStdout {
		f, cerr := os.Create(docPath)
		if cerr != nil {
			return fmt.Errorf("create document: %w", cerr)
		}
		bw := bufio.NewWriter(f)
		defer func() {
			err = errors.Join(err, bw.Flush(), f.Close())
		}()
		w = bw
	}

	p := mdprint.New(w)
	s := &exercise.Session{
		Printer:    p,
		Figures:    mdprint.ForScript(p, docPath, opts...),
		Rand:       numeric.NewRand(cfg.Seed),
		SampleSize: cfg.SampleSize,
		Format:     cfg.FigureFormat,
		Log:        state.logger,
	}
	return ex.Run(s)
}

// removeFigures forgets the catalogued figures of exercise (all when empty)
// and deletes their files from outputDir. Missing files are ignored.
func removeFigures(cat *catalog.Catalog, outputDir, exerciseName string) ([]types.FigureRecord, error) {
	removed, err := cat.Forget(exerciseName)
	if err != nil {
		return nil, err
	}
	for _, rec := range removed {
		path := filepath.Join(outputDir, rec.File)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", rec.File, err)
		}
		state.logger.Printf("removed %s", path)
	}
	return removed, nil
}
