package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"skin-analyzer/internal/batch"
	"skin-analyzer/internal/face"
	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/internal/logger"

	"github.com/spf13/cobra"
)

type batchOptions struct {
	Dir         string
	Workers     int
	OutPath     string
	AnnotateDir string
	Quiet       bool
}

func newBatchCmd(g *globalOptions) *cobra.Command {
	opts := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze every image in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, g, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Directory of images")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Parallel workers (default from config)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Write JSON lines here instead of stdout")
	cmd.Flags().StringVar(&opts.AnnotateDir, "annotate-dir", "", "Write annotated frames to this directory")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Hide the progress bar")
	cmd.MarkFlagRequired("dir")
	return cmd
}

func runBatch(cmd *cobra.Command, g *globalOptions, opts *batchOptions) error {
	if g.cfg.CascadePath == "" {
		return fmt.Errorf("batch needs a cascade (use --cascade or cascade_path in config)")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = g.cfg.Workers
	}
	annotateDir := opts.AnnotateDir
	if annotateDir == "" {
		annotateDir = g.cfg.AnnotateDir
	}
	if annotateDir != "" {
		if err := os.MkdirAll(annotateDir, 0o755); err != nil {
			return fmt.Errorf("failed to create annotate dir: %w", err)
		}
	}

	files, err := skinimage.ListImages(opts.Dir)
	if err != nil {
		return err
	}
	logger.Info("starting batch",
		logger.Field{Key: "dir", Data: opts.Dir},
		logger.Field{Key: "files", Data: len(files)},
		logger.Field{Key: "workers", Data: workers},
	)

	var progress io.Writer = cmd.ErrOrStderr()
	if opts.Quiet {
		progress = nil
	}

	cascade, params := g.cfg.CascadePath, g.detectorParams()
	items, err := batch.Run(cmd.Context(), files, batch.Options{
		Workers: workers,
		NewLocator: func() (batch.Locator, error) {
			return face.NewDetector(cascade, params)
		},
		Progress:    progress,
		AnnotateDir: annotateDir,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.OutPath != "" {
		f, err := os.Create(opts.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeItems(out, items); err != nil {
		return err
	}

	s := batch.Summarize(items)
	logger.Info("batch complete",
		logger.Field{Key: "total", Data: s.Total},
		logger.Field{Key: "analyzed", Data: s.Analyzed},
		logger.Field{Key: "failed", Data: s.Failed},
	)
	return nil
}

// writeItems emits one JSON object per line.
func writeItems(w io.Writer, items []batch.Item) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", it.Path, err)
		}
	}
	return nil
}
