// Package batch analyzes many frames concurrently with a fixed pool of
// workers, each owning its own face locator.
package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"skin-analyzer/internal/analysis"
	"skin-analyzer/internal/face"
	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/internal/logger"
	"skin-analyzer/internal/overlay"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Locator finds the face to analyze in a frame. *face.Detector satisfies it.
type Locator interface {
	Locate(img image.Image) (face.Region, error)
	Close() error
}

// Options configures a batch run.
type Options struct {
	Workers     int
	NewLocator  func() (Locator, error) // Called once per worker
	Analyzer    *analysis.Analyzer      // nil means analysis.Default()
	Progress    io.Writer               // nil disables the progress bar
	AnnotateDir string                  // When set, annotated frames are written here
}

// Item is the outcome for one file. Exactly one of Result and Error is set.
type Item struct {
	Path   string           `json:"path"`
	Result *analysis.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// OK reports whether the file was analyzed.
func (it Item) OK() bool {
	return it.Result != nil
}

// Run analyzes files and returns one Item per file, in input order. A file
// that fails to load, has no face, or fails analysis is recorded on its Item
// and does not stop the run. Locator setup failures and context cancellation
// do.
func Run(ctx context.Context, files []string, opts Options) ([]Item, error) {
	if opts.NewLocator == nil {
		return nil, fmt.Errorf("batch: no locator factory")
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = analysis.Default()
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Analyzing"),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionShowCount(),
	)

	items := make([]Item, len(files))
	tasks := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(tasks)
		for i := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tasks <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		workerID := w
		g.Go(func() error {
			loc, err := opts.NewLocator()
			if err != nil {
				return fmt.Errorf("worker %d: %w", workerID, err)
			}
			defer loc.Close()

			for i := range tasks {
				items[i] = processFile(files[i], loc, analyzer, opts.AnnotateDir)
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	_ = bar.Finish()
	return items, nil
}

func processFile(path string, loc Locator, analyzer *analysis.Analyzer, annotateDir string) Item {
	item := Item{Path: path}

	frame, err := skinimage.Load(path)
	if err != nil {
		item.Error = err.Error()
		logger.Warning("skipping frame", logger.Field{Key: "path", Data: path}, logger.Field{Key: "error", Data: err})
		return item
	}

	region, err := loc.Locate(frame.Image)
	if err != nil {
		item.Error = err.Error()
		logger.Warning("no analyzable face", logger.Field{Key: "path", Data: path}, logger.Field{Key: "error", Data: err})
		return item
	}

	res, err := analyzer.Analyze(region)
	if err != nil {
		item.Error = err.Error()
		logger.Error("analysis failed", logger.Field{Key: "path", Data: path}, logger.Field{Key: "error", Data: err})
		return item
	}
	item.Result = &res

	if annotateDir != "" {
		out := AnnotatedPath(annotateDir, path)
		if err := overlay.Save(out, frame.Image, res); err != nil {
			logger.Warning("failed to write annotated frame", logger.Field{Key: "path", Data: out}, logger.Field{Key: "error", Data: err})
		}
	}

	logger.Debug("analyzed frame",
		logger.Field{Key: "path", Data: path},
		logger.Field{Key: "skin_type", Data: res.SkinType.String()},
		logger.Field{Key: "acne_count", Data: res.AcneCount},
	)
	return item
}

// AnnotatedPath maps an input frame to <dir>/<name>_annotated.png.
func AnnotatedPath(dir, path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"_annotated.png")
}

// Summary counts items by outcome.
type Summary struct {
	Total    int
	Analyzed int
	Failed   int
}

// Summarize tallies items.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.OK() {
			s.Analyzed++
		} else {
			s.Failed++
		}
	}
	return s
}
