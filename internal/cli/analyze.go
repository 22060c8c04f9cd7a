package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"skin-analyzer/internal/analysis"
	"skin-analyzer/internal/face"
	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/internal/logger"
	"skin-analyzer/internal/overlay"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	ImagePath string
	Rect      string
	Format    string
	Annotate  string
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the first face in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), g, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.ImagePath, "image", "i", "", "Path to image (JPEG, PNG, BMP, TIFF, WebP)")
	cmd.Flags().StringVarP(&opts.Rect, "rect", "r", "", "Face rectangle x,y,w,h; skips face detection")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text or json (default from config)")
	cmd.Flags().StringVarP(&opts.Annotate, "annotate", "a", "", "Write an annotated copy of the image here")
	cmd.MarkFlagRequired("image")
	return cmd
}

func runAnalyze(out io.Writer, g *globalOptions, opts *analyzeOptions) error {
	format := opts.Format
	if format == "" {
		format = g.cfg.Format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	frame, err := skinimage.Load(opts.ImagePath)
	if err != nil {
		return err
	}
	logger.Debug("loaded frame",
		logger.Field{Key: "path", Data: frame.Path},
		logger.Field{Key: "format", Data: frame.Format},
		logger.Field{Key: "width", Data: frame.Width()},
		logger.Field{Key: "height", Data: frame.Height()},
	)

	region, err := locateFace(g, opts.Rect, frame)
	if err != nil {
		return err
	}

	res, err := analysis.Analyze(region)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	logger.Info("analysis complete",
		logger.Field{Key: "skin_type", Data: res.SkinType.String()},
		logger.Field{Key: "health_band", Data: res.HealthBand.String()},
		logger.Field{Key: "acne_count", Data: res.AcneCount},
	)

	if opts.Annotate != "" {
		if err := overlay.Save(opts.Annotate, frame.Image, res); err != nil {
			return err
		}
	}

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = io.WriteString(out, res.Text())
	return err
}

// locateFace crops the explicit rectangle if given, otherwise runs the cascade.
func locateFace(g *globalOptions, rect string, frame *skinimage.Frame) (face.Region, error) {
	if rect != "" {
		r, err := parseRect(rect)
		if err != nil {
			return face.Region{}, err
		}
		return face.FromImage(frame.Image, r)
	}

	if g.cfg.CascadePath == "" {
		return face.Region{}, errors.New("no face rectangle given and no cascade configured (use --rect or --cascade)")
	}
	det, err := face.NewDetector(g.cfg.CascadePath, g.detectorParams())
	if err != nil {
		return face.Region{}, err
	}
	defer det.Close()

	region, err := det.Locate(frame.Image)
	if errors.Is(err, face.ErrNoFace) {
		return face.Region{}, fmt.Errorf("%w: make sure the face is clearly visible", err)
	}
	return region, err
}
