package cli

import (
	"fmt"
	"io"

	"skin-analyzer/internal/acne"
	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/pkg/colorutil"

	"github.com/spf13/cobra"
)

type sampleOptions struct {
	ImagePath string
	X, Y      int
}

func newSampleCmd() *cobra.Command {
	opts := &sampleOptions{}
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the RGB and HSV values of one pixel",
		Long: "Print the RGB and OpenCV-scale HSV (H 0-180, S/V 0-255) of one pixel " +
			"and whether it falls inside the acne color band.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.ImagePath, "image", "i", "", "Path to image")
	cmd.Flags().IntVarP(&opts.X, "x", "x", 0, "Pixel column")
	cmd.Flags().IntVarP(&opts.Y, "y", "y", 0, "Pixel row")
	cmd.MarkFlagRequired("image")
	return cmd
}

func runSample(out io.Writer, opts *sampleOptions) error {
	frame, err := skinimage.Load(opts.ImagePath)
	if err != nil {
		return err
	}
	b := frame.Image.Bounds()
	x, y := b.Min.X+opts.X, b.Min.Y+opts.Y
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return fmt.Errorf("pixel (%d,%d) outside %dx%d image", opts.X, opts.Y, b.Dx(), b.Dy())
	}

	c := frame.Image.At(x, y)
	r, gr, bl, _ := c.RGBA()
	hsv := colorutil.ToHSV(c)

	p := acne.DefaultParams()
	inBand := hsv.InRange(
		colorutil.HSV{H: p.HueMin, S: p.SatMin, V: p.ValMin},
		colorutil.HSV{H: p.HueMax, S: p.SatMax, V: p.ValMax},
	)

	_, err = fmt.Fprintf(out, "RGB(%d,%d,%d) HSV(%.1f,%.1f,%.1f) acne band: %v\n",
		r>>8, gr>>8, bl>>8, hsv.H, hsv.S, hsv.V, inBand)
	return err
}
