// Package overlay draws analysis results onto the source frame.
package overlay

import (
	"fmt"
	"image"

	"skin-analyzer/internal/analysis"
	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Annotate returns a BGR copy of frame with the face box, one box per blemish
// and the severity label. The caller closes the returned Mat.
func Annotate(frame image.Image, res analysis.Result) (gocv.Mat, error) {
	mat, err := skinimage.ImageToMat(frame)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to convert image: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("empty image")
	}

	// Blemish boxes are in region coordinates; shift them into the frame.
	origin := frame.Bounds().Min
	faceRect := res.Bounds.Image().Sub(origin)
	for _, b := range res.Blemishes {
		box := b.Bounds.Offset(res.Bounds.X, res.Bounds.Y).Image().Sub(origin)
		gocv.Rectangle(&mat, box, colorutil.BlemishBox, 1)
	}
	gocv.Rectangle(&mat, faceRect, colorutil.FaceBox, 2)

	label := fmt.Sprintf("%s / %s / %s", res.SkinType, res.HealthBand, res.AcneSeverity)
	textOrg := image.Point{X: faceRect.Min.X, Y: faceRect.Min.Y - 6}
	if textOrg.Y < 12 {
		textOrg.Y = faceRect.Max.Y + 14
	}
	gocv.PutText(&mat, label, textOrg, gocv.FontHersheySimplex, 0.4, colorutil.Label, 1)

	return mat, nil
}

// Save annotates frame and writes it to path. The file type follows the
// extension, as with gocv.IMWrite.
func Save(path string, frame image.Image, res analysis.Result) error {
	mat, err := Annotate(frame, res)
	if err != nil {
		return err
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to write %s", path)
	}
	return nil
}
