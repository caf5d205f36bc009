// Package capture saves the pixels of a selected region to a PNG file.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"

	"xrectsel/xselect"
)

// Save captures the region's pixels from the screen and writes them to path
// as PNG. The selection must have a non-zero area.
func Save(region xselect.Region, path string) error {
	bounds, err := regionBounds(region)
	if err != nil {
		return err
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return fmt.Errorf("failed to capture region %v: %v", bounds, err)
	}
	return writePNG(path, img)
}

// regionBounds converts a selection to the image rectangle to capture.
func regionBounds(region xselect.Region) (image.Rectangle, error) {
	if region.Width == 0 || region.Height == 0 {
		return image.Rectangle{}, fmt.Errorf("cannot capture empty region (%dx%d)", region.Width, region.Height)
	}
	return image.Rect(region.X, region.Y,
		region.X+int(region.Width), region.Y+int(region.Height)), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %v", path, err)
	}
	return f.Close()
}
