// Package snapshot grabs raw screen pixels of the plot window so a
// labeling session can be archived as an image next to the exported
// mask.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/vova616/screenshot"
)

// ScreenBounds returns the pixel rectangle of the primary screen.
func ScreenBounds() (image.Rectangle, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("query screen bounds: %w", err)
	}
	return r, nil
}

// Grab captures the given screen rectangle. An empty rectangle
// captures the whole primary screen.
func Grab(area image.Rectangle) (*image.RGBA, error) {
	var img *image.RGBA
	var err error
	if area.Empty() {
		img, err = screenshot.CaptureScreen()
	} else {
		img, err = screenshot.CaptureRect(area)
	}
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// SavePNG captures area and writes it as a PNG to path.
func SavePNG(path string, area image.Rectangle) error {
	img, err := Grab(area)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
