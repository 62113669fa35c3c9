package testbed

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/draw"

	"github.com/frostpine/garland/engine/core"
)

// Photo thumbnails are normalized to a fixed square so frame particles all
// render at the same base size regardless of the uploaded resolution.
const photoThumbSize = 256

// pickPhoto opens a native file dialog and returns the chosen path, or ""
// when the user cancels.
func pickPhoto() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Add Photo to the Tree"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

// loadPhotoThumb decodes an image file and scales it into a square
// thumbnail texture.
func loadPhotoThumb(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", path, err)
	}

	thumb := image.NewRGBA(image.Rect(0, 0, photoThumbSize, photoThumbSize))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), src, src.Bounds(), draw.Src, nil)

	core.LogInfo("photo loaded: %s (%dx%d -> %dx%d)",
		path, src.Bounds().Dx(), src.Bounds().Dy(), photoThumbSize, photoThumbSize)
	return ebiten.NewImageFromImage(thumb), nil
}
