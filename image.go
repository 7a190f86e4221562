package headerview

import (
	"fmt"
	"image"
	_ "image/jpeg" // header images are commonly JPEG
	_ "image/png"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nfnt/resize"
)

// ImageVariant is one resolution of a header image.
type ImageVariant struct {
	URI    string  `koanf:"uri"`
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
	Scale  float64 `koanf:"scale"`
}

// ImageSource describes a header image: either an already loaded asset or
// a set of responsive variants loaded from the local filesystem.
type ImageSource struct {
	Asset    *ebiten.Image
	Variants []ImageVariant
}

// ImageLoader decodes a variant into an image of the requested size.
type ImageLoader interface {
	Load(v ImageVariant, width, height int) (*ebiten.Image, error)
}

// FileLoader loads variants whose URI is a local path or a file:// URL.
type FileLoader struct{}

// Load implements ImageLoader. The decoded image is resampled to
// width x height once so frames draw it unscaled.
func (FileLoader) Load(v ImageVariant, width, height int) (*ebiten.Image, error) {
	path := strings.TrimPrefix(v.URI, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open header image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode header image %s: %w", path, err)
	}
	if width > 0 && height > 0 {
		b := img.Bounds()
		if b.Dx() != width || b.Dy() != height {
			img = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
		}
	}
	return ebiten.NewImageFromImage(img), nil
}

// selectVariant picks the variant to load for a target width: the smallest
// whose effective width covers it, or the widest when none does. Variants
// without a width are only chosen when nothing else is known.
func selectVariant(variants []ImageVariant, targetWidth float64) (ImageVariant, bool) {
	if len(variants) == 0 {
		return ImageVariant{}, false
	}
	best, bestW := -1, 0.0
	widest, widestW := -1, -1.0
	for i, v := range variants {
		w := v.Width
		if v.Scale > 0 {
			w /= v.Scale
		}
		if w <= 0 {
			continue
		}
		if w >= targetWidth && (best < 0 || w < bestW) {
			best, bestW = i, w
		}
		if w > widestW {
			widest, widestW = i, w
		}
	}
	switch {
	case best >= 0:
		return variants[best], true
	case widest >= 0:
		return variants[widest], true
	}
	return variants[0], true
}

// resolveImage returns the image to show for src at the given size.
func resolveImage(src *ImageSource, loader ImageLoader, width, height float64) (*ebiten.Image, error) {
	if src == nil {
		return nil, nil
	}
	if src.Asset != nil {
		return src.Asset, nil
	}
	v, ok := selectVariant(src.Variants, width)
	if !ok {
		return nil, nil
	}
	return loader.Load(v, int(math.Round(width)), int(math.Round(height)))
}
