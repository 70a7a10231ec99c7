package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

const (
	jpegQuality = 95
	outputExt   = ".jpg"
)

// NormalizeFile shrinks the image at path to fit within b and rewrites it
// as a JPEG at quality 95 next to the original, using the .jpg extension.
// Images already within b are left untouched and reported as not resized.
//
// The replacement is fully encoded before anything is written, and the
// original is removed only after the new file is on disk. When the new name
// differs from the old one, an existing file with the new name is replaced.
func NormalizeFile(path string, b Bound) (bool, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	nw, nh, resize := FitWithin(w, h, b)
	if !resize {
		return false, nil
	}
	if nw < 1 || nh < 1 {
		return false, fmt.Errorf("resizing %s from %dx%d: target %dx%d is empty", path, w, h, nw, nh)
	}

	out := imaging.Resize(src, nw, nh, imaging.Lanczos)
	if HasAlpha(src) {
		out = Flatten(out)
	} else {
		out = DropAlpha(out)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return false, fmt.Errorf("encoding %s: %w", path, err)
	}

	dst := jpegPath(path)
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", dst, err)
	}
	if dst != path {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return true, fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return true, nil
}

func jpegPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + outputExt
}

// DecodeSize reads only the header of the image at path
func DecodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
