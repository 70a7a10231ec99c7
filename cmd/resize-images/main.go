package main

import (
	"github.com/rs/zerolog"

	imagepkg "github.com/youruser/productimages/internal/image"
	"github.com/youruser/productimages/internal/logger"
	"github.com/youruser/productimages/internal/util"
)

const imageDir = "product_images"

func main() {
	log := logger.New(logger.FromEnv("resize-images"))

	if _, err := run(imageDir, log); err != nil {
		log.Fatal().Err(err).Str("dir", imageDir).Msg("listing images")
	}
}

// run normalizes dir in place. A missing dir is logged, not returned, so the
// process still exits 0.
func run(dir string, log zerolog.Logger) (imagepkg.Stats, error) {
	if !util.FileExists(dir) {
		log.Error().Str("dir", dir).Msg("directory does not exist")
		return imagepkg.Stats{}, nil
	}

	st, err := imagepkg.NormalizeDir(dir, imagepkg.DefaultBound, log)
	if err != nil {
		return st, err
	}
	log.Info().
		Int("total", st.Total).
		Int("resized", st.Resized).
		Int("failed", st.Failed).
		Msg("processing complete")
	return st, nil
}
