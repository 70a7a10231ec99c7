package imagepkg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Stats counts what NormalizeDir did
type Stats struct {
	Total   int
	Resized int
	Failed  int
}

// IsSupported matches the image extensions NormalizeDir handles, ignoring case
func IsSupported(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// NormalizeDir runs NormalizeFile on every supported image directly inside
// dir, in name order. A file that fails is logged and counted; the scan
// carries on. Only failing to list dir is returned as an error.
func NormalizeDir(dir string, b Bound, log zerolog.Logger) (Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		st.Total++

		resized, err := NormalizeFile(path, b)
		if err != nil {
			st.Failed++
			log.Error().Err(err).Str("file", path).Msg("error processing image")
			continue
		}
		if !resized {
			log.Debug().Str("file", path).Msg("already within size limits")
			continue
		}
		st.Resized++
		log.Info().Str("file", path).Str("output", jpegPath(path)).Msg("resized and converted")
	}
	return st, nil
}
