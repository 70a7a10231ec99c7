package upcstub

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "image/jpeg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Host = "stub.local"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLookup(t *testing.T) {
	r := NewRouter(DefaultCatalog())

	t.Run("missing key", func(t *testing.T) {
		w := get(t, r, "/api/v1/code/12345678905")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		w := get(t, r, "/api/v1/code/000?key=k")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("relative image url made absolute", func(t *testing.T) {
		w := get(t, r, "/api/v1/code/12345678905?key=k")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Product map[string]any `json:"product"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "http://stub.local/images/sample.jpg", body.Product["imageUrl"])
	})

	t.Run("image key omitted", func(t *testing.T) {
		w := get(t, r, "/api/v1/code/4006381333931?key=k")
		var body struct {
			Product map[string]any `json:"product"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		_, present := body.Product["imageUrl"]
		assert.False(t, present)
	})

	t.Run("image null", func(t *testing.T) {
		w := get(t, r, "/api/v1/code/9780201379624?key=k")
		assert.Contains(t, w.Body.String(), `"imageUrl":null`)
	})
}

func TestImage(t *testing.T) {
	r := NewRouter(nil)

	w := get(t, r, "/images/x.jpg?w=120&h=40")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	cfg, format, err := image.DecodeConfig(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"111":{"name":"A","imageUrl":"http://x/a.jpg"},"222":{"name":"B","noImageKey":true}}`), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Contains(t, c, "111")
	assert.Equal(t, "http://x/a.jpg", *c["111"].ImageURL)
	assert.True(t, c["222"].NoImageKey)

	require.NoError(t, os.WriteFile(path, []byte(`[`), 0o644))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
