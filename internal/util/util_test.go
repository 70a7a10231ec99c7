package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	b, err := GetBytes(context.Background(), nil, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	_, err = GetBytes(context.Background(), srv.Client(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.True(t, FileExists(dir))
	require.NoError(t, EnsureDir(dir))
}
