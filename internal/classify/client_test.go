package classify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVEdata"), 0o600))
	return path
}

func TestClassify(t *testing.T) {
	var gotName, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)

		f, h, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		gotName, gotBody = h.Filename, string(data)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"filename":    h.Filename,
			"genre":       "Jazz",
			"confidence":  map[string]float64{"jazz": 0.81, "blues": 0.12},
			"spectrogram": "/static/spectrograms/clip.png",
			"playlist_id": 3,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	res, err := c.Classify(context.Background(), writeClip(t))
	require.NoError(t, err)

	assert.Equal(t, "clip.wav", gotName)
	assert.Equal(t, "RIFF....WAVEdata", gotBody)
	assert.Equal(t, "jazz", res.Genre)
	assert.Equal(t, "clip.wav", res.Filename)
	assert.InDelta(t, 0.81, res.Top(), 1e-9)
	assert.Equal(t, "/static/spectrograms/clip.png", res.Spectrogram)
}

func TestClassify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "File type not allowed"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Classify(context.Background(), writeClip(t))
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "File type not allowed")
}

func TestClassify_StatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Classify(context.Background(), writeClip(t))
	assert.EqualError(t, err, "API returned status 502: bad gateway")
}

func TestClassify_MissingGenre(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"confidence": {}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Classify(context.Background(), writeClip(t))
	assert.Error(t, err)
}

func TestClassify_MissingFile(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", 0).Classify(context.Background(), "/does/not/exist.wav")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClassify_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, 0).Classify(ctx, writeClip(t))
	assert.ErrorIs(t, err, context.Canceled)
}
