package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song with space.mp3")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{"plain path", file, file, false},
		{"file url", FileURL(file), file, false},
		{"empty", "  ", "", true},
		{"http scheme", "http://example.com/a.mp3", "", true},
		{"missing", filepath.Join(dir, "nope.mp3"), "", true},
		{"directory", dir, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSource(tt.src)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileURL_EscapesPath(t *testing.T) {
	assert.Equal(t, "file:///music/a%20b.mp3", FileURL("/music/a b.mp3"))
}
