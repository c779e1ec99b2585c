package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo describes the loaded source for display.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Format string // "MP3", "WAV" or "FLAC"
}

// ReadTrackInfo reads tag metadata, falling back to the file name when the
// file carries no tags (plain WAV files usually don't).
func ReadTrackInfo(path string) TrackInfo {
	info := TrackInfo{
		Path:   path,
		Title:  filepath.Base(path),
		Format: strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	return info
}
