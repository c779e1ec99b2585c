//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// artNames lists common cover art filenames in priority order.
var artNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png",
}

// FindArt looks for an image next to the audio file: first one sharing
// its base name ("clip.mp3" -> "clip.jpg"), then a common cover name.
// Returns "" if none exists.
func FindArt(audioPath string) string {
	dir := filepath.Dir(audioPath)
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	candidates := make([]string, 0, len(artNames)+3)
	for _, ext := range []string{".jpg", ".png", ".jpeg"} {
		candidates = append(candidates, stem+ext)
	}
	candidates = append(candidates, artNames...)

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
