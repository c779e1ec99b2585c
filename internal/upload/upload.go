// Package upload validates user-supplied audio files before they are
// handed to the player.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/spectra/internal/media"
)

// MaxSize is the largest accepted file.
const MaxSize = 10 * 1024 * 1024

var (
	ErrNotAudio  = errors.New("please choose an audio file (WAV or MP3)")
	ErrExtension = errors.New("file type not allowed")
	ErrTooLarge  = errors.New("file is too large")
)

// allowed maps accepted extensions to their MIME type.
var allowed = map[string]string{
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
}

// sniffLen is how many leading bytes content sniffing looks at.
const sniffLen = 512

// File is a validated upload.
type File struct {
	Path string
	Name string
	Size int64
	MIME string
}

// URL returns the source URL to load the file with.
func (f *File) URL() string {
	return SourceURL(f.Path)
}

// Validate checks a file's type, extension and size. header holds the
// first bytes of the content, used to sniff the MIME type; when sniffing
// is inconclusive the extension decides. It returns the MIME type.
func Validate(name string, size int64, header []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	mime := http.DetectContentType(header)
	if mime == "application/octet-stream" {
		if m, ok := allowed[ext]; ok {
			mime = m
		}
	}
	if !strings.HasPrefix(mime, "audio/") {
		return "", fmt.Errorf("%w: %s is %s", ErrNotAudio, name, mime)
	}
	if _, ok := allowed[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrExtension, ext)
	}
	if size > MaxSize {
		return "", fmt.Errorf("%w: %s exceeds the %s limit",
			ErrTooLarge, humanize.IBytes(uint64(size)), humanize.IBytes(MaxSize))
	}
	return mime, nil
}

// Open validates the file at path.
func Open(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotAudio, filepath.Base(abs))
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}

	mime, err := Validate(info.Name(), info.Size(), header[:n])
	if err != nil {
		return nil, err
	}
	return &File{Path: abs, Name: info.Name(), Size: info.Size(), MIME: mime}, nil
}

// SourceURL builds the file:// URL of a local path.
func SourceURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return media.FileURL(path)
}

// HumanSize formats a size for display, e.g. "3.2 MiB".
func HumanSize(size int64) string {
	return humanize.IBytes(uint64(max(size, 0)))
}
