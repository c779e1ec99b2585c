package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		op   Op
		err  error
		want string
	}{
		{OpFileLoad, nil, ""},
		{OpFileLoad, errors.New("file not found"), "Failed to load audio: file not found"},
		{OpPlaybackStart, errors.New("no audio device"), "Failed to start playback: no audio device"},
		{OpPlaybackRate, errors.New("playback rate not allowed: 3"), "Failed to change playback rate: playback rate not allowed: 3"},
		{OpClassify, errors.New("server unreachable"), "Failed to classify genre: server unreachable"},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("extension not allowed")

	assert.Empty(t, FormatWith(OpFileValidate, "song.ogg", nil))
	assert.Equal(t, "Failed to accept file 'song.ogg': extension not allowed",
		FormatWith(OpFileValidate, "song.ogg", err))
	assert.Equal(t, Format(OpFileValidate, err), FormatWith(OpFileValidate, "", err))
	assert.Equal(t, "Failed to load config '/home/user/.config/spectra/config.toml': syntax error",
		FormatWith(OpConfigLoad, "/home/user/.config/spectra/config.toml", errors.New("syntax error")))
}
