package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []byte
		bars     int
		want     []byte
	}{
		{"averages pairs", []byte{10, 20, 30, 40}, 2, []byte{15, 35}},
		{"identity", []byte{1, 2, 3}, 3, []byte{1, 2, 3}},
		{"more bars than bins", []byte{10, 20}, 4, []byte{10, 10, 20, 20}},
		{"uneven split", []byte{0, 3, 6, 9, 12}, 2, []byte{1, 9}},
		{"empty snapshot", nil, 3, []byte{0, 0, 0}},
		{"no bars", []byte{1}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bucket(tt.snapshot, tt.bars))
		})
	}
}
