package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "empty window",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with player bar",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 6},
			want:         33,
		},
		{
			name:         "with prompt",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PromptHeight: 3},
			want:         36,
		},
		{
			name:         "all components",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 6, ScoresHeight: 1, PromptHeight: 3, HelpHeight: 1},
			want:         28,
		},
		{
			name:         "window too small",
			windowHeight: 5,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 6},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVisualizerHeight(t *testing.T) {
	tests := []struct {
		name          string
		contentHeight int
		configured    int
		want          int
	}{
		{"fits", 20, 8, 8},
		{"shrinks", 7, 8, 5},
		{"only borders fit", 2, 8, 0},
		{"nothing fits", 0, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisualizerHeight(tt.contentHeight, tt.configured, 2)
			if got != tt.want {
				t.Errorf("VisualizerHeight(%d, %d) = %d, want %d", tt.contentHeight, tt.configured, got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{59, true},
		{60, false},
		{120, false},
	}

	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}
