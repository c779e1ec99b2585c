package media

import "math"

// silentVolume is the beep volume used for a zero level; effects.Volume with
// base 2 at -10 is about -60 dB.
const silentVolume = -10

// levelToVolume maps a linear level in [0, 1] onto effects.Volume's base-2
// logarithmic scale: 1 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> silentVolume.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return silentVolume
	}
	if level >= 1 {
		return 0
	}
	return max(math.Log2(level), silentVolume)
}

// clampLevel restricts a volume level to [0, 1].
func clampLevel(level float64) float64 {
	if math.IsNaN(level) {
		return 0
	}
	return min(max(level, 0), 1)
}
