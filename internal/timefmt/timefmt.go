// Package timefmt formats playback positions for display.
package timefmt

import (
	"fmt"
	"math"
)

// Zero is the display value for unknown or invalid times.
const Zero = "00:00"

// Format renders seconds as MM:SS. Minutes are not wrapped into hours, so a
// 75 minute track shows as "75:00". NaN, infinite and negative inputs render
// as Zero.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return Zero
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

