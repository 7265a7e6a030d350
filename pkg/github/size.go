package github

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count in the largest unit that keeps the
// magnitude below 1024, with a single fractional digit: 1536 → "1.5 KB".
func FormatSize(bytes int64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}
