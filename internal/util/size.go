// Package util holds small formatting helpers shared by infra adapters.
package util

import "fmt"

const byteUnits = "KMGTPE"

// FormatBytes renders a size with a binary unit, e.g. 1536 -> "1.5 KB".
// Negative sizes come from multipart parts of unknown length and render as "unknown".
func FormatBytes(n int64) string {
	if n < 0 {
		return "unknown"
	}

	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for q := n / unit; q >= unit && exp < len(byteUnits)-1; q /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), byteUnits[exp])
}
