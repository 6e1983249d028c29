package render

import "fmt"

// FormatSize renders a byte count on the fixed three-tier 1024 scale:
// integer bytes below 1 KB, otherwise one decimal of KB or MB. There is
// deliberately no GB tier.
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("(%d B)", n)
	case n < 1024*1024:
		return fmt.Sprintf("(%.1f KB)", float64(n)/1024)
	default:
		return fmt.Sprintf("(%.1f MB)", float64(n)/(1024*1024))
	}
}
