package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as [DD:][HH:]MM:SS[.ff]. Leading day and hour
// segments are omitted while their totals are zero; units are truncated,
// never rounded up. The fraction is the sub-second part in hundredths,
// truncated and printed without padding.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)

	minutes := secs / 60
	hours := minutes / 60
	days := hours / 24

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%02d:", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%02d:", hours%24)
	}
	fmt.Fprintf(&b, "%02d:", minutes%60)
	fmt.Fprintf(&b, "%02d", secs%60)

	if nanos > 0 {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(nanos/1e7, 10))
	}
	return b.String()
}

// FormatBitRate scales a bits-per-second value into B/s, KB/s or MB/s.
// Thresholds are strict: exactly 1000 stays in B/s and exactly 1,000,000
// renders as KB/s.
func FormatBitRate(bitRate int64) string {
	switch {
	case bitRate > 1_000_000:
		return fmt.Sprintf("%.2f MB/s", float64(bitRate)/1_000_000)
	case bitRate > 1_000:
		return fmt.Sprintf("%.2f KB/s", float64(bitRate)/1_000)
	default:
		return fmt.Sprintf("%d B/s", bitRate)
	}
}
