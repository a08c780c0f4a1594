package wiki

import (
	"math"
	"strconv"
	"strings"
)

// FormatDurationHMS renders a millisecond count as e.g. "1h5m30s". Zero
// components are omitted, so 0 renders as "".
func FormatDurationHMS(ms int64) string {
	secs := ms / 1000

	var b strings.Builder
	if secs >= 3600 {
		b.WriteString(strconv.FormatInt(secs/3600, 10))
		b.WriteString("h")
		secs %= 3600
	}
	if secs >= 60 {
		b.WriteString(strconv.FormatInt(secs/60, 10))
		b.WriteString("m")
		secs %= 60
	}
	if secs > 0 {
		b.WriteString(strconv.FormatInt(secs, 10))
		b.WriteString("s")
	}
	return b.String()
}

// FormatSeconds renders a millisecond count as fractional seconds, e.g. "1.5s".
func FormatSeconds(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + "s"
}

// FormatPercentDelta renders a multiplier around 1.0 as a signed percentage:
// 1.25 is "+25%", 0.9 is "-10%" and 1.0 is "+0%". Halves round up.
func FormatPercentDelta(scalar float64) string {
	pct := int64(math.Floor((scalar-1)*100 + 0.5))
	if pct >= 0 {
		return "+" + strconv.FormatInt(pct, 10) + "%"
	}
	return strconv.FormatInt(pct, 10) + "%"
}

// JoinWithCommaSpace joins items with ", ".
func JoinWithCommaSpace(items []string) string {
	return strings.Join(items, ", ")
}
