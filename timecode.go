package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime formats t seconds as H:MM:SS with the given number of
// decimals for the seconds, e.g. FormatTime(3725.5, 1) == "1:02:05.5".
// Negative times get a leading minus sign.
func FormatTime(t float64, decimals int) string {
	decimals = min(max(decimals, 0), 9)
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	// round first, so that 59.9999 does not print as 0:00:60.000
	scale := math.Pow(10, float64(decimals))
	t = math.Round(t*scale) / scale
	whole := int64(t)
	hours := whole / 3600
	mins := (whole / 60) % 60
	secs := t - float64(whole-whole%60)
	s := strconv.FormatFloat(secs, 'f', decimals, 64)
	if secs < 10 {
		s = "0" + s
	}
	return fmt.Sprintf("%s%d:%02d:%s", sign, hours, mins, s)
}

// TimeCode formats t as H:MM:SS.mmm.
func TimeCode(t float64) string { return FormatTime(t, 3) }

// ParseTime parses times in the forms accepted by FormatTime, as well as
// MM:SS(.frac) and plain seconds.
func ParseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.Split(s, ":")
	if len(parts) > 3 || s == "" {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	var ret float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		if i < len(parts)-1 && v != math.Trunc(v) {
			return 0, fmt.Errorf("invalid time %q: fractional hours or minutes", s)
		}
		ret = ret*60 + v
	}
	if neg {
		ret = -ret
	}
	return ret, nil
}

// clockTime formats t as HH:MM:SS<sep>mmm, the form used by subtitle files.
func clockTime(t float64, sep string) string {
	ms := int64(math.Round(max(t, 0) * 1000))
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", ms/3600000, ms/60000%60, ms/1000%60, sep, ms%1000)
}
