package releases

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders a size with binary multiples and at most one decimal,
// e.g. 1536 -> "1.5 KB", 1048576 -> "1 MB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	i := 0
	for unit := int64(1024); i < len(byteUnits)-1 && n >= unit; unit *= 1024 {
		i++
	}
	v := float64(n) / math.Pow(1024, float64(i))
	v = math.Round(v*10) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}

// FormatDate renders t as "January 2, 2006". The zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatCount renders n with thousands separators, e.g. 1234 -> "1,234".
func FormatCount(n int64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
}
