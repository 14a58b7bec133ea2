package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders elapsed wall-clock time as the " took ..."
// suffix shown after the command line. Zero whole seconds collapse to
// "< 1s"; zero-valued units are omitted.
func FormatDuration(d time.Duration) string {
	secs := int64(d.Seconds())
	if secs <= 0 {
		return " took < 1s"
	}

	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	var b strings.Builder
	b.WriteString(" took ")
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
