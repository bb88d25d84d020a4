package models

import (
	"fmt"
	"time"
)

// LookbackWindow is the number of days an efficiency window reaches back from now.
type LookbackWindow int

const (
	WindowLast7Days  LookbackWindow = 7
	WindowLast30Days LookbackWindow = 30
)

// accountingDateLayout is the date-only layout accepted by sacct --starttime/--endtime.
const accountingDateLayout = "2006-01-02"

// SummaryWindows lists the windows reported in every efficiency summary, in output order.
var SummaryWindows = []LookbackWindow{WindowLast7Days, WindowLast30Days}

func NewLookbackWindowFromDays(days int) (LookbackWindow, error) {
	switch LookbackWindow(days) {
	case WindowLast7Days, WindowLast30Days:
		return LookbackWindow(days), nil
	default:
		return 0, fmt.Errorf("unsupported lookback window: %d days", days)
	}
}

func (w LookbackWindow) Days() int {
	return int(w)
}

func (w LookbackWindow) Duration() time.Duration {
	switch w {
	case WindowLast7Days, WindowLast30Days:
		return time.Duration(w) * 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid LookbackWindow: %d", int(w)))
	}
}

// TimeRange returns the accounting query range for a window ending at now.
// The end date is one day past now so that jobs ending today are included.
func (w LookbackWindow) TimeRange(now time.Time) (start string, end string) {
	start = now.Add(-w.Duration()).Format(accountingDateLayout)
	end = now.Add(24 * time.Hour).Format(accountingDateLayout)
	return start, end
}

// Label is the stable name of the window, e.g. "last-7-days".
func (w LookbackWindow) Label() string {
	return fmt.Sprintf("last-%d-days", w.Days())
}
