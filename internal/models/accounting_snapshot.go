package models

import "time"

// AccountingSnapshot is the raw sacct output for one user and window, captured for replay.
type AccountingSnapshot struct {
	User       string
	Window     LookbackWindow
	Payload    string
	CapturedAt time.Time
}
