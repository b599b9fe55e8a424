package domain

import "time"

// Report flags the message at a given log position for admin review.
// Reports are append-only and deliberately not deduplicated: the same
// message may be reported any number of times, by anyone who sees it.
type Report struct {
	Index      int       `json:"index"`
	ReportedBy string    `json:"reportedBy"`
	At         time.Time `json:"at"`
}
