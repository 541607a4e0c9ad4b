package dataset

import (
	"time"
)

type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a structured validation notice collected while loading an
// upload. Diagnostics are returned as values, they never surface as errors
// past the pipeline boundary.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Column   string   `json:"column"`
	Message  string   `json:"message"`
}

func HasFatal(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Post is one normalized, type-coerced record derived from a raw input row.
type Post struct {
	PostID      string     `json:"post_id"`
	PostDate    *time.Time `json:"post_date"`
	ContentType string     `json:"content_type"`
	Likes       int        `json:"likes"`
	Shares      int        `json:"shares"`
	Comments    int        `json:"comments"`
}

// Engagement is derived at read time so it can never drift from the three
// metric fields it is defined by.
func (p Post) Engagement() int {
	return p.Likes + p.Shares + p.Comments
}

// Weekday returns the canonical weekday name for the post date. The second
// return value is false when the post has no date.
func (p Post) Weekday() (string, bool) {
	if p.PostDate == nil {
		return "", false
	}
	return p.PostDate.Weekday().String(), true
}

// Day returns the post date truncated to day granularity.
func (p Post) Day() (time.Time, bool) {
	if p.PostDate == nil {
		return time.Time{}, false
	}
	d := *p.PostDate
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
}

// WeekdayRank maps a weekday name onto the canonical week starting Monday
// (Monday=0 .. Sunday=6). Unknown names rank last.
func WeekdayRank(name string) int {
	for i, d := range WeekdayOrder {
		if d == name {
			return i
		}
	}
	return len(WeekdayOrder)
}

var WeekdayOrder = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Schema records which optional columns were present in the upload. Presence
// is decided once at normalization time and consumed uniformly downstream,
// date-based views are disabled when HasDate is false.
type Schema struct {
	HasDate        bool `json:"has_date"`
	HasContentType bool `json:"has_content_type"`
	HasLikes       bool `json:"has_likes"`
	HasShares      bool `json:"has_shares"`
	HasComments    bool `json:"has_comments"`
}

// Dataset is the canonical result of loading one upload. It is immutable
// after construction; filtering always produces a fresh slice.
type Dataset struct {
	Posts       []Post    `json:"posts"`
	Schema      Schema    `json:"schema"`
	ContentHash string    `json:"content_hash"`
	LoadedAt    time.Time `json:"loaded_at"`
	RowsDropped int       `json:"rows_dropped"`
}

func (d *Dataset) Empty() bool {
	return d == nil || len(d.Posts) == 0
}
