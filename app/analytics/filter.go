package analytics

import (
	"time"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/dataset"
)

// AllContentTypes is the sentinel selection that disables category filtering.
const AllContentTypes = "All"

// DateRange is an inclusive day-granularity range. Time-of-day on either
// bound is discarded before comparison.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Filter holds the user's current selection. An empty ContentTypes slice is
// a valid selection that matches nothing; a slice containing the "All"
// sentinel matches every category. Predicates compose by logical AND.
type Filter struct {
	ContentTypes []string
	DateRange    *DateRange
}

// Apply returns a fresh slice of the posts matching the filter. The input is
// never mutated and row order is preserved, so applying the same filter
// twice yields the same result as applying it once.
func (f Filter) Apply(posts []dataset.Post) []dataset.Post {
	matchAll := false
	selected := make(map[string]bool, len(f.ContentTypes))
	for _, ct := range f.ContentTypes {
		if ct == AllContentTypes {
			matchAll = true
		}
		selected[ct] = true
	}

	var from, to time.Time
	if f.DateRange != nil {
		from = truncateToDay(f.DateRange.From)
		to = truncateToDay(f.DateRange.To)
	}

	filtered := make([]dataset.Post, 0, len(posts))
	for _, post := range posts {
		if !matchAll && !selected[post.ContentType] {
			continue
		}
		if f.DateRange != nil {
			day, ok := post.Day()
			if !ok || day.Before(from) || day.After(to) {
				continue
			}
		}
		filtered = append(filtered, post)
	}

	return filtered
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
