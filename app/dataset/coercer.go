package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

const defaultContentType = "Unknown"

type Coercer struct{}

func NewCoercer() *Coercer {
	return &Coercer{}
}

// Run converts a normalized table into canonical posts. It is total:
// malformed cells degrade to defaults, they never error. Rows whose date
// fails to parse are dropped entirely when the date column exists.
func (c *Coercer) Run(table *parser.RawTable) *Dataset {
	idCol := table.ColumnIndex(ColumnPostID)
	dateCol := table.ColumnIndex(ColumnPostDate)
	typeCol := table.ColumnIndex(ColumnContentType)
	likesCol := table.ColumnIndex(ColumnLikes)
	sharesCol := table.ColumnIndex(ColumnShares)
	commentsCol := table.ColumnIndex(ColumnComments)

	ds := &Dataset{
		Schema: Schema{
			HasDate:        dateCol != -1,
			HasContentType: typeCol != -1,
			HasLikes:       likesCol != -1,
			HasShares:      sharesCol != -1,
			HasComments:    commentsCol != -1,
		},
		LoadedAt: time.Now().UTC(),
	}

	for _, row := range table.Rows {
		post := Post{
			PostID:      table.Value(row, idCol),
			ContentType: defaultContentType,
			Likes:       c.coerceMetric(table.Value(row, likesCol)),
			Shares:      c.coerceMetric(table.Value(row, sharesCol)),
			Comments:    c.coerceMetric(table.Value(row, commentsCol)),
		}

		if typeCol != -1 {
			post.ContentType = table.Value(row, typeCol)
		}

		if dateCol != -1 {
			parsed, ok := c.coerceDate(table.Value(row, dateCol))
			if !ok {
				ds.RowsDropped++
				continue
			}
			post.PostDate = &parsed
		}

		ds.Posts = append(ds.Posts, post)
	}

	return ds
}

func (c *Coercer) coerceDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// coerceMetric parses an engagement count. Non-numeric or empty cells become
// zero, fractional values are truncated, negatives are clamped to zero so
// canonical metrics stay non-negative.
func (c *Coercer) coerceMetric(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	if parsed < 0 {
		return 0
	}
	return int(parsed)
}
