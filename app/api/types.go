package api

import (
	"sync"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/analytics"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/database"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/dataset"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

// Handler owns the active session: the current canonical dataset plus its
// load diagnostics. The dataset itself is immutable, the handler only swaps
// which dataset is current.
type Handler struct {
	csvParser  *parser.Parser
	loader     *dataset.Loader
	cache      *dataset.Cache
	uploadRepo database.UploadRepository

	mu      sync.RWMutex
	current *dataset.Entry
}

// AppliedFilters echoes the filter selection a response was computed with.
type AppliedFilters struct {
	ContentTypes []string `json:"content_types"`
	DateFrom     string   `json:"date_from,omitempty"`
	DateTo       string   `json:"date_to,omitempty"`
	DateFiltered bool     `json:"date_filtered"`
}

type UploadResponse struct {
	UploadID    string               `json:"upload_id,omitempty"`
	ContentHash string               `json:"content_hash"`
	Schema      dataset.Schema       `json:"schema"`
	Summary     analytics.Summary    `json:"summary"`
	RowsDropped int                  `json:"rows_dropped"`
	Diagnostics []dataset.Diagnostic `json:"diagnostics"`
}

type DashboardResponse struct {
	Filters        AppliedFilters             `json:"filters"`
	PostCount      int                        `json:"post_count"`
	Summary        analytics.Summary          `json:"summary"`
	TopPosts       []dataset.Post             `json:"top_posts"`
	CategoryTotals []analytics.CategoryTotals `json:"category_totals"`
	CategoryCounts []analytics.CategoryCount  `json:"category_counts"`
	DailyTotals    []analytics.DailyTotal     `json:"daily_totals,omitempty"`
	WeekdayTotals  []analytics.WeekdayTotal   `json:"weekday_totals,omitempty"`
	TopPost        *dataset.Post              `json:"top_post"`
	Diagnostics    []dataset.Diagnostic       `json:"diagnostics"`
}

type PostsResponse struct {
	Filters   AppliedFilters `json:"filters"`
	PostCount int            `json:"post_count"`
	Posts     []dataset.Post `json:"posts"`
}

type FilterOptionsResponse struct {
	ContentTypes []string `json:"content_types"`
	HasDate      bool     `json:"has_date"`
	MinDate      string   `json:"min_date,omitempty"`
	MaxDate      string   `json:"max_date,omitempty"`
}
