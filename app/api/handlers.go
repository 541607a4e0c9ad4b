package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/analytics"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/cfg"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/database"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/dataset"
	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

const topPostsLimit = 20

const dateParamLayout = "2006-01-02"

func NewHandler(loader *dataset.Loader, cache *dataset.Cache,
	uploadRepo database.UploadRepository) *Handler {
	return &Handler{
		csvParser:  parser.NewParser(),
		loader:     loader,
		cache:      cache,
		uploadRepo: uploadRepo,
	}
}

// UploadDataset ingests a CSV upload and makes the resulting dataset the
// current one. A structurally invalid upload (no post_id column) yields 422
// and leaves the previous dataset in place.
func (h *Handler) UploadDataset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' form field"})
		return
	}

	maxSize := cfg.Get().MaxUploadSize
	if maxSize > 0 && fileHeader.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("Upload exceeds the %d byte limit", maxSize),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("Failed to open upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	table, err := h.csvParser.Run(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contentHash := dataset.ContentHash(data)
	ds, diagnostics := h.loader.Run(contentHash, table)

	warningCount := 0
	for _, d := range diagnostics {
		if d.Severity == dataset.SeverityWarning {
			warningCount++
		}
	}

	uploadID, err := h.uploadRepo.RecordUpload(database.Upload{
		FileName:     fileHeader.Filename,
		ContentHash:  contentHash,
		SizeBytes:    fileHeader.Size,
		PostCount:    len(ds.Posts),
		RowsDropped:  ds.RowsDropped,
		WarningCount: warningCount,
		Fatal:        dataset.HasFatal(diagnostics),
	})
	if err != nil {
		// History is an audit trail, a write failure must not fail the upload
		slog.Warn("Failed to record upload history", "file", fileHeader.Filename, "error", err)
	}

	response := UploadResponse{
		UploadID:    uploadID,
		ContentHash: contentHash,
		Schema:      ds.Schema,
		Summary:     analytics.Summarize(ds.Posts),
		RowsDropped: ds.RowsDropped,
		Diagnostics: diagnostics,
	}

	if dataset.HasFatal(diagnostics) {
		slog.Error("Upload rejected", "file", fileHeader.Filename, "content_hash", contentHash[:12])
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	h.setCurrent(&dataset.Entry{Dataset: ds, Diagnostics: diagnostics})

	slog.Info("Upload accepted",
		"file", fileHeader.Filename,
		"content_hash", contentHash[:12],
		"posts", len(ds.Posts),
		"rows_dropped", ds.RowsDropped,
		"warnings", warningCount)

	c.JSON(http.StatusOK, response)
}

// GetDashboard recomputes every analytics view over the filtered dataset.
// Date-based views are omitted entirely when the upload had no usable date
// column.
func (h *Handler) GetDashboard(c *gin.Context) {
	entry, ok := h.currentEntry()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded, upload a CSV first"})
		return
	}

	filter, applied, err := h.parseFilters(c, entry.Dataset.Schema)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts := filter.Apply(entry.Dataset.Posts)

	response := DashboardResponse{
		Filters:        applied,
		PostCount:      len(posts),
		Summary:        analytics.Summarize(posts),
		TopPosts:       analytics.TopNByEngagement(posts, topPostsLimit),
		CategoryTotals: analytics.GroupSumByCategory(posts, analytics.AllMetrics),
		CategoryCounts: analytics.CountByCategory(posts),
		Diagnostics:    entry.Diagnostics,
	}

	if entry.Dataset.Schema.HasDate {
		response.DailyTotals = analytics.GroupSumByDay(posts)
		response.WeekdayTotals = analytics.GroupSumByWeekday(posts)
	}

	if top, ok := analytics.ArgmaxByEngagement(posts); ok {
		response.TopPost = &top
	}

	c.JSON(http.StatusOK, response)
}

// GetPosts returns the filtered canonical rows (the raw data preview).
func (h *Handler) GetPosts(c *gin.Context) {
	entry, ok := h.currentEntry()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded, upload a CSV first"})
		return
	}

	filter, applied, err := h.parseFilters(c, entry.Dataset.Schema)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts := filter.Apply(entry.Dataset.Posts)

	c.JSON(http.StatusOK, PostsResponse{
		Filters:   applied,
		PostCount: len(posts),
		Posts:     posts,
	})
}

// GetFilterOptions returns the values the client can build its filter
// controls from: distinct content types plus the dataset's date bounds.
func (h *Handler) GetFilterOptions(c *gin.Context) {
	entry, ok := h.currentEntry()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded, upload a CSV first"})
		return
	}

	ds := entry.Dataset

	options := FilterOptionsResponse{
		ContentTypes: []string{analytics.AllContentTypes},
		HasDate:      ds.Schema.HasDate,
	}
	for _, count := range analytics.CountByCategory(ds.Posts) {
		options.ContentTypes = append(options.ContentTypes, count.ContentType)
	}

	if ds.Schema.HasDate {
		var minDay, maxDay time.Time
		for _, post := range ds.Posts {
			day, ok := post.Day()
			if !ok {
				continue
			}
			if minDay.IsZero() || day.Before(minDay) {
				minDay = day
			}
			if maxDay.IsZero() || day.After(maxDay) {
				maxDay = day
			}
		}
		if !minDay.IsZero() {
			options.MinDate = minDay.Format(dateParamLayout)
			options.MaxDate = maxDay.Format(dateParamLayout)
		}
	}

	c.JSON(http.StatusOK, options)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.Get().Version,
	}

	entry, loaded := h.currentEntry()
	health["dataset_loaded"] = loaded
	if loaded {
		health["posts"] = len(entry.Dataset.Posts)
	}

	if uploadCount, err := h.uploadRepo.GetUploadCount(); err == nil {
		health["uploads"] = uploadCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"cache_entries": h.cache.Size(),
	}

	if entry, ok := h.currentEntry(); ok {
		stats["dataset"] = map[string]interface{}{
			"content_hash": entry.Dataset.ContentHash,
			"posts":        len(entry.Dataset.Posts),
			"rows_dropped": entry.Dataset.RowsDropped,
			"loaded_at":    entry.Dataset.LoadedAt.Format(time.RFC3339),
			"schema":       entry.Dataset.Schema,
		}
	}

	if uploadCount, err := h.uploadRepo.GetUploadCount(); err == nil {
		stats["uploads"] = uploadCount
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIListUploads(c *gin.Context) {
	uploads, err := h.uploadRepo.GetRecentUploads(50)
	if err != nil {
		slog.Error("Database error", "operation", "list_uploads", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"uploads": uploads,
		"total":   len(uploads),
	})
}

// APIClearDataset drops the current dataset and empties the memoization
// cache.
func (h *Handler) APIClearDataset(c *gin.Context) {
	h.setCurrent(nil)
	h.cache.Clear()

	slog.Info("Dataset cleared")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Dataset and cache cleared"})
}

func (h *Handler) setCurrent(entry *dataset.Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = entry
}

func (h *Handler) currentEntry() (*dataset.Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return nil, false
	}
	return h.current, true
}

// parseFilters builds the filter from query parameters. The category
// selection defaults to the "All" sentinel. Date parameters are honored only
// when the dataset has a date column; both bounds are required together.
func (h *Handler) parseFilters(c *gin.Context, schema dataset.Schema) (analytics.Filter, AppliedFilters, error) {
	contentTypes := c.QueryArray("content_type")
	if len(contentTypes) == 0 {
		contentTypes = []string{analytics.AllContentTypes}
	}

	filter := analytics.Filter{ContentTypes: contentTypes}
	applied := AppliedFilters{ContentTypes: contentTypes}

	fromParam := c.Query("date_from")
	toParam := c.Query("date_to")

	if !schema.HasDate || (fromParam == "" && toParam == "") {
		return filter, applied, nil
	}

	if fromParam == "" || toParam == "" {
		return filter, applied, fmt.Errorf("date_from and date_to must be provided together")
	}

	from, err := time.Parse(dateParamLayout, fromParam)
	if err != nil {
		return filter, applied, fmt.Errorf("invalid date_from '%s', expected YYYY-MM-DD", fromParam)
	}
	to, err := time.Parse(dateParamLayout, toParam)
	if err != nil {
		return filter, applied, fmt.Errorf("invalid date_to '%s', expected YYYY-MM-DD", toParam)
	}
	if to.Before(from) {
		return filter, applied, fmt.Errorf("date_to must not be before date_from")
	}

	filter.DateRange = &analytics.DateRange{From: from, To: to}
	applied.DateFrom = fromParam
	applied.DateTo = toParam
	applied.DateFiltered = true

	return filter, applied, nil
}
