package dataset

import (
	"testing"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

func TestLoader_Run_FullPipeline(t *testing.T) {
	loader := NewLoader(nil, NewCache())

	table := &parser.RawTable{
		Headers: []string{"Post ID", "Post Date", "Content Type", "Likes", "Shares", "Comments"},
		Rows: [][]string{
			{"1", "2024-01-01", "Video", "10", "2", "1"},
			{"2", "2024-01-02", "Image", "5", "5", "5"},
		},
	}

	ds, diagnostics := loader.Run(ContentHash([]byte("upload")), table)

	if len(diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %d", len(diagnostics))
	}
	if len(ds.Posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(ds.Posts))
	}
	if ds.Posts[1].Engagement() != 15 {
		t.Errorf("Expected engagement 15, got %d", ds.Posts[1].Engagement())
	}
}

func TestLoader_Run_FatalYieldsEmptyDataset(t *testing.T) {
	loader := NewLoader(nil, NewCache())

	table := &parser.RawTable{
		Headers: []string{"likes", "shares"},
		Rows:    [][]string{{"10", "2"}},
	}

	ds, diagnostics := loader.Run(ContentHash([]byte("bad-upload")), table)

	if !HasFatal(diagnostics) {
		t.Fatal("Expected a fatal diagnostic")
	}
	if len(diagnostics) != 1 {
		t.Errorf("Expected exactly one diagnostic, got %d", len(diagnostics))
	}
	if !ds.Empty() {
		t.Error("Expected empty dataset on fatal diagnostic")
	}
}

func TestLoader_Run_MemoizesByContentHash(t *testing.T) {
	cache := NewCache()
	loader := NewLoader(nil, cache)

	table := &parser.RawTable{
		Headers: []string{"post_id", "likes"},
		Rows:    [][]string{{"1", "10"}},
	}

	hash := ContentHash([]byte("upload"))

	first, _ := loader.Run(hash, table)
	second, _ := loader.Run(hash, table)

	if first != second {
		t.Error("Expected the memoized dataset on a repeated hash")
	}
	if cache.Size() != 1 {
		t.Errorf("Expected one cache entry, got %d", cache.Size())
	}
}

func TestLoader_Run_WarningsTravelWithDataset(t *testing.T) {
	loader := NewLoader(nil, NewCache())

	table := &parser.RawTable{
		Headers: []string{"post_id", "shares", "comments"},
		Rows:    [][]string{{"1", "2", "1"}},
	}

	ds, diagnostics := loader.Run(ContentHash([]byte("partial-upload")), table)

	// likes, post_date, content_type are absent
	if len(diagnostics) != 3 {
		t.Errorf("Expected 3 warnings, got %d", len(diagnostics))
	}
	if HasFatal(diagnostics) {
		t.Error("Expected no fatal diagnostics")
	}
	if len(ds.Posts) != 1 {
		t.Errorf("Expected dataset to load despite warnings, got %d posts", len(ds.Posts))
	}
	if ds.Posts[0].Likes != 0 {
		t.Errorf("Expected likes defaulted to 0, got %d", ds.Posts[0].Likes)
	}
}
