package dataset

import (
	"testing"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

func TestNormalizer_Run_CanonicalizesHeaders(t *testing.T) {
	normalizer := NewNormalizer(nil)

	table := &parser.RawTable{
		Headers: []string{" Post ID ", "Post.Date", "CONTENT TYPE", "Likes", "shares", "Comments"},
		Rows:    [][]string{{"1", "2024-01-01", "Video", "10", "2", "1"}},
	}

	normalized, diagnostics := normalizer.Run(table)

	expected := []string{"post_id", "post_date", "content_type", "likes", "shares", "comments"}
	for i, want := range expected {
		if normalized.Headers[i] != want {
			t.Errorf("Header %d: expected '%s', got '%s'", i, want, normalized.Headers[i])
		}
	}

	if len(diagnostics) != 0 {
		t.Errorf("Expected no diagnostics for a complete upload, got %d", len(diagnostics))
	}

	if len(normalized.Rows) != 1 {
		t.Errorf("Expected rows to pass through, got %d", len(normalized.Rows))
	}
}

func TestNormalizer_Run_AppliesSynonyms(t *testing.T) {
	normalizer := NewNormalizer(nil)

	table := &parser.RawTable{
		Headers: []string{"ID", "Posted At", "Post Type", "Like Count", "Share Count", "Comment Count"},
	}

	normalized, _ := normalizer.Run(table)

	expected := []string{"post_id", "post_date", "content_type", "likes", "shares", "comments"}
	for i, want := range expected {
		if normalized.Headers[i] != want {
			t.Errorf("Header %d: expected '%s', got '%s'", i, want, normalized.Headers[i])
		}
	}
}

func TestNormalizer_Run_MissingPostIDIsFatal(t *testing.T) {
	normalizer := NewNormalizer(nil)

	table := &parser.RawTable{
		Headers: []string{"likes", "shares"},
		Rows:    [][]string{{"10", "2"}},
	}

	normalized, diagnostics := normalizer.Run(table)

	if len(diagnostics) != 1 {
		t.Fatalf("Expected exactly one diagnostic, got %d", len(diagnostics))
	}
	if diagnostics[0].Severity != SeverityFatal {
		t.Errorf("Expected fatal severity, got '%s'", diagnostics[0].Severity)
	}
	if diagnostics[0].Column != ColumnPostID {
		t.Errorf("Expected diagnostic to name '%s', got '%s'", ColumnPostID, diagnostics[0].Column)
	}

	if len(normalized.Headers) != 0 || len(normalized.Rows) != 0 {
		t.Error("Expected empty table on fatal diagnostic")
	}
}

func TestNormalizer_Run_WarnsOnMissingOptionalColumns(t *testing.T) {
	normalizer := NewNormalizer(nil)

	table := &parser.RawTable{
		Headers: []string{"post_id"},
		Rows:    [][]string{{"1"}},
	}

	normalized, diagnostics := normalizer.Run(table)

	// post_date, likes, shares, comments, content_type
	if len(diagnostics) != 5 {
		t.Fatalf("Expected 5 warnings, got %d", len(diagnostics))
	}
	for _, d := range diagnostics {
		if d.Severity != SeverityWarning {
			t.Errorf("Expected warning severity for column '%s', got '%s'", d.Column, d.Severity)
		}
	}

	// Warnings never halt processing
	if len(normalized.Rows) != 1 {
		t.Errorf("Expected rows to survive warnings, got %d", len(normalized.Rows))
	}
}

func TestNormalizer_Run_SingleMissingMetricWarns(t *testing.T) {
	normalizer := NewNormalizer(nil)

	table := &parser.RawTable{
		Headers: []string{"post_id", "post_date", "content_type", "shares", "comments"},
	}

	_, diagnostics := normalizer.Run(table)

	if len(diagnostics) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(diagnostics))
	}
	if diagnostics[0].Column != ColumnLikes {
		t.Errorf("Expected warning for 'likes', got '%s'", diagnostics[0].Column)
	}
}

func TestNormalizer_Run_CustomSynonyms(t *testing.T) {
	schemaConfig := DefaultSchemaConfig()
	schemaConfig.Synonyms["reactions"] = ColumnLikes

	normalizer := NewNormalizer(schemaConfig)

	table := &parser.RawTable{
		Headers: []string{"post_id", "Reactions"},
	}

	normalized, _ := normalizer.Run(table)

	if normalized.Headers[1] != ColumnLikes {
		t.Errorf("Expected custom synonym to map to 'likes', got '%s'", normalized.Headers[1])
	}
}

func TestHasFatal(t *testing.T) {
	if HasFatal(nil) {
		t.Error("Expected no fatal in empty diagnostics")
	}
	if HasFatal([]Diagnostic{{Severity: SeverityWarning}}) {
		t.Error("Expected no fatal among warnings")
	}
	if !HasFatal([]Diagnostic{{Severity: SeverityWarning}, {Severity: SeverityFatal}}) {
		t.Error("Expected fatal to be detected")
	}
}
