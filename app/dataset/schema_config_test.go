package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSchemaConfig(t *testing.T) {
	schemaConfig := DefaultSchemaConfig()

	if schemaConfig.Synonyms["id"] != ColumnPostID {
		t.Errorf("Expected 'id' to map to '%s', got '%s'", ColumnPostID, schemaConfig.Synonyms["id"])
	}
	if schemaConfig.Synonyms["post_type"] != ColumnContentType {
		t.Errorf("Expected 'post_type' to map to '%s', got '%s'", ColumnContentType, schemaConfig.Synonyms["post_type"])
	}
}

func TestLoadSchemaConfig_EmptyPathReturnsDefaults(t *testing.T) {
	schemaConfig, err := LoadSchemaConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schemaConfig.Synonyms["id"] != ColumnPostID {
		t.Error("Expected defaults for empty path")
	}
}

func TestLoadSchemaConfig_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yml")
	content := "synonyms:\n  reactions: likes\n  reposts: shares\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	schemaConfig, err := LoadSchemaConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if schemaConfig.Synonyms["reactions"] != ColumnLikes {
		t.Errorf("Expected 'reactions' override, got '%s'", schemaConfig.Synonyms["reactions"])
	}
	if schemaConfig.Synonyms["reposts"] != ColumnShares {
		t.Errorf("Expected 'reposts' override, got '%s'", schemaConfig.Synonyms["reposts"])
	}
	// Defaults survive the merge
	if schemaConfig.Synonyms["id"] != ColumnPostID {
		t.Error("Expected built-in synonyms to survive the merge")
	}
}

func TestLoadSchemaConfig_RejectsUnknownTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yml")
	content := "synonyms:\n  reactions: upvotes\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	if _, err := LoadSchemaConfig(path); err == nil {
		t.Error("Expected error for synonym mapping to unknown column")
	}
}

func TestLoadSchemaConfig_MissingFile(t *testing.T) {
	if _, err := LoadSchemaConfig("/nonexistent/schema.yml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadSchemaConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yml")
	if err := os.WriteFile(path, []byte("synonyms: [not a map"), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	if _, err := LoadSchemaConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
