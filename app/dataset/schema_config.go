package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Canonical column names every other stage works against.
const (
	ColumnPostID      = "post_id"
	ColumnPostDate    = "post_date"
	ColumnContentType = "content_type"
	ColumnLikes       = "likes"
	ColumnShares      = "shares"
	ColumnComments    = "comments"
)

var canonicalColumns = map[string]bool{
	ColumnPostID:      true,
	ColumnPostDate:    true,
	ColumnContentType: true,
	ColumnLikes:       true,
	ColumnShares:      true,
	ColumnComments:    true,
}

// SchemaConfig maps already-canonicalized header names (lower-case,
// underscored) onto canonical columns. Uploads exported from different tools
// rarely agree on header spelling, the synonym table absorbs that.
type SchemaConfig struct {
	Synonyms map[string]string `yaml:"synonyms"`
}

func DefaultSchemaConfig() *SchemaConfig {
	return &SchemaConfig{
		Synonyms: map[string]string{
			"id":            ColumnPostID,
			"postid":        ColumnPostID,
			"date":          ColumnPostDate,
			"posted_at":     ColumnPostDate,
			"type":          ColumnContentType,
			"post_type":     ColumnContentType,
			"like_count":    ColumnLikes,
			"share_count":   ColumnShares,
			"comment_count": ColumnComments,
		},
	}
}

// LoadSchemaConfig reads synonym overrides from a YAML file and merges them
// over the built-in defaults. An empty path returns the defaults unchanged.
func LoadSchemaConfig(path string) (*SchemaConfig, error) {
	schemaConfig := DefaultSchemaConfig()
	if path == "" {
		return schemaConfig, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema config: %w", err)
	}

	var overrides SchemaConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse schema config YAML: %w", err)
	}

	for synonym, target := range overrides.Synonyms {
		schemaConfig.Synonyms[synonym] = target
	}

	if err := schemaConfig.validate(); err != nil {
		return nil, fmt.Errorf("invalid schema config %s: %w", path, err)
	}

	return schemaConfig, nil
}

func (sc *SchemaConfig) validate() error {
	for synonym, target := range sc.Synonyms {
		if synonym == "" {
			return fmt.Errorf("synonym key must not be empty")
		}
		if !canonicalColumns[target] {
			return fmt.Errorf("synonym '%s' maps to unknown column '%s'", synonym, target)
		}
	}
	return nil
}
