package dataset

import (
	"fmt"
	"strings"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

type Normalizer struct {
	schemaConfig *SchemaConfig
}

func NewNormalizer(schemaConfig *SchemaConfig) *Normalizer {
	if schemaConfig == nil {
		schemaConfig = DefaultSchemaConfig()
	}
	return &Normalizer{schemaConfig: schemaConfig}
}

// Run canonicalizes the header row and validates column presence. A missing
// post_id column is fatal: the returned table is empty and no further stage
// runs. Absent optional columns produce warnings and processing continues.
func (n *Normalizer) Run(table *parser.RawTable) (*parser.RawTable, []Diagnostic) {
	headers := make([]string, len(table.Headers))
	for i, header := range table.Headers {
		headers[i] = n.canonicalizeHeader(header)
	}

	normalized := &parser.RawTable{
		Headers: headers,
		Rows:    table.Rows,
	}

	if normalized.ColumnIndex(ColumnPostID) == -1 {
		return &parser.RawTable{}, []Diagnostic{{
			Severity: SeverityFatal,
			Column:   ColumnPostID,
			Message:  "required column 'post_id' (or 'Post ID') was not found in the upload",
		}}
	}

	var diagnostics []Diagnostic
	for _, column := range []string{ColumnPostDate, ColumnLikes, ColumnShares, ColumnComments, ColumnContentType} {
		if normalized.ColumnIndex(column) == -1 {
			diagnostics = append(diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Column:   column,
				Message:  fmt.Sprintf("column '%s' not found, values will be defaulted", column),
			})
		}
	}

	return normalized, diagnostics
}

// canonicalizeHeader trims whitespace, replaces spaces and literal dots with
// underscores, lower-cases, then folds configured synonyms onto canonical
// column names.
func (n *Normalizer) canonicalizeHeader(header string) string {
	canonical := strings.TrimSpace(header)
	canonical = strings.ReplaceAll(canonical, " ", "_")
	canonical = strings.ReplaceAll(canonical, ".", "_")
	canonical = strings.ToLower(canonical)

	if target, ok := n.schemaConfig.Synonyms[canonical]; ok {
		return target
	}
	return canonical
}
