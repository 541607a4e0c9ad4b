package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run parses an uploaded CSV byte stream into a RawTable. The first record is
// the header row and is required. A UTF-8 BOM, if present, is stripped before
// parsing. Ragged rows are padded or truncated to the header width so that
// downstream stages can index columns uniformly.
func (p *Parser) Run(data []byte) (*RawTable, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	reader := csv.NewReader(transform.NewReader(bytes.NewReader(data), decoder))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("uploaded file is empty, a header row is required")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	table := &RawTable{Headers: headers}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row: %w", err)
		}
		table.Rows = append(table.Rows, padRow(record, len(headers)))
	}

	return table, nil
}

func padRow(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	padded := make([]string, width)
	copy(padded, record)
	return padded
}
