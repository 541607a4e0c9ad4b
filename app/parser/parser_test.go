package parser

import (
	"testing"
)

func TestParser_Run_BasicCSV(t *testing.T) {
	p := NewParser()

	data := []byte("Post_ID,Likes,Shares\n1,10,2\n2,5,5\n")

	table, err := p.Run(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(table.Headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.Headers))
	}
	if table.Headers[0] != "Post_ID" {
		t.Errorf("Expected first header 'Post_ID', got '%s'", table.Headers[0])
	}
	if len(table.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][1] != "10" {
		t.Errorf("Expected cell '10', got '%s'", table.Rows[0][1])
	}
}

func TestParser_Run_EmptyFile(t *testing.T) {
	p := NewParser()

	_, err := p.Run([]byte(""))
	if err == nil {
		t.Error("Expected error for empty file")
	}
}

func TestParser_Run_HeaderOnly(t *testing.T) {
	p := NewParser()

	table, err := p.Run([]byte("Post_ID,Likes\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(table.Headers) != 2 {
		t.Errorf("Expected 2 headers, got %d", len(table.Headers))
	}
	if len(table.Rows) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(table.Rows))
	}
}

func TestParser_Run_StripsBOM(t *testing.T) {
	p := NewParser()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Post_ID\n1\n")...)

	table, err := p.Run(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if table.Headers[0] != "Post_ID" {
		t.Errorf("BOM not stripped from header: got '%s'", table.Headers[0])
	}
}

func TestParser_Run_RaggedRows(t *testing.T) {
	p := NewParser()

	data := []byte("Post_ID,Likes,Shares\n1,10\n2,5,5,99\n")

	table, err := p.Run(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Short row padded with empty cells, long row truncated
	if len(table.Rows[0]) != 3 {
		t.Errorf("Expected padded row of width 3, got %d", len(table.Rows[0]))
	}
	if table.Rows[0][2] != "" {
		t.Errorf("Expected empty padding cell, got '%s'", table.Rows[0][2])
	}
	if len(table.Rows[1]) != 3 {
		t.Errorf("Expected truncated row of width 3, got %d", len(table.Rows[1]))
	}
}

func TestRawTable_ColumnIndex(t *testing.T) {
	table := &RawTable{Headers: []string{"post_id", "likes"}}

	if idx := table.ColumnIndex("likes"); idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}
	if idx := table.ColumnIndex("missing"); idx != -1 {
		t.Errorf("Expected index -1 for missing column, got %d", idx)
	}
}

func TestRawTable_Value(t *testing.T) {
	table := &RawTable{Headers: []string{"post_id", "likes"}}
	row := []string{"1", "10"}

	if v := table.Value(row, 1); v != "10" {
		t.Errorf("Expected '10', got '%s'", v)
	}
	if v := table.Value(row, -1); v != "" {
		t.Errorf("Expected empty string for absent column, got '%s'", v)
	}
	if v := table.Value(row, 5); v != "" {
		t.Errorf("Expected empty string for out-of-range column, got '%s'", v)
	}
}
