package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTextColumnDetection(t *testing.T) {
	csv := "speaker,Sentence,id\nalice,Hello there,a1\nbob,Second line,\n"
	rows, err := parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Text != "Hello there" {
		t.Errorf("row 0 text = %q, want %q", rows[0].Text, "Hello there")
	}
	if rows[0].ID != "a1" {
		t.Errorf("row 0 id = %q, want %q", rows[0].ID, "a1")
	}
	if rows[1].ID != "2" {
		t.Errorf("row 1 id = %q, want fallback index %q", rows[1].ID, "2")
	}
}

func TestParseFallsBackToFirstColumn(t *testing.T) {
	csv := "line,speaker\nfirst utterance,alice\n"
	rows, err := parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if rows[0].Text != "first utterance" {
		t.Errorf("text = %q, want first column value", rows[0].Text)
	}
}

func TestParseSkipsEmptyText(t *testing.T) {
	csv := "text\nkeep me\n\"  \"\n\nlast one\n"
	rows, err := parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Text != "last one" {
		t.Errorf("row 1 text = %q", rows[1].Text)
	}
}

func TestParseIndexCountsSkippedRows(t *testing.T) {
	csv := "text\n\"\"\nonly row\n"
	rows, err := parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if rows[0].ID != "2" {
		t.Errorf("id = %q, want %q (1-based position in file)", rows[0].ID, "2")
	}
}

func TestParseNoUsableRows(t *testing.T) {
	if _, err := parse(strings.NewReader("text\n\n\n")); err == nil {
		t.Fatal("expected error for CSV with no usable rows")
	}
	if _, err := parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty CSV")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "id,text\ngreet,Good morning\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "greet" || rows[0].Text != "Good morning" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}
