package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Row is one utterance to synthesize.
type Row struct {
	ID   string
	Text string
}

var textColumns = []string{"text", "sentence", "utterance", "message"}

// Load reads utterance rows from a CSV file with a header. The text column is
// the first case-insensitive match among text/sentence/utterance/message,
// falling back to the first column. Ids come from an "id" column when present,
// otherwise the 1-based row index. Rows with empty text are skipped.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	textIdx := findColumn(header, textColumns)
	if textIdx < 0 {
		textIdx = 0
	}
	idIdx := findColumn(header, []string{"id"})

	var rows []Row
	for i := 1; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", i, err)
		}

		text := ""
		if textIdx < len(record) {
			text = strings.TrimSpace(record[textIdx])
		}
		if text == "" {
			continue
		}

		id := ""
		if idIdx >= 0 && idIdx < len(record) {
			id = strings.TrimSpace(record[idIdx])
		}
		if id == "" {
			id = strconv.Itoa(i)
		}

		rows = append(rows, Row{ID: id, Text: text})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no non-empty text lines found in CSV")
	}
	return rows, nil
}

func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return i
			}
		}
	}
	return -1
}
