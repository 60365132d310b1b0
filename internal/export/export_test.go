package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/oneirotools/oneiro/internal/journal"
)

func sampleRecords() []journal.DreamRecord {
	d1, _ := journal.ParseDate("2025-06-10")
	d2, _ := journal.ParseDate("2025-06-11")
	return []journal.DreamRecord{
		{
			ID: 1, Date: d1, Text: "Flying over the ocean, calm and free",
			Polarity: 0.6, Subjectivity: 0.5, Emotion: "joy",
			Themes: []string{"flying", "water"}, Lucid: true,
			SleepQuality: 8, WordCount: 7,
		},
		{
			ID: 2, Date: d2, Text: "Running through dark halls, something behind me",
			Polarity: -0.7, Subjectivity: 0.6, Emotion: "fear",
			Themes: []string{"chase"}, Lucid: false,
			SleepQuality: 4, WordCount: 7,
		},
	}
}

// ─── JSON ────────────────────────────────────────────────────────────────────

func TestExport_JSONRoundTrip(t *testing.T) {
	records := sampleRecords()

	out, err := Export(records, FormatJSON, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var back []journal.DreamRecord
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("decoded %d records, want 2", len(back))
	}
	if back[0].ID != 1 || back[0].Emotion != "joy" {
		t.Errorf("first record = %+v", back[0])
	}
	if back[1].Date.String() != "2025-06-11" {
		t.Errorf("second date = %s, want 2025-06-11", back[1].Date)
	}
}

func TestExport_JSONEmptyJournal(t *testing.T) {
	out, err := Export(nil, FormatJSON, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("empty export = %q, want []", out)
	}
}

// ─── CSV ─────────────────────────────────────────────────────────────────────

func TestExport_CSVHeaderAndRows(t *testing.T) {
	out, err := Export(sampleRecords(), FormatCSV, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 records", len(rows))
	}

	wantHeader := "id,date,text,polarity,subjectivity,emotion,themes,lucid,sleep_quality,word_count"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	if rows[1][0] != "1" || rows[1][5] != "joy" {
		t.Errorf("first row = %v", rows[1])
	}
	if rows[1][6] != "flying;water" {
		t.Errorf("themes cell = %q, want %q", rows[1][6], "flying;water")
	}
	if rows[2][7] != "false" {
		t.Errorf("lucid cell = %q, want false", rows[2][7])
	}
}

func TestExport_CSVQuotesCommasInText(t *testing.T) {
	d, _ := journal.ParseDate("2025-06-10")
	records := []journal.DreamRecord{{
		ID: 1, Date: d,
		Text:    "First, I fell. Then, I flew.",
		Emotion: "neutral", SleepQuality: 7, WordCount: 6,
	}}

	out, err := Export(records, FormatCSV, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows[1]) != len(csvHeader) {
		t.Errorf("row has %d columns, want %d", len(rows[1]), len(csvHeader))
	}
	if rows[1][2] != records[0].Text {
		t.Errorf("text cell = %q, want %q", rows[1][2], records[0].Text)
	}
}

// ─── Markdown ────────────────────────────────────────────────────────────────

func TestExport_MarkdownSections(t *testing.T) {
	out, err := Export(sampleRecords(), FormatMarkdown, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, want := range []string{
		"# Dream Journal Export",
		"## Dream 1 - 2025-06-10",
		"## Dream 2 - 2025-06-11",
		"**Text:** Flying over the ocean, calm and free",
		"**Emotion:** fear",
		"**Themes:** flying, water",
		"---",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExport_MarkdownNumbersByPosition(t *testing.T) {
	// Records carry IDs 3 and 4 (say, after a clear); sections still count
	// from 1 in journal order.
	records := sampleRecords()
	records[0].ID = 3
	records[1].ID = 4

	out, err := Export(records, FormatMarkdown, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "## Dream 1 - 2025-06-10") {
		t.Errorf("first section not numbered 1:\n%s", out)
	}
	if !strings.Contains(out, "## Dream 2 - 2025-06-11") {
		t.Errorf("second section not numbered 2:\n%s", out)
	}
	if strings.Contains(out, "## Dream 3") {
		t.Error("section numbered by record ID instead of position")
	}
}

func TestExport_MarkdownEmptyJournal(t *testing.T) {
	out, err := Export(nil, FormatMarkdown, 10000)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(out, "# Dream Journal Export") {
		t.Errorf("empty markdown = %q, want title only", out)
	}
}

// ─── Errors ──────────────────────────────────────────────────────────────────

func TestExport_FormatIsCaseInsensitive(t *testing.T) {
	out, err := Export(sampleRecords(), Format("JSON"), 10000)
	if err != nil {
		t.Fatalf("Export(JSON): %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Errorf("uppercase format did not produce JSON: %q", out)
	}

	if _, err := Export(sampleRecords(), Format("Markdown"), 10000); err != nil {
		t.Errorf("Export(Markdown): %v", err)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export(sampleRecords(), Format("xml"), 10000)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExport_TooManyRecords(t *testing.T) {
	_, err := Export(sampleRecords(), FormatJSON, 1)
	if !errors.Is(err, ErrTooManyRecords) {
		t.Errorf("err = %v, want ErrTooManyRecords", err)
	}
}
