// Package export serializes journal records to the supported interchange
// formats. Each format emits records in the order it is given; the caller
// decides ordering and windowing.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oneirotools/oneiro/internal/journal"
)

// Format names a supported export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned for any format outside the declared set.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ErrTooManyRecords is returned when the record count exceeds the cap the
// caller passed to Export.
var ErrTooManyRecords = errors.New("too many records to export")

// csvHeader is the CSV column contract. The order mirrors the JSON field
// order of DreamRecord and must not change between releases.
var csvHeader = []string{
	"id", "date", "text", "polarity", "subjectivity",
	"emotion", "themes", "lucid", "sleep_quality", "word_count",
}

// Export renders records in the requested format. Format names are
// matched case-insensitively. Multi-valued themes are joined with ";" in
// CSV so the comma stays a pure column separator.
func Export(records []journal.DreamRecord, format Format, maxRecords int) (string, error) {
	if len(records) > maxRecords {
		return "", fmt.Errorf("%w: %d records, maximum %d", ErrTooManyRecords, len(records), maxRecords)
	}

	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return exportJSON(records)
	case FormatCSV:
		return exportCSV(records)
	case FormatMarkdown:
		return exportMarkdown(records), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func exportJSON(records []journal.DreamRecord) (string, error) {
	if records == nil {
		records = []journal.DreamRecord{}
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding records: %w", err)
	}
	return string(out), nil
}

func exportCSV(records []journal.DreamRecord) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date.String(),
			r.Text,
			strconv.FormatFloat(r.Polarity, 'g', -1, 64),
			strconv.FormatFloat(r.Subjectivity, 'g', -1, 64),
			r.Emotion,
			strings.Join(r.Themes, ";"),
			strconv.FormatBool(r.Lucid),
			strconv.Itoa(r.SleepQuality),
			strconv.Itoa(r.WordCount),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing record %d: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing output: %w", err)
	}
	return buf.String(), nil
}

func exportMarkdown(records []journal.DreamRecord) string {
	var b strings.Builder
	b.WriteString("# Dream Journal Export\n\n")

	for i, r := range records {
		fmt.Fprintf(&b, "## Dream %d - %s\n\n", i+1, r.Date)
		fmt.Fprintf(&b, "**Text:** %s\n\n", r.Text)
		fmt.Fprintf(&b, "**Emotion:** %s\n\n", r.Emotion)
		fmt.Fprintf(&b, "**Themes:** %s\n\n", strings.Join(r.Themes, ", "))
		fmt.Fprintf(&b, "**Polarity:** %g | **Subjectivity:** %g\n\n", r.Polarity, r.Subjectivity)
		fmt.Fprintf(&b, "**Lucid:** %t | **Sleep quality:** %d/10\n\n", r.Lucid, r.SleepQuality)
		b.WriteString("---\n\n")
	}
	return b.String()
}
