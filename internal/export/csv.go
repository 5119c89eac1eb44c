// Package export converts work logs to and from the CSV interchange
// format. The on-disk JSON store stays canonical; CSV exists to move the
// dataset in and out of the app.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"worklog/internal/store"
)

// header is the fixed column set of the interchange format.
var header = []string{"day", "start", "end", "duration", "isNight"}

// Write renders the entries as CSV text, one row per record. Field values
// are digits, slashes, colons and boolean literals by construction, so no
// quoting is ever emitted.
func Write(entries []store.WorkLog) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(header)
	for _, e := range entries {
		w.Write([]string{
			e.Day,
			e.Start,
			e.End,
			strconv.Itoa(e.Duration),
			strconv.FormatBool(e.IsNight),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// WriteFile exports the entries to path using a staged pending-then-commit
// write: bytes go to a ".pending" sibling first and the file is renamed
// into place once complete, so other readers never see a partial export.
func WriteFile(entries []store.WorkLog, path string) error {
	pending := path + ".pending"
	if err := os.WriteFile(pending, Write(entries), 0o644); err != nil {
		return fmt.Errorf("write pending export: %w", err)
	}
	if err := os.Rename(pending, path); err != nil {
		_ = os.Remove(pending)
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// FileName returns the date-stamped export name, e.g. "worklog-5-3-2024.csv".
func FileName(t time.Time) string {
	return fmt.Sprintf("worklog-%d-%d-%d.csv", t.Day(), int(t.Month()), t.Year())
}

// Read parses CSV text into work log candidates. The first line is
// discarded as the header. A row is accepted only if it has exactly five
// fields, an integer duration and a boolean night flag; anything else is
// dropped without a diagnostic. An empty result is the only failure signal
// the caller gets.
func Read(r io.Reader) []store.WorkLog {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []store.WorkLog
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			continue
		}
		if line == 1 {
			continue
		}

		if len(record) != 5 {
			continue
		}
		duration, err := strconv.Atoi(record[3])
		if err != nil {
			continue
		}
		isNight, err := strconv.ParseBool(record[4])
		if err != nil {
			continue
		}

		entries = append(entries, store.WorkLog{
			Day:      record[0],
			Start:    record[1],
			End:      record[2],
			Duration: duration,
			IsNight:  isNight,
		})
	}
	return entries
}

// ReadFile parses the CSV file at path. A missing or unreadable file
// behaves like a file with no valid rows.
func ReadFile(path string) []store.WorkLog {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return Read(f)
}
