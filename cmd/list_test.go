package cmd

import (
	"bytes"
	"strings"
	"testing"

	"worklog/internal/store"
)

func TestPrintLogsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printLogs(&buf, nil)
	if got := buf.String(); got != "No work logs recorded.\n" {
		t.Fatalf("empty listing = %q", got)
	}
}

func TestPrintLogs(t *testing.T) {
	entries := []store.WorkLog{
		{Day: "5/3/2024", Start: "22:00", End: "06:00", Duration: 480, IsNight: true},
		{Day: "6/3/2024", Start: "09:00", End: "17:00", Duration: 480, IsNight: false},
	}

	var buf bytes.Buffer
	printLogs(&buf, entries)
	out := buf.String()

	for _, want := range []string{
		"5/3/2024",
		"22:00",
		"480",
		"yes",
		"Total: 16h 0m (960 min)",
		"Night: 8h 0m (480 min)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}

	// The night column stays empty for day shifts.
	lines := strings.Split(out, "\n")
	if strings.Contains(lines[2], "yes") {
		t.Fatalf("day shift row should not be flagged: %q", lines[2])
	}
}
