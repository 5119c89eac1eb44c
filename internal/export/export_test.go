package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"worklog/internal/store"
)

func sampleLogs() []store.WorkLog {
	return []store.WorkLog{
		{Day: "5/3/2024", Start: "22:00", End: "06:00", Duration: 480, IsNight: true},
		{Day: "6/3/2024", Start: "09:00", End: "17:00", Duration: 480, IsNight: false},
	}
}

// ============================================================
// Write
// ============================================================

func TestWriteFormat(t *testing.T) {
	got := string(Write(sampleLogs()))
	want := "day,start,end,duration,isNight\n" +
		"5/3/2024,22:00,06:00,480,true\n" +
		"6/3/2024,09:00,17:00,480,false\n"
	if got != want {
		t.Fatalf("Write:\n got %q\nwant %q", got, want)
	}
}

func TestWriteEmpty(t *testing.T) {
	got := string(Write(nil))
	if got != "day,start,end,duration,isNight\n" {
		t.Fatalf("empty export should be header only, got %q", got)
	}
}

func TestWriteNoQuoting(t *testing.T) {
	// Field values are constrained to digits, slashes, colons and boolean
	// literals, so the output must never contain a quote.
	if strings.Contains(string(Write(sampleLogs())), `"`) {
		t.Fatal("export should not contain quoted fields")
	}
}

// ============================================================
// Read
// ============================================================

func TestReadRoundTrip(t *testing.T) {
	logs := sampleLogs()
	got := Read(bytes.NewReader(Write(logs)))
	if !reflect.DeepEqual(got, logs) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, logs)
	}
}

func TestReadDropsMalformedRows(t *testing.T) {
	in := "day,start,end,duration,isNight\n" +
		"5/3/2024,22:00,06:00,480,true\n" + // valid
		"6/3/2024,09:00,17:00\n" + // too few fields
		"7/3/2024,09:00,17:00,eight,false\n" + // non-integer duration
		"8/3/2024,09:00,17:00,480,maybe\n" + // non-boolean flag
		"9/3/2024,09:00,17:00,480,false,extra\n" + // too many fields
		"10/3/2024,10:00,18:00,480,false\n" // valid

	got := Read(strings.NewReader(in))
	want := []store.WorkLog{
		{Day: "5/3/2024", Start: "22:00", End: "06:00", Duration: 480, IsNight: true},
		{Day: "10/3/2024", Start: "10:00", End: "18:00", Duration: 480, IsNight: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("malformed rows not dropped cleanly:\n got %+v\nwant %+v", got, want)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	got := Read(strings.NewReader("day,start,end,duration,isNight\n"))
	if got != nil {
		t.Fatalf("header-only input should yield no records, got %+v", got)
	}
}

func TestReadEmptyInput(t *testing.T) {
	if got := Read(strings.NewReader("")); got != nil {
		t.Fatalf("empty input should yield no records, got %+v", got)
	}
}

func TestReadDiscardsFirstLine(t *testing.T) {
	// The first line is always treated as the header, even when it looks
	// like data.
	in := "1/1/2024,09:00,17:00,480,false\n" +
		"2/1/2024,09:00,17:00,480,false\n"
	got := Read(strings.NewReader(in))
	if len(got) != 1 || got[0].Day != "2/1/2024" {
		t.Fatalf("first line must be discarded as header, got %+v", got)
	}
}

func TestReadDoesNotDeduplicate(t *testing.T) {
	in := "day,start,end,duration,isNight\n" +
		"5/3/2024,22:00,06:00,480,true\n" +
		"5/3/2024,22:00,06:00,480,true\n"
	got := Read(strings.NewReader(in))
	if len(got) != 2 {
		t.Fatalf("identical rows must both be kept, got %d", len(got))
	}
}

// ============================================================
// Files
// ============================================================

func TestWriteFileStagedCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteFile(sampleLogs(), path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export missing: %v", err)
	}
	if _, err := os.Stat(path + ".pending"); !os.IsNotExist(err) {
		t.Fatal("pending file must be gone after a committed export")
	}

	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, Write(sampleLogs())) {
		t.Fatal("exported bytes differ from Write output")
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(nil, filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestReadFileMissing(t *testing.T) {
	got := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if got != nil {
		t.Fatalf("missing file should read as no records, got %+v", got)
	}
}

func TestReadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFile(sampleLogs(), path); err != nil {
		t.Fatal(err)
	}
	got := ReadFile(path)
	if !reflect.DeepEqual(got, sampleLogs()) {
		t.Fatalf("file round trip mismatch: %+v", got)
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	if got != "worklog-5-3-2024.csv" {
		t.Fatalf("FileName = %q, want worklog-5-3-2024.csv", got)
	}
}
