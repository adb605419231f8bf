package holiday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestCSVSource_StrictSkipsBadRows(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := writeTempFile(t, "holidays.csv",
		"2023-12-25,Christmas\n"+
			"not-a-date,Nonsense\n"+
			"2023-01-01,New Year\n"+
			"2023-12-25,Christmas again\n")

	parser, err := NewRowParser("strict")
	if err != nil {
		t.Fatalf("NewRowParser() error = %v", err)
	}

	holidays, err := NewCSVSource(path, parser, logger).Holidays(2023)
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}

	want := []time.Time{
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
	}
	if len(holidays) != len(want) {
		t.Fatalf("holidays = %v, want %v", holidays, want)
	}
	for i := range want {
		if !holidays[i].Equal(want[i]) {
			t.Errorf("holidays[%d] = %v, want %v", i, holidays[i], want[i])
		}
	}
}

func TestCSVSource_StrictRejectsLooseFormats(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := writeTempFile(t, "holidays.csv",
		"25.12.2023,European format\n"+
			"2023-12-26,Boxing Day\n")

	parser, _ := NewRowParser("strict")

	holidays, err := NewCSVSource(path, parser, logger).Holidays(2023)
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}

	if len(holidays) != 1 {
		t.Fatalf("holidays = %v, want only the ISO row", holidays)
	}
}

func TestCSVSource_FlexibleAcceptsHeaderAndFormats(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := writeTempFile(t, "holidays.csv",
		"date,name\n"+
			"2023-12-25,Christmas\n"+
			"26.12.2023,Boxing Day\n"+
			" 2023-01-01 ,New Year\n")

	parser, err := NewRowParser("flexible")
	if err != nil {
		t.Fatalf("NewRowParser() error = %v", err)
	}

	holidays, err := NewCSVSource(path, parser, logger).Holidays(2023)
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}

	want := []time.Time{
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 26, 0, 0, 0, 0, time.UTC),
	}
	if len(holidays) != len(want) {
		t.Fatalf("holidays = %v, want %v", holidays, want)
	}
	for i := range want {
		if !holidays[i].Equal(want[i]) {
			t.Errorf("holidays[%d] = %v, want %v", i, holidays[i], want[i])
		}
	}
}

func TestCSVSource_MissingFileIsFatal(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	parser, _ := NewRowParser("strict")

	if _, err := NewCSVSource("/nonexistent/holidays.csv", parser, logger).Holidays(2023); err == nil {
		t.Fatal("Holidays() expected error for missing file, got nil")
	}
}

func TestNewRowParser_UnknownStrategy(t *testing.T) {
	if _, err := NewRowParser("pandas"); err == nil {
		t.Fatal("NewRowParser() expected error for unknown strategy, got nil")
	}
}
