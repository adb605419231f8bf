package holiday

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// RowParser extracts a holiday date from one CSV record. Two strategies
// exist; which one a CSVSource uses is decided by configuration.
type RowParser interface {
	ParseRow(record []string) (time.Time, error)
}

// NewRowParser returns the row-parsing strategy for the given config name.
func NewRowParser(name string) (RowParser, error) {
	switch name {
	case "", "strict":
		return StrictRows{}, nil
	case "flexible":
		return FlexibleRows{}, nil
	default:
		return nil, fmt.Errorf("csv parser must be 'strict' or 'flexible', got '%s'", name)
	}
}

// StrictRows takes the first column verbatim and requires the exact
// YYYY-MM-DD form.
type StrictRows struct{}

func (StrictRows) ParseRow(record []string) (time.Time, error) {
	if len(record) == 0 {
		return time.Time{}, fmt.Errorf("empty record")
	}

	t, err := time.Parse("2006-01-02", record[0])
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.Midnight(t), nil
}

// FlexibleRows tolerates surrounding whitespace, a UTF-8 BOM and any of the
// date formats dateutil.ParseDate accepts. Header rows fail the date parse
// and fall out as skipped records.
type FlexibleRows struct{}

func (FlexibleRows) ParseRow(record []string) (time.Time, error) {
	if len(record) == 0 {
		return time.Time{}, fmt.Errorf("empty record")
	}

	field := strings.TrimSpace(strings.TrimPrefix(record[0], "\uFEFF"))
	return dateutil.ParseDate(field)
}

// CSVSource reads holiday dates from a tabular file, one date per row in
// the first column.
type CSVSource struct {
	filePath string
	parser   RowParser
	logger   *zap.Logger
}

// NewCSVSource creates a new CSVSource using the given row strategy.
func NewCSVSource(filePath string, parser RowParser, logger *zap.Logger) *CSVSource {
	return &CSVSource{
		filePath: filePath,
		parser:   parser,
		logger:   logger,
	}
}

// Holidays reads the whole file. A missing or structurally unreadable file
// is fatal; a row whose date does not parse is skipped with a warning and
// the run continues.
func (s *CSVSource) Holidays(_ int) ([]time.Time, error) {
	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows are validated per record below
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file %s: %w", s.filePath, err)
	}

	var dates []time.Time
	skipped := 0
	for i, record := range records {
		date, err := s.parser.ParseRow(record)
		if err != nil {
			skipped++
			s.logger.Warn("Skipping row with unparsable date",
				zap.String("file", s.filePath),
				zap.Int("row", i+1),
				zap.Strings("record", record),
				zap.Error(err))
			continue
		}
		dates = append(dates, date)
	}

	holidays := uniqueSorted(dates)
	s.logger.Info("Holidays file loaded",
		zap.String("file", s.filePath),
		zap.Int("rows", len(records)),
		zap.Int("skipped", skipped),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}
