package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"StockScout/internal/model"
)

// Columns is the fixed output column order, one per SignalRecord field.
var Columns = []string{
	"ticker",
	"date",
	"price",
	"day_change_pct",
	"golden_cross_5_20",
	"vol_spike_vs_20d",
	"above_ma60_pct",
}

// Writer serializes ranked tables into timestamped CSV and HTML artifacts.
type Writer struct {
	OutputDir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{OutputDir: dir}
}

// Export writes the table as scan_<timestamp>.csv and .html under the
// output dir and returns both paths. An empty table still produces
// well-formed artifacts with a header and no rows.
func (w *Writer) Export(table model.RankedTable, at time.Time) (csvPath, htmlPath string, err error) {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	ts := at.Format("20060102_1504")
	csvPath = filepath.Join(w.OutputDir, fmt.Sprintf("scan_%s.csv", ts))
	htmlPath = filepath.Join(w.OutputDir, fmt.Sprintf("scan_%s.html", ts))

	if err := w.writeCSV(csvPath, table); err != nil {
		return "", "", err
	}
	if err := w.writeHTML(htmlPath, table, at); err != nil {
		return "", "", err
	}
	return csvPath, htmlPath, nil
}

func (w *Writer) writeCSV(path string, table model.RankedTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range table {
		if err := cw.Write(Row(rec)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Row renders one record as strings in Columns order. Undefined
// percentages render empty, not zero.
func Row(rec model.SignalRecord) []string {
	return []string{
		rec.Ticker,
		rec.Date.Format("2006-01-02"),
		strconv.FormatFloat(rec.Price, 'f', -1, 64),
		statString(rec.DayChangePct),
		strconv.FormatBool(rec.GoldenCross),
		strconv.FormatBool(rec.VolSpike),
		statString(rec.AboveMA60Pct),
	}
}

func statString(s model.Stat) string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}
