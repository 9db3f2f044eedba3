// Package report renders batch extraction results as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/g-caf/bootleg-expensify-sub000/internal/batch"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
)

// Row is one CSV line of the extraction report.
type Row struct {
	File           string `csv:"file"`
	Duplicate      bool   `csv:"duplicate"`
	IsReceipt      bool   `csv:"is_receipt"`
	Vendor         string `csv:"vendor"`
	VendorStrategy string `csv:"vendor_strategy"`
	Amount         string `csv:"amount"`
	AmountSource   string `csv:"amount_source"`
	Date           string `csv:"date"`
	DateConfidence int    `csv:"date_confidence"`
	DateSynthetic  bool   `csv:"date_synthetic"`
	Score          int    `csv:"score"`
	Confidence     int    `csv:"confidence"`
}

// FromResults flattens batch results into report rows.
func FromResults(results []batch.FileResult) []Row {
	rows := make([]Row, 0, len(results))
	for _, fr := range results {
		row := Row{
			File:      filepath.Base(fr.Path),
			Duplicate: fr.Result.Duplicate,
		}
		if !fr.Result.Duplicate {
			cls := fr.Result.Classification
			row.IsReceipt = cls.IsReceipt
			row.Score = cls.Score
			row.Confidence = cls.Confidence

			if cls.IsReceipt {
				ext := fr.Result.Extraction
				row.Vendor = ext.Vendor
				row.VendorStrategy = ext.VendorStrategy
				if ext.AmountFound {
					row.Amount = ext.Amount.StringFixed(2)
					row.AmountSource = string(ext.AmountSource)
				}
				if ext.DateFound {
					row.Date = ext.Date.Format("2006-01-02")
					row.DateConfidence = ext.DateConfidence
					row.DateSynthetic = ext.DateSynthetic
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Writer writes report rows to CSV files.
type Writer struct {
	Delimiter rune
	logger    logging.Logger
}

// NewWriter creates a CSV report writer with the given delimiter.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Writer{Delimiter: delimiter, logger: logger}
}

// Write writes the rows to the given path, creating parent directories as
// needed.
func (w *Writer) Write(rows []Row, path string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = w.Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	w.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rows", Value: len(rows)},
	).Info("Wrote extraction report")

	return nil
}
