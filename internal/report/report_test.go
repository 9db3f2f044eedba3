package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-caf/bootleg-expensify-sub000/internal/batch"
	"github.com/g-caf/bootleg-expensify-sub000/internal/engine"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
)

func sampleResults() []batch.FileResult {
	return []batch.FileResult{
		{
			Path: "/exports/amazon.txt",
			Result: engine.Result{
				Classification: models.ClassificationResult{
					IsReceipt:  true,
					Vendor:     "Amazon",
					Score:      65,
					Confidence: 90,
					MatchType:  models.MatchTypeSenderContent,
				},
				Extraction: models.ExtractionResult{
					Vendor:         "Amazon",
					VendorFound:    true,
					VendorStrategy: engine.StrategyCatalog,
					Amount:         decimal.RequireFromString("52.30"),
					AmountFound:    true,
					AmountSource:   models.AmountSourceSubtotalAnchor,
					Date:           time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
					DateFound:      true,
					DateConfidence: 8,
				},
			},
		},
		{
			Path:   "/exports/promo.txt",
			Result: engine.Result{Classification: models.ClassificationResult{MatchType: models.MatchTypeRejected}},
		},
		{
			Path:   "/exports/amazon-copy.txt",
			Result: engine.Result{Duplicate: true},
		},
	}
}

func TestFromResults(t *testing.T) {
	rows := FromResults(sampleResults())
	require.Len(t, rows, 3)

	assert.Equal(t, "amazon.txt", rows[0].File)
	assert.True(t, rows[0].IsReceipt)
	assert.Equal(t, "Amazon", rows[0].Vendor)
	assert.Equal(t, "catalog", rows[0].VendorStrategy)
	assert.Equal(t, "52.30", rows[0].Amount)
	assert.Equal(t, "subtotal-anchor", rows[0].AmountSource)
	assert.Equal(t, "2025-06-23", rows[0].Date)
	assert.Equal(t, 8, rows[0].DateConfidence)

	assert.False(t, rows[1].IsReceipt)
	assert.Empty(t, rows[1].Vendor)
	assert.Empty(t, rows[1].Amount)

	assert.True(t, rows[2].Duplicate)
	assert.False(t, rows[2].IsReceipt)
}

func TestWriterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")
	w := NewWriter(',', &logging.MockLogger{})

	require.NoError(t, w.Write(FromResults(sampleResults()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "file,duplicate,is_receipt,vendor")
	assert.Contains(t, content, "amazon.txt")
	assert.Contains(t, content, "52.30")
	assert.Contains(t, content, "subtotal-anchor")
}

func TestWriterRejectsNilRows(t *testing.T) {
	w := NewWriter(',', &logging.MockLogger{})
	assert.Error(t, w.Write(nil, filepath.Join(t.TempDir(), "report.csv")))
}
