package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
	"github.com/g-caf/bootleg-expensify-sub000/internal/classifier"
	"github.com/g-caf/bootleg-expensify-sub000/internal/dedup"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
	"github.com/g-caf/bootleg-expensify-sub000/internal/resolver"
)

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()

	cat := catalog.Default()
	logger := &logging.MockLogger{}

	return New(
		classifier.New(cat, logger),
		resolver.NewVendorResolver(cat, logger),
		resolver.NewFilenameResolver(cat, logger),
		resolver.NewAmountResolver(logger),
		resolver.NewDateResolver(logger),
		dedup.NewDefault(logger),
		opts,
		logger,
	)
}

func amazonReceipt() models.Document {
	return models.Document{
		Sender:    "auto-confirm@amazon.com",
		Subject:   "Order Confirmation",
		MessageID: "<order-112-0001@mail.amazon.com>",
		Date:      "2025-06-23",
		Text: "Thank you for shopping at Amazon.com.\n" +
			"Order number: 112-0001\n" +
			"Order placed on June 23, 2025\n" +
			"Subtotal: $45.00\n" +
			"Order Total: $52.30",
	}
}

func TestProcessFullPipeline(t *testing.T) {
	e := newEngine(t, Options{})

	result := e.Process(amazonReceipt())

	require.False(t, result.Duplicate)
	require.True(t, result.Classification.IsReceipt)
	assert.Equal(t, "Amazon", result.Classification.Vendor)

	ext := result.Extraction
	require.True(t, ext.VendorFound)
	assert.Equal(t, "Amazon", ext.Vendor)
	assert.Equal(t, StrategyCatalog, ext.VendorStrategy)

	require.True(t, ext.AmountFound)
	assert.Equal(t, "52.30", ext.Amount.StringFixed(2))
	assert.Equal(t, models.AmountSourceSubtotalAnchor, ext.AmountSource)

	require.True(t, ext.DateFound)
	assert.Equal(t, "2025-06-23", ext.Date.Format("2006-01-02"))
	assert.False(t, ext.DateSynthetic)
}

func TestProcessDuplicateSkipsPipeline(t *testing.T) {
	e := newEngine(t, Options{})
	doc := amazonReceipt()

	first := e.Process(doc)
	require.False(t, first.Duplicate)

	second := e.Process(doc)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.False(t, second.Classification.IsReceipt)
	assert.False(t, second.Extraction.VendorFound)
}

func TestProcessNonReceiptSkipsExtraction(t *testing.T) {
	e := newEngine(t, Options{})

	result := e.Process(models.Document{
		Sender:  "deals@shop.example",
		Subject: "50% off this weekend only",
		Text:    "Huge savings! unsubscribe anytime",
	})

	require.False(t, result.Duplicate)
	assert.False(t, result.Classification.IsReceipt)
	assert.False(t, result.Extraction.VendorFound)
	assert.False(t, result.Extraction.AmountFound)
}

func TestFilenameFallbackStrategy(t *testing.T) {
	e := newEngine(t, Options{FilenameFallback: true})

	// Generic receipt text with no resolvable vendor; the filename carries it.
	result := e.Process(models.Document{
		Sender:   "noreply@mailer.example",
		Subject:  "Your receipt",
		Filename: "Bluebird - 2025-06-01 - order.txt",
		Text:     "Subtotal: $18.00\nOrder Total: $20.00\nThank you for your purchase!",
	})

	require.True(t, result.Classification.IsReceipt)
	ext := result.Extraction
	require.True(t, ext.VendorFound)
	assert.Equal(t, "Bluebird", ext.Vendor)
	assert.Equal(t, StrategyFilename, ext.VendorStrategy)
}

func TestFilenameFallbackDisabled(t *testing.T) {
	e := newEngine(t, Options{FilenameFallback: false})

	result := e.Process(models.Document{
		Sender:   "noreply@mailer.example",
		Subject:  "Your receipt",
		Filename: "Bluebird - 2025-06-01 - order.txt",
		Text:     "Subtotal: $18.00\nOrder Total: $20.00\nThank you for your purchase!",
	})

	require.True(t, result.Classification.IsReceipt)
	assert.False(t, result.Extraction.VendorFound)
}

func TestDescribe(t *testing.T) {
	ext := models.ExtractionResult{}
	assert.Equal(t, "(unknown vendor)  (no amount)  (no date)", Describe(ext))
}
