// Package engine orchestrates the extraction pipeline: deduplication,
// receipt classification, and the vendor/amount/date resolvers, in that
// order. The engine owns the ordered vendor-strategy chain; the resolvers
// themselves stay pure.
package engine

import (
	"fmt"

	"github.com/g-caf/bootleg-expensify-sub000/internal/classifier"
	"github.com/g-caf/bootleg-expensify-sub000/internal/dedup"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
	"github.com/g-caf/bootleg-expensify-sub000/internal/resolver"
)

// Vendor strategy names, recorded in ExtractionResult.VendorStrategy.
const (
	StrategyCatalog  = "catalog"
	StrategyFilename = "filename"
)

// VendorStrategy is one step of the ordered vendor fallback chain.
type VendorStrategy interface {
	Name() string
	Resolve(doc models.Document) (string, bool)
}

type catalogStrategy struct {
	resolver *resolver.VendorResolver
}

func (s catalogStrategy) Name() string { return StrategyCatalog }

func (s catalogStrategy) Resolve(doc models.Document) (string, bool) {
	// The subject participates in vendor matching the same way a header
	// line does.
	text := doc.Text
	if doc.Subject != "" {
		text = doc.Subject + "\n" + text
	}
	return s.resolver.Resolve(text)
}

type filenameStrategy struct {
	resolver *resolver.FilenameResolver
}

func (s filenameStrategy) Name() string { return StrategyFilename }

func (s filenameStrategy) Resolve(doc models.Document) (string, bool) {
	return s.resolver.Resolve(doc.Filename)
}

// Result is the engine's outcome for one document. Duplicate and rejected
// documents carry no extraction.
type Result struct {
	Duplicate      bool
	Fingerprint    string
	Classification models.ClassificationResult
	Extraction     models.ExtractionResult
}

// Engine wires the pipeline stages together.
type Engine struct {
	classifier *classifier.Classifier
	strategies []VendorStrategy
	amount     *resolver.AmountResolver
	date       *resolver.DateResolver
	dedup      *dedup.Deduplicator
	logger     logging.Logger
}

// Options control optional engine behavior.
type Options struct {
	// FilenameFallback enables the filename vendor strategy after catalog
	// resolution.
	FilenameFallback bool
}

// New creates an engine. The deduplicator may be nil, in which case every
// document is treated as first-seen.
func New(
	cls *classifier.Classifier,
	vendor *resolver.VendorResolver,
	filename *resolver.FilenameResolver,
	amount *resolver.AmountResolver,
	date *resolver.DateResolver,
	dd *dedup.Deduplicator,
	opts Options,
	logger logging.Logger,
) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}

	strategies := []VendorStrategy{catalogStrategy{resolver: vendor}}
	if opts.FilenameFallback && filename != nil {
		strategies = append(strategies, filenameStrategy{resolver: filename})
	}

	return &Engine{
		classifier: cls,
		strategies: strategies,
		amount:     amount,
		date:       date,
		dedup:      dd,
		logger:     logger,
	}
}

// Process runs the full pipeline for one document: duplicate check first,
// classification gate second, extraction last. Nothing here returns an
// error; a document that yields no facts is a valid outcome.
func (e *Engine) Process(doc models.Document) Result {
	result := Result{Fingerprint: dedup.Fingerprint(doc)}

	if e.dedup != nil && e.dedup.CheckAndRecord(result.Fingerprint) {
		e.logger.WithField("fingerprint", result.Fingerprint).Debug("Skipping duplicate document")
		result.Duplicate = true
		return result
	}

	result.Classification = e.classifier.Classify(doc.Sender, doc.Subject, doc.Text)
	if !result.Classification.IsReceipt {
		return result
	}

	result.Extraction = e.Extract(doc)
	return result
}

// Extract runs the three resolvers without the dedup or classification
// gates. Callers that already know the document is a receipt use this
// directly.
func (e *Engine) Extract(doc models.Document) models.ExtractionResult {
	var result models.ExtractionResult

	for _, strategy := range e.strategies {
		if name, ok := strategy.Resolve(doc); ok {
			result.Vendor = name
			result.VendorFound = true
			result.VendorStrategy = strategy.Name()
			break
		}
	}

	if amount, source, ok := e.amount.Resolve(doc.Text); ok {
		result.Amount = amount
		result.AmountFound = true
		result.AmountSource = source
	}

	if dr, ok := e.date.Resolve(doc.Text, doc.Subject, doc.Subject != "" || doc.Sender != ""); ok {
		result.Date = dr.Date
		result.DateFound = true
		result.DateConfidence = dr.Confidence
		result.DateSynthetic = dr.Synthetic
	}

	e.logger.WithFields(
		logging.Field{Key: "vendor", Value: result.Vendor},
		logging.Field{Key: "amount_found", Value: result.AmountFound},
		logging.Field{Key: "date_found", Value: result.DateFound},
	).Debug("Extraction complete")

	return result
}

// Describe renders a one-line human summary of an extraction, used by the
// CLI output.
func Describe(r models.ExtractionResult) string {
	vendor := r.Vendor
	if !r.VendorFound {
		vendor = "(unknown vendor)"
	}
	amount := "(no amount)"
	if r.AmountFound {
		amount = "$" + r.Amount.StringFixed(2)
	}
	date := "(no date)"
	if r.DateFound {
		date = r.Date.Format("2006-01-02")
		if r.DateSynthetic {
			date += " (estimated)"
		}
	}
	return fmt.Sprintf("%s  %s  %s", vendor, amount, date)
}
