package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountSource tags how confident the amount resolution was, based on which
// search tier produced the value.
type AmountSource string

const (
	// AmountSourceSubtotalAnchor means a final total was located after a
	// subtotal line (or the subtotal itself was used as the fallback).
	AmountSourceSubtotalAnchor AmountSource = "subtotal-anchor"
	// AmountSourceHigh means a specific total pattern matched with no
	// subtotal disambiguation needed.
	AmountSourceHigh AmountSource = "high"
	// AmountSourceMedium means a loose contextual pattern matched.
	AmountSourceMedium AmountSource = "medium"
	// AmountSourceLow means only a bare dollar figure was found.
	AmountSourceLow AmountSource = "low"
)

// MatchType records why a classification came out the way it did.
type MatchType string

const (
	// MatchTypeSenderContent means the sender domain matched a vendor
	// profile in addition to content patterns.
	MatchTypeSenderContent MatchType = "sender_content"
	// MatchTypeContent means only subject/body patterns matched.
	MatchTypeContent MatchType = "content"
	// MatchTypeRejected means a negative pattern vetoed the document before
	// any profile was scored.
	MatchTypeRejected MatchType = "rejected"
	// MatchTypeNoMatch means no profile reached its acceptance threshold.
	MatchTypeNoMatch MatchType = "no_match"
)

// ExtractionResult is the merged output of the vendor, amount, and date
// resolvers for one document. Absent fields are signalled by their Found
// flags, never by sentinel values.
type ExtractionResult struct {
	Vendor      string
	VendorFound bool
	// VendorStrategy names the strategy that produced the vendor, for
	// debuggability of the ordered fallback chain.
	VendorStrategy string

	// Amount is always normalized to two decimal places and positive when
	// AmountFound is true.
	Amount       decimal.Decimal
	AmountFound  bool
	AmountSource AmountSource

	Date      time.Time
	DateFound bool
	// DateConfidence is the heuristic strength of the winning candidate
	// (5-10), or 0 when the date is synthetic.
	DateConfidence int
	// DateSynthetic marks the recent-past fallback date, which must not be
	// presented downstream as an extracted fact.
	DateSynthetic bool
}

// ClassificationResult is the outcome of the receipt/non-receipt decision.
type ClassificationResult struct {
	IsReceipt bool
	// Vendor is the winning profile's name, empty when rejected.
	Vendor string
	// Score is the accepted profile's accumulated score; always zero when a
	// negative pattern matched, regardless of positive hits.
	Score int
	// Indicators lists the distinct pattern hits that contributed to the
	// score, e.g. "sender:amazon.com" or "subject:order confirmation".
	Indicators []string
	MatchType  MatchType
	// Confidence is the ranking heuristic derived from Score (capped at
	// 100); it is not a calibrated probability.
	Confidence int
}
