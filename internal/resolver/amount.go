package resolver

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
)

// num captures a dollar figure with optional thousands separators. Anchored
// patterns tolerate missing cents; the bare low-priority pattern requires
// them to keep noise out.
const num = `([0-9][0-9,]*(?:\.[0-9]{1,2})?)`

var (
	subtotalRe = regexp.MustCompile(`(?i)\bsub\s*total\b[:\s]*\$?\s*` + num)

	// Ordered from most to least specific. The same ordering serves both
	// the post-subtotal search and the high-priority no-subtotal group.
	totalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:grand|final|order)\s+total\b[:\s]*\$?\s*` + num),
		// Word-boundary form: \btotal\b cannot match inside "Subtotal".
		regexp.MustCompile(`(?i)\btotal\b[:\s]*\$\s*` + num),
		regexp.MustCompile(`(?i)\bamount\s+charged\b[:\s]*\$?\s*` + num),
		regexp.MustCompile(`(?i)\byou\s+(?:paid|owe)\b[:\s]*\$?\s*` + num),
		regexp.MustCompile(`(?i)\bcard\s+charged\b[:\s]*\$?\s*` + num),
		regexp.MustCompile(`(?i)\btotal\s+due\b[:\s]*\$?\s*` + num),
	}

	mediumPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btotal\b[^\n$]{0,40}\$\s*` + num),
		regexp.MustCompile(`(?i)\$\s*` + num + `[^\n]{0,40}\btotal\b`),
		regexp.MustCompile(`(?i)\bpaid\b[^\n$]{0,40}\$\s*` + num),
	}

	bareAmountRe = regexp.MustCompile(`\$\s*([0-9][0-9,]*\.[0-9]{2})`)
)

// AmountResolver resolves the monetary total of a receipt using a
// subtotal-anchored search plus a priority-tiered fallback.
type AmountResolver struct {
	logger logging.Logger
}

// NewAmountResolver creates an amount resolver.
func NewAmountResolver(logger logging.Logger) *AmountResolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AmountResolver{logger: logger}
}

// Resolve returns the most plausible total for the text, tagged with the
// tier that produced it. Returned values are always positive and normalized
// to two decimal places. Returns ok=false when nothing usable is found.
func (r *AmountResolver) Resolve(text string) (decimal.Decimal, models.AmountSource, bool) {
	if amount, ok := r.resolveWithSubtotal(text); ok {
		r.logWin(models.AmountSourceSubtotalAnchor, amount)
		return amount, models.AmountSourceSubtotalAnchor, true
	}
	// The subtotal tier is only skipped entirely when no subtotal exists;
	// resolveWithSubtotal already falls back to the subtotal value itself.
	if subtotalRe.MatchString(text) {
		return decimal.Zero, "", false
	}

	if amount, ok := r.resolveHighPriority(text); ok {
		r.logWin(models.AmountSourceHigh, amount)
		return amount, models.AmountSourceHigh, true
	}
	if amount, ok := r.resolveMediumPriority(text); ok {
		r.logWin(models.AmountSourceMedium, amount)
		return amount, models.AmountSourceMedium, true
	}
	if amount, ok := r.resolveLowPriority(text); ok {
		r.logWin(models.AmountSourceLow, amount)
		return amount, models.AmountSourceLow, true
	}

	return decimal.Zero, "", false
}

func (r *AmountResolver) logWin(source models.AmountSource, amount decimal.Decimal) {
	r.logger.WithFields(
		logging.Field{Key: "source", Value: string(source)},
		logging.Field{Key: "amount", Value: amount.StringFixed(2)},
	).Debug("Amount resolved")
}

// resolveWithSubtotal anchors the search at the first subtotal line and
// looks for a final total in the text after it. A final total including
// tax, fees, or tips can never be smaller than the subtotal, so smaller
// matches are rejected. When no post-subtotal match qualifies, the subtotal
// itself is the best available figure.
func (r *AmountResolver) resolveWithSubtotal(text string) (decimal.Decimal, bool) {
	loc := subtotalRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return decimal.Zero, false
	}

	subtotal := parsePositive(text[loc[2]:loc[3]])
	if !subtotal.IsPositive() {
		return decimal.Zero, false
	}

	rest := text[loc[1]:]
	for _, re := range totalPatterns {
		for _, m := range re.FindAllStringSubmatch(rest, -1) {
			value := parsePositive(m[1])
			if value.IsPositive() && value.GreaterThanOrEqual(subtotal) {
				return models.NormalizeAmount(value), true
			}
		}
	}

	return models.NormalizeAmount(subtotal), true
}

// resolveHighPriority takes the first matching pattern's value: the most
// specific pattern wins, not the largest value.
func (r *AmountResolver) resolveHighPriority(text string) (decimal.Decimal, bool) {
	for _, re := range totalPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			value := parsePositive(m[1])
			if value.IsPositive() {
				return models.NormalizeAmount(value), true
			}
		}
	}
	return decimal.Zero, false
}

// resolveMediumPriority collects loose contextual matches and takes the
// maximum: the context is ambiguous, and the larger figure is more likely
// the grand total.
func (r *AmountResolver) resolveMediumPriority(text string) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, re := range mediumPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value := parsePositive(m[1])
			if value.IsPositive() && (!found || value.GreaterThan(best)) {
				best = value
				found = true
			}
		}
	}
	if !found {
		return decimal.Zero, false
	}
	return models.NormalizeAmount(best), true
}

// resolveLowPriority is the last resort: bare dollar figures with no
// contextual anchor, largest value wins. Known limitation: when no clearer
// signal exists this can pick a tax or tip line over the real total. That
// trade-off is deliberate and must not be "fixed" with a different
// tie-break here.
func (r *AmountResolver) resolveLowPriority(text string) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, m := range bareAmountRe.FindAllStringSubmatch(text, -1) {
		value := parsePositive(m[1])
		if value.IsPositive() && (!found || value.GreaterThan(best)) {
			best = value
			found = true
		}
	}
	if !found {
		return decimal.Zero, false
	}
	return models.NormalizeAmount(best), true
}

// parsePositive parses a captured figure; non-positive or unparsable
// values come back as zero and are discarded by the callers.
func parsePositive(s string) decimal.Decimal {
	return models.ParseAmount(s)
}
