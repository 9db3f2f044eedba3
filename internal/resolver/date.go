package resolver

import (
	"hash/fnv"
	"regexp"
	"sort"
	"time"

	"github.com/g-caf/bootleg-expensify-sub000/internal/dateutils"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
)

// Confidence levels for date candidates. Subject-line dates are the
// strongest signal; delivery vocabulary beats order vocabulary beats a bare
// content match.
const (
	dateConfidenceBase     = 5
	dateConfidenceOrder    = 8
	dateConfidenceDelivery = 9
	dateConfidenceSubject  = 10
)

// contextWindow is how far around a match the vocabulary boosts look.
const contextWindow = 50

const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept?|Oct|Nov|Dec)`

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + monthNames + `\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`),
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
	}

	orderVocabRe    = regexp.MustCompile(`(?i)\b(?:order(?:ed)?|placed|shipped|purchase[d]?)\b`)
	deliveryVocabRe = regexp.MustCompile(`(?i)\b(?:deliver(?:y|ed)?|arriving|arrived|expected)\b`)
)

// DateResult is a resolved transaction date plus the heuristic strength of
// the candidate it came from. Synthetic results are fabricated recent-past
// fallbacks and must not be treated as extracted facts.
type DateResult struct {
	Date       time.Time
	Confidence int
	Synthetic  bool
}

type dateCandidate struct {
	date       time.Time
	confidence int
	position   int
}

// DateResolver resolves the most plausible transaction date from text,
// weighting candidates by the vocabulary around them and by recency.
type DateResolver struct {
	logger logging.Logger
	// now is injectable for tests; candidates in the future beyond
	// futureTolerance are rejected.
	now             func() time.Time
	futureTolerance time.Duration
}

// NewDateResolver creates a date resolver with a 1-day future tolerance,
// enough to absorb timezone skew on same-day emails.
func NewDateResolver(logger logging.Logger) *DateResolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DateResolver{
		logger:          logger,
		now:             time.Now,
		futureTolerance: 24 * time.Hour,
	}
}

// WithClock returns a copy of the resolver that uses the given clock.
func (r *DateResolver) WithClock(now func() time.Time) *DateResolver {
	clone := *r
	clone.now = now
	return &clone
}

// WithFutureTolerance returns a copy of the resolver with the given
// future-date tolerance.
func (r *DateResolver) WithFutureTolerance(tolerance time.Duration) *DateResolver {
	clone := *r
	clone.futureTolerance = tolerance
	return &clone
}

// Resolve returns the best date candidate in the text. With keywordContext
// set (the email-context variant), candidates are confidence-weighted by
// surrounding vocabulary, subject-line dates win unconditionally, and a
// synthetic recent-past date is returned when nothing valid is found.
// Without it, candidates rank purely by recency and absence means
// ok=false.
func (r *DateResolver) Resolve(text, subject string, keywordContext bool) (DateResult, bool) {
	now := r.now()

	var candidates []dateCandidate

	if keywordContext && subject != "" {
		for _, c := range r.collect(subject, now) {
			c.confidence = dateConfidenceSubject
			candidates = append(candidates, c)
		}
	}

	for _, c := range r.collect(text, now) {
		if keywordContext {
			c.confidence = r.scoreContext(text, c)
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		if keywordContext {
			result := r.syntheticFallback(text, subject, now)
			r.logger.WithField("date", dateutils.ToISODate(result.Date)).
				Debug("No date candidates, using synthetic recent-past fallback")
			return result, true
		}
		return DateResult{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].confidence != candidates[j].confidence {
			return candidates[i].confidence > candidates[j].confidence
		}
		return candidates[i].date.After(candidates[j].date)
	})

	best := candidates[0]
	r.logger.WithFields(
		logging.Field{Key: "date", Value: dateutils.ToISODate(best.date)},
		logging.Field{Key: "confidence", Value: best.confidence},
	).Debug("Date resolved")

	return DateResult{Date: best.date, Confidence: best.confidence}, true
}

// collect finds all parsable, non-future date candidates in the given text.
func (r *DateResolver) collect(text string, now time.Time) []dateCandidate {
	var candidates []dateCandidate
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			parsed, err := dateutils.ParseDate(text[loc[0]:loc[1]])
			if err != nil {
				continue
			}
			if !dateutils.WithinFutureTolerance(parsed, now, r.futureTolerance) {
				continue
			}
			candidates = append(candidates, dateCandidate{
				date:       dateutils.Truncate(parsed),
				confidence: dateConfidenceBase,
				position:   loc[0],
			})
		}
	}
	return candidates
}

// scoreContext boosts a candidate by the vocabulary within the surrounding
// window. Delivery vocabulary outranks order vocabulary.
func (r *DateResolver) scoreContext(text string, c dateCandidate) int {
	start := c.position - contextWindow
	if start < 0 {
		start = 0
	}
	end := c.position + contextWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	if deliveryVocabRe.MatchString(window) {
		return dateConfidenceDelivery
	}
	if orderVocabRe.MatchString(window) {
		return dateConfidenceOrder
	}
	return dateConfidenceBase
}

// syntheticFallback fabricates a date 1-7 days in the past. Receipts are
// rarely dated at processing time, so "today" would be a worse guess than
// the recent past. The offset is derived from the document content so
// repeated runs agree.
func (r *DateResolver) syntheticFallback(text, subject string, now time.Time) DateResult {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	_, _ = h.Write([]byte("|"))
	_, _ = h.Write([]byte(text))
	days := 1 + int(h.Sum32()%7)

	return DateResult{
		Date:      dateutils.Truncate(now.AddDate(0, 0, -days)),
		Synthetic: true,
	}
}
