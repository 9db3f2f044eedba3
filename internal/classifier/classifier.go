// Package classifier decides whether a document is a purchase receipt.
// Classification is a pure function of the document and the compiled
// catalog: the same input always yields the same result.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
	"github.com/g-caf/bootleg-expensify-sub000/internal/textutils"
)

// Scoring weights. A sender-domain match is worth more than any single
// content hit because it is the hardest signal to fake accidentally.
const (
	senderScore  = 40
	subjectScore = 15
	bodyScore    = 10

	// acceptThreshold admits a profile on content alone; with a sender
	// match the bar drops to senderThreshold.
	acceptThreshold = 50
	senderThreshold = 25

	confidenceCap            = 100
	namedProfileBonus        = 10
	strongIndicatorBonus     = 15
	strongIndicatorThreshold = 3
)

// Classifier scores documents against the catalog's vendor profiles.
type Classifier struct {
	catalog *catalog.Catalog
	logger  logging.Logger
}

// New creates a classifier over the given catalog.
func New(cat *catalog.Catalog, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{catalog: cat, logger: logger}
}

type profileScore struct {
	profile    *catalog.Profile
	score      int
	indicators []string
	sender     bool
}

// Classify scores the document against every profile and returns the best
// acceptable match. Global negative patterns veto the whole document before
// any scoring happens, so promotional hits can never be outvoted by receipt
// vocabulary.
func (c *Classifier) Classify(sender, subject, body string) models.ClassificationResult {
	combined := subject + "\n" + body

	for _, re := range c.catalog.GlobalNegatives {
		if re.MatchString(combined) {
			c.logger.WithField("pattern", re.String()).Debug("Rejected by global negative pattern")
			return models.ClassificationResult{MatchType: models.MatchTypeRejected}
		}
	}

	senderDomain := textutils.SenderDomain(sender)

	var best *profileScore
	for i := range c.catalog.Profiles {
		ps := c.scoreProfile(&c.catalog.Profiles[i], senderDomain, subject, body)
		if ps == nil || !c.accepted(ps) {
			continue
		}
		// Strict greater-than: on a tie the earlier profile keeps the win,
		// so named vendors beat the generic catch-all.
		if best == nil || ps.score > best.score {
			best = ps
		}
	}
	// The generic profile competes on equal footing with the named vendors;
	// it is evaluated last so the strict comparison leaves ties with them.
	if ps := c.scoreProfile(&c.catalog.Generic, senderDomain, subject, body); ps != nil && c.accepted(ps) {
		if best == nil || ps.score > best.score {
			best = ps
		}
	}

	if best == nil {
		return models.ClassificationResult{MatchType: models.MatchTypeNoMatch}
	}

	matchType := models.MatchTypeContent
	if best.sender {
		matchType = models.MatchTypeSenderContent
	}
	vendor := best.profile.Name
	if strings.EqualFold(vendor, "generic") {
		vendor = ""
	}

	result := models.ClassificationResult{
		IsReceipt:  true,
		Vendor:     vendor,
		Score:      best.score,
		Indicators: best.indicators,
		MatchType:  matchType,
		Confidence: c.confidence(best, vendor),
	}

	c.logger.WithFields(
		logging.Field{Key: "vendor", Value: vendor},
		logging.Field{Key: "score", Value: result.Score},
		logging.Field{Key: "confidence", Value: result.Confidence},
	).Debug("Classified as receipt")

	return result
}

// scoreProfile accumulates the profile's score for the document, or returns
// nil when one of the profile's own negative patterns matches. Each pattern
// contributes at most once, however many times it matches.
func (c *Classifier) scoreProfile(p *catalog.Profile, senderDomain, subject, body string) *profileScore {
	combined := subject + "\n" + body
	for _, re := range p.Negatives {
		if re.MatchString(combined) {
			return nil
		}
	}

	ps := &profileScore{profile: p}

	if senderDomain != "" {
		for _, d := range p.Domains {
			if senderDomain == d || strings.HasSuffix(senderDomain, "."+d) {
				ps.score += senderScore
				ps.sender = true
				ps.indicators = append(ps.indicators, "sender:"+d)
				break
			}
		}
	}

	ps.score += c.countHits(p.Subject, subject, "subject", subjectScore, &ps.indicators)
	ps.score += c.countHits(p.Body, body, "body", bodyScore, &ps.indicators)

	if ps.score == 0 {
		return nil
	}
	return ps
}

func (c *Classifier) countHits(patterns []*regexp.Regexp, text, kind string, weight int, indicators *[]string) int {
	score := 0
	for _, re := range patterns {
		if re.MatchString(text) {
			score += weight
			*indicators = append(*indicators, fmt.Sprintf("%s:%s", kind, re.String()))
		}
	}
	return score
}

func (c *Classifier) accepted(ps *profileScore) bool {
	if ps.sender {
		return ps.score >= senderThreshold
	}
	return ps.score >= acceptThreshold
}

// confidence derives a 0-100 ranking heuristic from the raw score. It is
// not a calibrated probability.
func (c *Classifier) confidence(ps *profileScore, vendor string) int {
	conf := ps.score
	if vendor != "" {
		conf += namedProfileBonus
	}
	if len(ps.indicators) >= strongIndicatorThreshold {
		conf += strongIndicatorBonus
	}
	if conf > confidenceCap {
		conf = confidenceCap
	}
	return conf
}
