package resolver

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/textutils"
)

// Filename shapes seen in exported receipts, most specific first. Group 1 is
// the vendor candidate.
var filenamePatterns = []*regexp.Regexp{
	// "Amazon - 2025-06-23 - $12.34.pdf"
	regexp.MustCompile(`^(.+?)\s*-\s*\d{4}-\d{2}-\d{2}\b`),
	// "Amazon Receipt 2025-06-23.pdf", "starbucks_invoice.pdf"
	regexp.MustCompile(`(?i)^(.+?)[\s_-]+(?:receipt|invoice|order|statement)\b`),
	// "Receipt from Amazon.pdf"
	regexp.MustCompile(`(?i)^(?:receipt|invoice|order)[\s_-]+(?:from[\s_-]+)?(.+?)$`),
}

// FilenameResolver recovers a vendor name from a receipt's filename. It is
// the engine's fallback strategy for scanned PDFs whose text yields nothing.
type FilenameResolver struct {
	catalog *catalog.Catalog
	logger  logging.Logger
}

// NewFilenameResolver creates a filename vendor resolver.
func NewFilenameResolver(cat *catalog.Catalog, logger logging.Logger) *FilenameResolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FilenameResolver{catalog: cat, logger: logger}
}

// Resolve parses the filename for a vendor candidate. Candidates go through
// the same noise filter and length bounds as the generic text tier.
func (r *FilenameResolver) Resolve(filename string) (string, bool) {
	if filename == "" {
		return "", false
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = textutils.CollapseWhitespace(base)
	if base == "" {
		return "", false
	}

	// A known store name in the filename beats shape parsing.
	for _, store := range r.catalog.StoreNames {
		if store.Pattern.MatchString(base) {
			return store.Name, true
		}
	}

	for _, re := range filenamePatterns {
		matches := re.FindStringSubmatch(base)
		if len(matches) < 2 {
			continue
		}
		candidate := normalizeVendor(matches[1])
		if candidate == "" || r.catalog.IsNoise(candidate) {
			continue
		}
		if len(candidate) < genericVendorMinLen || len(candidate) > genericVendorMaxLen {
			continue
		}
		name := titleCase(candidate)
		r.logger.WithField("vendor", name).Debug("Vendor resolved from filename")
		return name, true
	}

	return "", false
}
