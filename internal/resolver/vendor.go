// Package resolver implements the field-extraction resolvers: vendor,
// amount, and date. Each resolver is a pure function of its input text and
// the immutable pattern catalog; none of them performs I/O, retains match
// state between calls, or returns errors for "nothing found".
package resolver

import (
	"regexp"
	"strings"

	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/textutils"
)

// Vendor resolution tiers, in priority order. The first tier to produce a
// name wins.
const (
	vendorTierPlatform = "platform"
	vendorTierStore    = "store"
	vendorTierDomain   = "domain"
	vendorTierGeneric  = "generic"
)

const (
	genericVendorMinLen = 2
	genericVendorMaxLen = 30
)

var (
	corporateSuffixRe   = regexp.MustCompile(`(?i)[\s,]+(?:inc\.?|llc\.?|ltd\.?|corp\.?|co\.|company|corporation)\s*$`)
	boilerplatePrefixRe = regexp.MustCompile(`(?i)^(?:the|from|welcome to)\s+`)
)

// VendorResolver resolves a vendor name from receipt text using tiered
// pattern priority: platform vendors with corroboration, known store names,
// sender-domain lookup, and finally broad company-name shapes.
type VendorResolver struct {
	catalog *catalog.Catalog
	logger  logging.Logger
}

// NewVendorResolver creates a vendor resolver over the given catalog.
func NewVendorResolver(cat *catalog.Catalog, logger logging.Logger) *VendorResolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &VendorResolver{catalog: cat, logger: logger}
}

// Resolve returns the vendor name for the text, or ("", false) when no tier
// produces one. It never fails on malformed or empty input.
func (r *VendorResolver) Resolve(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	header := textutils.HeaderSection(text)

	if name, ok := r.resolvePlatform(text); ok {
		r.logWin(vendorTierPlatform, name)
		return name, true
	}
	if name, ok := r.resolveStore(header, text); ok {
		r.logWin(vendorTierStore, name)
		return name, true
	}
	if name, ok := r.resolveDomain(header); ok {
		r.logWin(vendorTierDomain, name)
		return name, true
	}
	if name, ok := r.resolveGeneric(header); ok {
		r.logWin(vendorTierGeneric, name)
		return name, true
	}

	return "", false
}

func (r *VendorResolver) logWin(tier, name string) {
	r.logger.WithFields(
		logging.Field{Key: "tier", Value: tier},
		logging.Field{Key: "vendor", Value: name},
	).Debug("Vendor resolved")
}

// resolvePlatform checks each platform profile: a main-pattern hit must be
// corroborated by a confirmation-pattern hit, so a platform name appearing
// incidentally (e.g. inside a product title) does not win on its own.
func (r *VendorResolver) resolvePlatform(text string) (string, bool) {
	for _, platform := range r.catalog.Platforms {
		if !anyMatch(platform.Main, text) {
			continue
		}
		if anyMatch(platform.Confirm, text) {
			return platform.Name, true
		}
	}
	return "", false
}

// resolveStore searches the ordered store list, first against the header
// section where branding lives, then against the full text. List order is
// the tie-break.
func (r *VendorResolver) resolveStore(header, text string) (string, bool) {
	for _, store := range r.catalog.StoreNames {
		if store.Pattern.MatchString(header) {
			return store.Name, true
		}
	}
	for _, store := range r.catalog.StoreNames {
		if store.Pattern.MatchString(text) {
			return store.Name, true
		}
	}
	return "", false
}

// resolveDomain extracts the first email-style domain token from the header
// and looks it up in the curated domain table.
func (r *VendorResolver) resolveDomain(header string) (string, bool) {
	domain := textutils.ExtractDomain(header)
	if domain == "" {
		return "", false
	}
	if vendor, ok := r.catalog.DomainVendors[domain]; ok {
		return vendor, true
	}
	// Subdomains resolve through their registrable parent
	// (order-update.amazon.com -> amazon.com).
	parts := strings.Split(domain, ".")
	for i := 1; i < len(parts)-1; i++ {
		if vendor, ok := r.catalog.DomainVendors[strings.Join(parts[i:], ".")]; ok {
			return vendor, true
		}
	}
	return "", false
}

// resolveGeneric applies broad company-name patterns to the header section,
// rejects noise-word candidates, and bounds candidate length.
func (r *VendorResolver) resolveGeneric(header string) (string, bool) {
	for _, re := range r.catalog.GenericVendor {
		matches := re.FindStringSubmatch(header)
		if len(matches) < 2 {
			continue
		}
		candidate := normalizeVendor(matches[1])
		if candidate == "" {
			continue
		}
		if r.catalog.IsNoise(candidate) {
			continue
		}
		if len(candidate) < genericVendorMinLen || len(candidate) > genericVendorMaxLen {
			continue
		}
		return titleCase(candidate), true
	}
	return "", false
}

// normalizeVendor trims a raw candidate, strips trailing corporate suffixes
// and leading boilerplate, and collapses internal whitespace.
func normalizeVendor(raw string) string {
	name := textutils.CollapseWhitespace(raw)
	name = corporateSuffixRe.ReplaceAllString(name, "")
	name = boilerplatePrefixRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// titleCase normalizes a scraped candidate name: first letter upper, the
// remainder lower. Canonical names from the catalog tables skip this
// (already cased).
func titleCase(name string) string {
	name = strings.ToLower(name)
	return strings.ToUpper(name[:1]) + name[1:]
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
