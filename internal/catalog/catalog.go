// Package catalog holds the static pattern configuration the resolvers and
// the classifier run against: vendor profiles, the generic fallback profile,
// the global negative list, and the vendor-resolution tables. A Catalog is
// compiled once at load time and never mutated afterwards, so it is safe to
// share across any number of goroutines without locking.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// VendorProfile is the YAML-facing shape of one vendor's patterns. Pattern
// strings are regular expressions; matching is case-insensitive unless the
// pattern sets its own flags.
type VendorProfile struct {
	Name                 string   `yaml:"name"`
	Domains              []string `yaml:"domains"`
	SubjectPatterns      []string `yaml:"subject_patterns"`
	BodyPatterns         []string `yaml:"body_patterns"`
	ConfirmationPatterns []string `yaml:"confirmation_patterns"`
	NegativePatterns     []string `yaml:"negative_patterns"`
}

// StoreName is one entry of the store-tier vendor list: a match pattern and
// the canonical (correctly cased) vendor name it resolves to.
type StoreName struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// FileConfig is the root of the catalog YAML file. Every section is
// optional; omitted sections fall back to the built-in defaults.
type FileConfig struct {
	Profiles        []VendorProfile   `yaml:"profiles"`
	GlobalNegatives []string          `yaml:"global_negatives"`
	StoreNames      []StoreName       `yaml:"store_names"`
	DomainVendors   map[string]string `yaml:"domain_vendors"`
	NoiseWords      []string          `yaml:"noise_words"`
}

// Profile is a compiled vendor profile used by the classifier.
type Profile struct {
	Name          string
	Domains       []string
	Subject       []*regexp.Regexp
	Body          []*regexp.Regexp
	Confirmations []*regexp.Regexp
	Negatives     []*regexp.Regexp
}

// Platform is a compiled platform-tier entry for vendor resolution: a main
// pattern hit must be corroborated by a confirmation pattern before the
// vendor name is accepted.
type Platform struct {
	Name    string
	Main    []*regexp.Regexp
	Confirm []*regexp.Regexp
}

// CompiledStore is a compiled store-tier entry.
type CompiledStore struct {
	Name    string
	Pattern *regexp.Regexp
}

// Catalog is the fully compiled, immutable pattern configuration.
type Catalog struct {
	// Profiles are the named vendor profiles in declaration order; order is
	// the tie-break when classification scores are equal.
	Profiles []Profile
	// Generic is the catch-all profile evaluated after the named vendors.
	Generic Profile
	// GlobalNegatives veto classification outright, independent of vendor.
	GlobalNegatives []*regexp.Regexp

	// Platforms, StoreNames, DomainVendors, GenericVendor, and NoiseWords
	// drive the four vendor-resolution tiers.
	Platforms     []Platform
	StoreNames    []CompiledStore
	DomainVendors map[string]string
	GenericVendor []*regexp.Regexp
	NoiseWords    map[string]bool
}

// compilePattern compiles one pattern string case-insensitively. Patterns
// that carry their own inline flags are compiled as written.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "(?") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// compileProfile compiles one vendor profile.
func compileProfile(vp VendorProfile) (Profile, error) {
	p := Profile{Name: vp.Name}

	for _, d := range vp.Domains {
		p.Domains = append(p.Domains, strings.ToLower(d))
	}

	var err error
	if p.Subject, err = compileAll(vp.SubjectPatterns); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", vp.Name, err)
	}
	if p.Body, err = compileAll(vp.BodyPatterns); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", vp.Name, err)
	}
	if p.Confirmations, err = compileAll(vp.ConfirmationPatterns); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", vp.Name, err)
	}
	if p.Negatives, err = compileAll(vp.NegativePatterns); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", vp.Name, err)
	}

	return p, nil
}

// Compile turns a FileConfig into an immutable Catalog. Sections left empty
// in the config inherit the corresponding built-in default section.
func Compile(fc FileConfig) (*Catalog, error) {
	def := defaultConfig()

	if len(fc.Profiles) == 0 {
		fc.Profiles = def.Profiles
	}
	if len(fc.GlobalNegatives) == 0 {
		fc.GlobalNegatives = def.GlobalNegatives
	}
	if len(fc.StoreNames) == 0 {
		fc.StoreNames = def.StoreNames
	}
	if len(fc.DomainVendors) == 0 {
		fc.DomainVendors = def.DomainVendors
	}
	if len(fc.NoiseWords) == 0 {
		fc.NoiseWords = def.NoiseWords
	}

	cat := &Catalog{
		DomainVendors: make(map[string]string, len(fc.DomainVendors)),
		NoiseWords:    make(map[string]bool, len(fc.NoiseWords)),
	}

	for _, vp := range fc.Profiles {
		p, err := compileProfile(vp)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(vp.Name, genericProfileName) {
			cat.Generic = p
			continue
		}
		cat.Profiles = append(cat.Profiles, p)

		// Named profiles with confirmation patterns double as the
		// platform tier of vendor resolution: the main signal is the body
		// pattern list, corroborated by a confirmation hit.
		if len(p.Confirmations) > 0 && len(p.Body) > 0 {
			cat.Platforms = append(cat.Platforms, Platform{
				Name:    p.Name,
				Main:    p.Body,
				Confirm: p.Confirmations,
			})
		}
	}
	if cat.Generic.Name == "" {
		g, err := compileProfile(defaultGenericProfile())
		if err != nil {
			return nil, err
		}
		cat.Generic = g
	}

	if cat.GlobalNegatives == nil {
		var err error
		if cat.GlobalNegatives, err = compileAll(fc.GlobalNegatives); err != nil {
			return nil, err
		}
	}

	for _, sn := range fc.StoreNames {
		re, err := compilePattern(sn.Pattern)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", sn.Name, err)
		}
		cat.StoreNames = append(cat.StoreNames, CompiledStore{Name: sn.Name, Pattern: re})
	}

	for domain, vendor := range fc.DomainVendors {
		cat.DomainVendors[strings.ToLower(domain)] = vendor
	}

	for _, w := range fc.NoiseWords {
		cat.NoiseWords[strings.ToLower(w)] = true
	}

	var err error
	if cat.GenericVendor, err = compileAll(genericVendorPatterns); err != nil {
		return nil, err
	}

	return cat, nil
}

// Default returns the catalog compiled from the built-in configuration.
func Default() *Catalog {
	cat, err := Compile(FileConfig{})
	if err != nil {
		// Built-in patterns are fixed at compile time; a failure here is a
		// programming error.
		panic(err)
	}
	return cat
}

// IsNoise reports whether a generic-tier vendor candidate is a known
// non-vendor word (product nouns, delivery-status words, payment vocabulary).
func (c *Catalog) IsNoise(candidate string) bool {
	for _, word := range strings.Fields(strings.ToLower(candidate)) {
		if c.NoiseWords[word] {
			return true
		}
	}
	return false
}

// CanonicalVendor reports whether a name matches a known canonical vendor
// (platform, store, or domain table entry), meaning its casing should be
// preserved rather than re-title-cased.
func (c *Catalog) CanonicalVendor(name string) bool {
	for _, p := range c.Platforms {
		if p.Name == name {
			return true
		}
	}
	for _, s := range c.StoreNames {
		if s.Name == name {
			return true
		}
	}
	for _, v := range c.DomainVendors {
		if v == name {
			return true
		}
	}
	return false
}
