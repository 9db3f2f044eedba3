package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompiles(t *testing.T) {
	cat := Default()

	assert.NotEmpty(t, cat.Profiles)
	assert.NotEmpty(t, cat.GlobalNegatives)
	assert.NotEmpty(t, cat.StoreNames)
	assert.NotEmpty(t, cat.DomainVendors)
	assert.NotEmpty(t, cat.GenericVendor)
	assert.Equal(t, "Generic", cat.Generic.Name)
}

func TestDefaultPlatformDerivation(t *testing.T) {
	cat := Default()

	names := make(map[string]bool)
	for _, p := range cat.Platforms {
		names[p.Name] = true
	}

	// Profiles with confirmation patterns double as platform-tier entries.
	assert.True(t, names["Amazon"])
	assert.True(t, names["Instacart"])
	// PayPal has no confirmation patterns so it never becomes a platform.
	assert.False(t, names["PayPal"])
	// The generic profile is not a vendor.
	assert.False(t, names["Generic"])
}

func TestCompileEmptySectionsInheritDefaults(t *testing.T) {
	cat, err := Compile(FileConfig{
		Profiles: []VendorProfile{
			{Name: "Acme", SubjectPatterns: []string{`acme order`}},
		},
	})
	require.NoError(t, err)

	// Custom profiles replace the defaults entirely.
	require.Len(t, cat.Profiles, 1)
	assert.Equal(t, "Acme", cat.Profiles[0].Name)
	// A config without a Generic profile still gets the built-in one.
	assert.Equal(t, "Generic", cat.Generic.Name)
	assert.NotEmpty(t, cat.Generic.Subject)
	// Omitted sections fall back to the defaults.
	assert.NotEmpty(t, cat.GlobalNegatives)
	assert.NotEmpty(t, cat.StoreNames)
}

func TestCompileRejectsInvalidPattern(t *testing.T) {
	_, err := Compile(FileConfig{
		Profiles: []VendorProfile{
			{Name: "Broken", SubjectPatterns: []string{`(unclosed`}},
		},
	})
	assert.Error(t, err)
}

func TestCompilePatternCaseSensitivity(t *testing.T) {
	// Plain patterns compile case-insensitive.
	re, err := compilePattern(`receipt`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("Your RECEIPT"))

	// Patterns with their own inline flags are compiled as written.
	re, err = compilePattern(`(?m)^[A-Z]+$`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("ACME"))
	assert.False(t, re.MatchString("acme"))
}

func TestIsNoise(t *testing.T) {
	cat := Default()

	assert.True(t, cat.IsNoise("Organic"))
	assert.True(t, cat.IsNoise("Free Shipping"))
	assert.True(t, cat.IsNoise("Order Total"))
	assert.False(t, cat.IsNoise("Bluebird Coffee"))
	assert.False(t, cat.IsNoise(""))
}

func TestCanonicalVendor(t *testing.T) {
	cat := Default()

	assert.True(t, cat.CanonicalVendor("Amazon"))
	assert.True(t, cat.CanonicalVendor("Trader Joe's"))
	assert.True(t, cat.CanonicalVendor("Square"))
	assert.False(t, cat.CanonicalVendor("Bluebird Coffee"))
}
