package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
)

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newDateResolver(t *testing.T) *DateResolver {
	t.Helper()
	return NewDateResolver(&logging.MockLogger{}).WithClock(func() time.Time { return testNow })
}

func TestDateResolverContextConfidence(t *testing.T) {
	r := newDateResolver(t)

	tests := []struct {
		name           string
		text           string
		want           string
		wantConfidence int
	}{
		{
			name:           "Order context",
			text:           "Your order placed on June 23rd, 2025 is confirmed.",
			want:           "2025-06-23",
			wantConfidence: dateConfidenceOrder,
		},
		{
			name:           "Delivery context beats order context",
			text:           "Ordered June 20, 2025.\nDelivered June 24, 2025.",
			want:           "2025-06-24",
			wantConfidence: dateConfidenceDelivery,
		},
		{
			name:           "Bare date",
			text:           "Visit summary 06/15/2025 reference 4711",
			want:           "2025-06-15",
			wantConfidence: dateConfidenceBase,
		},
		{
			name:           "Dashed US format",
			text:           "Shipped 06-18-2025 via ground",
			wantConfidence: dateConfidenceOrder,
			want:           "2025-06-18",
		},
		{
			name:           "Four letter September abbreviation",
			text:           "Ordered Sept 5, 2024 online",
			want:           "2024-09-05",
			wantConfidence: dateConfidenceOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.text, "", true)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Date.Format("2006-01-02"))
			assert.Equal(t, tt.wantConfidence, got.Confidence)
			assert.False(t, got.Synthetic)
		})
	}
}

func TestDateResolverSubjectDateWins(t *testing.T) {
	r := newDateResolver(t)

	got, ok := r.Resolve("Delivered June 24, 2025.", "Receipt 2025-06-20", true)
	require.True(t, ok)
	assert.Equal(t, "2025-06-20", got.Date.Format("2006-01-02"))
	assert.Equal(t, dateConfidenceSubject, got.Confidence)
}

func TestDateResolverRejectsFarFutureDates(t *testing.T) {
	r := newDateResolver(t)

	// Clock is 2025-07-01; an arrival two weeks out is not a transaction
	// date, so only the synthetic fallback remains.
	got, ok := r.Resolve("Arriving July 15, 2025", "subject", true)
	require.True(t, ok)
	assert.True(t, got.Synthetic)
	assert.Zero(t, got.Confidence)
}

func TestDateResolverFutureToleranceAllowsNextDay(t *testing.T) {
	r := newDateResolver(t)

	got, ok := r.Resolve("Charged on July 2, 2025", "", true)
	require.True(t, ok)
	assert.False(t, got.Synthetic)
	assert.Equal(t, "2025-07-02", got.Date.Format("2006-01-02"))
}

func TestDateResolverRecencyBreaksConfidenceTies(t *testing.T) {
	r := newDateResolver(t)

	got, ok := r.Resolve("ref 2025-06-01 and ref 2025-06-15", "", true)
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", got.Date.Format("2006-01-02"))
}

func TestDateResolverSyntheticFallback(t *testing.T) {
	r := newDateResolver(t)

	first, ok := r.Resolve("no dates in this text", "Order from Acme", true)
	require.True(t, ok)
	assert.True(t, first.Synthetic)
	assert.Zero(t, first.Confidence)

	age := testNow.Sub(first.Date)
	assert.GreaterOrEqual(t, age, 24*time.Hour-12*time.Hour) // at least previous day
	assert.LessOrEqual(t, age, 8*24*time.Hour)

	// Deterministic: same input, same fabricated date.
	second, ok := r.Resolve("no dates in this text", "Order from Acme", true)
	require.True(t, ok)
	assert.Equal(t, first.Date, second.Date)

	// Different input, independent offset (may or may not differ, but must
	// stay inside the window).
	other, ok := r.Resolve("still no dates", "Different subject", true)
	require.True(t, ok)
	assert.True(t, other.Synthetic)
}

func TestDateResolverNoKeywordContext(t *testing.T) {
	r := newDateResolver(t)

	// Without keyword context there is no synthetic fallback.
	_, ok := r.Resolve("no dates in this text", "", false)
	assert.False(t, ok)

	// And candidates rank by recency, not vocabulary.
	got, ok := r.Resolve("Delivered June 10, 2025. Noted June 12, 2025.", "", false)
	require.True(t, ok)
	assert.Equal(t, "2025-06-12", got.Date.Format("2006-01-02"))
	assert.Equal(t, dateConfidenceBase, got.Confidence)
}
