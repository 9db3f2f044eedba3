package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
)

func TestAmountResolver(t *testing.T) {
	r := NewAmountResolver(&logging.MockLogger{})

	tests := []struct {
		name       string
		text       string
		want       string
		wantSource models.AmountSource
		wantFound  bool
	}{
		{
			name:       "Subtotal anchor picks later order total",
			text:       "Subtotal: $45.00\nTax: $3.30\nTip: $4.00\nOrder Total: $52.30",
			want:       "52.30",
			wantSource: models.AmountSourceSubtotalAnchor,
			wantFound:  true,
		},
		{
			name:       "Subtotal anchor falls back to subtotal itself",
			text:       "Subtotal: $45.00\nTax: $3.30",
			want:       "45.00",
			wantSource: models.AmountSourceSubtotalAnchor,
			wantFound:  true,
		},
		{
			name:       "Post-subtotal total smaller than subtotal is rejected",
			text:       "Subtotal: $45.00\nTotal: $10.00",
			want:       "45.00",
			wantSource: models.AmountSourceSubtotalAnchor,
			wantFound:  true,
		},
		{
			name:       "Spaced Sub Total",
			text:       "Sub Total: $20.00\nGrand Total: $25.00",
			want:       "25.00",
			wantSource: models.AmountSourceSubtotalAnchor,
			wantFound:  true,
		},
		{
			name:       "High priority total with no subtotal",
			text:       "Thanks for your order!\nTotal: $10.00",
			want:       "10.00",
			wantSource: models.AmountSourceHigh,
			wantFound:  true,
		},
		{
			name:       "High priority without dollar sign",
			text:       "Amount charged: 23.45",
			want:       "23.45",
			wantSource: models.AmountSourceHigh,
			wantFound:  true,
		},
		{
			name:       "High priority case insensitive",
			text:       "TOTAL: $9.99",
			want:       "9.99",
			wantSource: models.AmountSourceHigh,
			wantFound:  true,
		},
		{
			name:       "Thousands separators",
			text:       "Order Total: $1,234.56",
			want:       "1234.56",
			wantSource: models.AmountSourceHigh,
			wantFound:  true,
		},
		{
			name:       "Medium priority loose context",
			text:       "Your total for this order came to $18.20 today",
			want:       "18.20",
			wantSource: models.AmountSourceMedium,
			wantFound:  true,
		},
		{
			name:       "Low priority takes largest bare amount",
			text:       "Items: $5.00 and $12.34 and $3.99",
			want:       "12.34",
			wantSource: models.AmountSourceLow,
			wantFound:  true,
		},
		{
			name:      "Low priority requires cents",
			text:      "about $12 worth",
			wantFound: false,
		},
		{
			name:      "Nothing usable",
			text:      "no money mentioned here",
			wantFound: false,
		},
		{
			name:      "Empty",
			text:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, source, found := r.Resolve(tt.text)
			if !tt.wantFound {
				assert.False(t, found)
				return
			}
			require.True(t, found)
			assert.Equal(t, tt.want, amount.StringFixed(2))
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestAmountResolverOrderTotalBeatsLaterSubtotalMentions(t *testing.T) {
	r := NewAmountResolver(&logging.MockLogger{})

	// "Total" inside "Subtotal" never matches the word-boundary form, so the
	// subtotal line cannot masquerade as a final total.
	text := "Subtotal: $30.00\nSubtotal reminder: $30.00\nGrand Total: $33.50"
	amount, source, found := r.Resolve(text)

	require.True(t, found)
	assert.Equal(t, "33.50", amount.StringFixed(2))
	assert.Equal(t, models.AmountSourceSubtotalAnchor, source)
}

func TestAmountResolverNonPositiveSubtotalYieldsNothing(t *testing.T) {
	r := NewAmountResolver(&logging.MockLogger{})

	// A subtotal line exists but is unusable; the lower tiers stay off so a
	// random later figure cannot win against an explicit subtotal document.
	_, _, found := r.Resolve("Subtotal: $0.00\nTotal: $10.00")
	assert.False(t, found)
}
