package catalog

// genericProfileName identifies the catch-all profile in config files.
const genericProfileName = "Generic"

// genericVendorPatterns drive the last vendor-resolution tier: broad
// company-name shapes matched against the header section only. Group 1 is
// the candidate name; candidates are filtered through the noise list and
// length bounds afterwards.
var genericVendorPatterns = []string{
	`(?m)^([A-Z][A-Za-z&'.\- ]{1,40}?)\s+(?:Store|Market|Supermarket|Pharmacy|Restaurant|Cafe|Inc\.?|LLC|Ltd\.?|Corp\.?|Co\.)\b`,
	`(?i)order confirmation from\s+([A-Za-z][A-Za-z&'.\- ]{1,40})`,
	`(?i)thank you for (?:shopping|ordering) (?:at|with|from)\s+([A-Za-z][A-Za-z&'.\- ]{1,40})`,
	`(?i)receipt from\s+([A-Za-z][A-Za-z&'.\- ]{1,40})`,
	`(?i)your (?:order|purchase) (?:from|at)\s+([A-Za-z][A-Za-z&'.\- ]{1,40})`,
}

// defaultGenericProfile is the catch-all classifier profile: receipt
// vocabulary with no vendor identity attached.
func defaultGenericProfile() VendorProfile {
	return VendorProfile{
		Name: genericProfileName,
		SubjectPatterns: []string{
			`\breceipt\b`,
			`order confirmation`,
			`your order`,
			`\binvoice\b`,
			`payment (?:received|confirmation)`,
			`purchase confirmation`,
		},
		BodyPatterns: []string{
			`order total`,
			`\btotal[:\s]*\$`,
			`thank you for your (?:order|purchase)`,
			`payment received`,
			`amount charged`,
			`billed to`,
			`invoice #`,
			`\bsubtotal\b`,
		},
	}
}

// DefaultFileConfig returns the built-in pattern configuration in its
// YAML-facing shape, for exporting as a customization starting point.
func DefaultFileConfig() FileConfig {
	return defaultConfig()
}

// defaultConfig is the built-in pattern configuration, used whenever the
// catalog YAML file is absent or leaves a section empty.
func defaultConfig() FileConfig {
	return FileConfig{
		Profiles: []VendorProfile{
			{
				Name:    "Amazon",
				Domains: []string{"amazon.com", "marketplace.amazon.com"},
				SubjectPatterns: []string{
					`your amazon(?:\.com)? order`,
					`order confirmation`,
					`shipped: `,
				},
				BodyPatterns: []string{
					`\bamazon(?:\.com)?\b`,
				},
				ConfirmationPatterns: []string{
					`order (?:number|confirmation|total)`,
					`\barriving\b`,
					`sold by`,
					`track (?:your )?package`,
				},
				NegativePatterns: []string{
					`prime video`,
					`kindle daily deal`,
					`recommended for you`,
				},
			},
			{
				Name:    "Instacart",
				Domains: []string{"instacart.com"},
				SubjectPatterns: []string{
					`your instacart (?:order|receipt)`,
					`order delivered`,
				},
				BodyPatterns: []string{
					`\binstacart\b`,
				},
				ConfirmationPatterns: []string{
					`your order (?:receipt|has been placed)`,
					`order total`,
					`delivery receipt`,
					`items? delivered`,
				},
			},
			{
				Name:    "DoorDash",
				Domains: []string{"doordash.com"},
				SubjectPatterns: []string{
					`order confirmation for`,
					`your doordash (?:order|receipt)`,
				},
				BodyPatterns: []string{
					`\bdoordash\b`,
				},
				ConfirmationPatterns: []string{
					`order confirmation`,
					`your receipt`,
					`total charged`,
					`dasher`,
				},
			},
			{
				Name:    "Uber Eats",
				Domains: []string{"uber.com", "ubereats.com"},
				SubjectPatterns: []string{
					`your uber eats (?:order|receipt)`,
				},
				BodyPatterns: []string{
					`uber\s*eats`,
				},
				ConfirmationPatterns: []string{
					`thanks for ordering`,
					`order total`,
					`you ordered from`,
				},
			},
			{
				Name:    "Grubhub",
				Domains: []string{"grubhub.com"},
				SubjectPatterns: []string{
					`your grubhub order`,
				},
				BodyPatterns: []string{
					`\bgrubhub\b`,
				},
				ConfirmationPatterns: []string{
					`order confirmation`,
					`your receipt`,
					`delivery from`,
				},
			},
			{
				Name:    "Walmart",
				Domains: []string{"walmart.com"},
				SubjectPatterns: []string{
					`your walmart(?:\.com)? order`,
					`pickup confirmation`,
				},
				BodyPatterns: []string{
					`\bwalmart\b`,
				},
				ConfirmationPatterns: []string{
					`order (?:number|total)`,
					`thanks for your order`,
					`ready for pickup`,
				},
			},
			{
				Name:    "PayPal",
				Domains: []string{"paypal.com"},
				SubjectPatterns: []string{
					`receipt for your payment`,
					`you sent a payment`,
				},
				BodyPatterns: []string{
					`\bpaypal\b`,
				},
				NegativePatterns: []string{
					`verify your (?:account|identity)`,
					`unusual activity`,
				},
			},
			defaultGenericProfile(),
		},

		GlobalNegatives: []string{
			`\bunsubscribe\b`,
			`\bnewsletter\b`,
			`\d+%\s*off`,
			`\bflash sale\b`,
			`sale ends`,
			`limited time offer`,
			`\bsurvey\b`,
			`tell us (?:what you think|about your experience)`,
			`password reset`,
			`reset your password`,
			`verify your (?:email|account)`,
			`confirm your (?:email|subscription)`,
			`\bwebinar\b`,
			`job alert`,
			`you left items? in your cart`,
		},

		StoreNames: []StoreName{
			{Name: "Walmart", Pattern: `\bwal[\s-]?mart\b`},
			{Name: "Target", Pattern: `\btarget\b`},
			{Name: "Costco", Pattern: `\bcostco\b`},
			{Name: "Kroger", Pattern: `\bkroger\b`},
			{Name: "Safeway", Pattern: `\bsafeway\b`},
			{Name: "Whole Foods", Pattern: `whole\s*foods`},
			{Name: "Trader Joe's", Pattern: `trader\s*joe'?s`},
			{Name: "Aldi", Pattern: `\baldi\b`},
			{Name: "Publix", Pattern: `\bpublix\b`},
			{Name: "Wegmans", Pattern: `\bwegmans\b`},
			{Name: "CVS", Pattern: `\bcvs(?:\s*pharmacy)?\b`},
			{Name: "Walgreens", Pattern: `\bwalgreens\b`},
			{Name: "Home Depot", Pattern: `home\s*depot`},
			{Name: "Lowe's", Pattern: `\blowe'?s\b`},
			{Name: "Best Buy", Pattern: `best\s*buy`},
			{Name: "Staples", Pattern: `\bstaples\b`},
			{Name: "Office Depot", Pattern: `office\s*depot`},
			{Name: "Starbucks", Pattern: `\bstarbucks\b`},
			{Name: "Chipotle", Pattern: `\bchipotle\b`},
			{Name: "McDonald's", Pattern: `\bmcdonald'?s\b`},
			{Name: "Dunkin", Pattern: `\bdunkin'?(?:\s*donuts)?\b`},
			{Name: "IKEA", Pattern: `\bikea\b`},
			{Name: "REI", Pattern: `\brei\b`},
			{Name: "Nordstrom", Pattern: `\bnordstrom\b`},
			{Name: "Macy's", Pattern: `\bmacy'?s\b`},
			{Name: "Sephora", Pattern: `\bsephora\b`},
			{Name: "PetSmart", Pattern: `\bpetsmart\b`},
			{Name: "Petco", Pattern: `\bpetco\b`},
			{Name: "Ace Hardware", Pattern: `ace\s*hardware`},
			{Name: "7-Eleven", Pattern: `7[\s-]?eleven`},
			{Name: "Shell", Pattern: `\bshell\s+(?:oil|station|gas)\b`},
			{Name: "Chevron", Pattern: `\bchevron\b`},
		},

		DomainVendors: map[string]string{
			"amazon.com":    "Amazon",
			"instacart.com": "Instacart",
			"doordash.com":  "DoorDash",
			"uber.com":      "Uber",
			"ubereats.com":  "Uber Eats",
			"grubhub.com":   "Grubhub",
			"walmart.com":   "Walmart",
			"target.com":    "Target",
			"costco.com":    "Costco",
			"kroger.com":    "Kroger",
			"safeway.com":   "Safeway",
			"wholefoods.com": "Whole Foods",
			"cvs.com":        "CVS",
			"walgreens.com":  "Walgreens",
			"homedepot.com":  "Home Depot",
			"lowes.com":      "Lowe's",
			"bestbuy.com":    "Best Buy",
			"starbucks.com":  "Starbucks",
			"chipotle.com":   "Chipotle",
			"paypal.com":     "PayPal",
			"squareup.com":   "Square",
			"stripe.com":     "Stripe",
			"lyft.com":       "Lyft",
			"apple.com":      "Apple",
		},

		// Words that disqualify a generic-tier candidate: product and
		// grocery nouns, delivery-status vocabulary, payment vocabulary.
		NoiseWords: []string{
			"organic", "fresh", "whole", "milk", "bread", "eggs", "chicken",
			"produce", "bakery", "frozen", "snack", "snacks",
			"free", "shipping", "delivery", "delivered", "shipped",
			"arriving", "tracking", "package", "return", "refund",
			"order", "orders", "total", "subtotal", "payment", "paid",
			"receipt", "invoice", "purchase", "confirmation", "billing",
			"customer", "service", "support", "account", "member",
			"thank", "thanks", "daily", "weekly", "special", "deal",
			"save", "sale", "item", "items", "gift", "card", "credit",
			"debit", "balance", "statement", "summary",
		},
	}
}
