package invoice

import "github.com/shopspring/decimal"

// DefaultHSNCode is the tariff classification pre-filled on new rows.
const DefaultHSNCode = "640220"

type seedRow struct {
	description string
	size        string
	qty         float64
	rate        float64
}

var sampleRows = []seedRow{
	{"H9QA9108L660", "SZ-6", 24, 108.60},
	{"H2K196806948", "SZ-6X9", 24, 99.00},
	{"H2BBA6711260", "SZ-2", 24, 81.00},
	{"11STL7704760", "SZ-4X7", 24, 150.60},
	{"H2MS700095872", "SZ-05X08", 24, 62.40},
}

// SampleItems returns the bundled demonstration rows. They are seeded with a
// direct unit rate and no list price, so Recompute leaves the rate alone and
// only derives the amount.
func SampleItems() []LineItem {
	items := make([]LineItem, 0, len(sampleRows))
	for _, row := range sampleRows {
		items = append(items, Recompute(LineItem{
			Description: row.description,
			SizeLabel:   row.size,
			HSNCode:     DefaultHSNCode,
			Quantity:    decimal.NewFromFloat(row.qty),
			UnitRate:    decimal.NewFromFloat(row.rate),
		}))
	}
	return items
}
