package invoice

import "github.com/shopspring/decimal"

// DefaultTaxPercent is the CGST/SGST rate applied to new documents.
var DefaultTaxPercent = decimal.NewFromFloat(2.5)

// LineItem is a single row of the invoice. UnitRate and Amount are derived
// fields; they are never edited directly and are refreshed through Recompute
// whenever Quantity, ListPrice or DiscountPercent changes.
type LineItem struct {
	Description     string
	SizeLabel       string
	HSNCode         string
	Quantity        decimal.Decimal
	ListPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	UnitRate        decimal.Decimal
	Amount          decimal.Decimal
}

// Buyer holds the bill-to party details as entered, untyped free text.
type Buyer struct {
	Name    string
	Address string
	City    string
	Pincode string
	GSTIN   string
}

// Document is the aggregate root of one invoice editing session. Items are
// kept in display order; a row's number is its 1-based position at render
// time, nothing is stored per row.
type Document struct {
	InvoiceNumber string
	InvoiceDate   string
	OrderNumber   string
	OrderDate     string
	Buyer         Buyer
	CGSTPercent   decimal.Decimal
	SGSTPercent   decimal.Decimal
	Items         []LineItem
}

// Totals carries the aggregate values derived from the current item sequence.
// Values retain full precision; rounding happens at presentation time.
type Totals struct {
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal
}

// NewDocument returns a document with default tax rates and no items.
func NewDocument(invoiceDate string) Document {
	return Document{
		InvoiceDate: invoiceDate,
		CGSTPercent: DefaultTaxPercent,
		SGSTPercent: DefaultTaxPercent,
	}
}

// Clone returns a deep copy so callers can hand documents across goroutines
// without sharing the item slice.
func (d Document) Clone() Document {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}
