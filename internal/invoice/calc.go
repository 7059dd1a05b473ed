package invoice

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Recompute derives UnitRate and Amount from the editable fields of a row.
// When ListPrice is positive the rate is the list price less the percentage
// discount, rounded to two decimals. When ListPrice is zero or negative the
// previously stored rate is kept untouched; rows seeded with a direct rate and
// no list price rely on this. Discounts outside [0,100] are applied as-is.
func Recompute(item LineItem) LineItem {
	if item.ListPrice.IsPositive() {
		factor := decimal.NewFromInt(1).Sub(item.DiscountPercent.Div(hundred))
		item.UnitRate = item.ListPrice.Mul(factor).Round(2)
	}
	item.Amount = item.Quantity.Mul(item.UnitRate).Round(2)
	return item
}

// Aggregate recomputes the document totals from the current item sequence and
// tax rates. It is a pure function over the document snapshot; nothing is
// cached between calls.
func Aggregate(doc Document) Totals {
	var totalQty, totalAmount decimal.Decimal
	for _, item := range doc.Items {
		totalQty = totalQty.Add(item.Quantity)
		totalAmount = totalAmount.Add(item.Amount)
	}
	cgst := totalAmount.Mul(doc.CGSTPercent).Div(hundred)
	sgst := totalAmount.Mul(doc.SGSTPercent).Div(hundred)
	taxTotal := cgst.Add(sgst)
	return Totals{
		TotalQuantity: totalQty,
		TotalAmount:   totalAmount,
		CGSTAmount:    cgst,
		SGSTAmount:    sgst,
		TaxTotal:      taxTotal,
		GrandTotal:    totalAmount.Add(taxTotal),
	}
}
