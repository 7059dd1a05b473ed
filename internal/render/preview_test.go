package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mufiz-dev/invoice-studio/internal/invoice"
)

func testSeller() Seller {
	return Seller{
		Name:         "MUFIZ TRADERS",
		AddressLine1: "K5/22/A",
		AddressLine2: "NEW UTTAR CHAKMIR, FAKIR PARA ROAD",
		AddressLine3: "West Bengal, 700142",
		GSTIN:        "19ACNPA7760L2Z2",
		State:        "West Bengal",
		StateCode:    "19",
		BankName:     "PUNJAB NATIONAL BANK",
		BankAccount:  "0339250006928",
		BankIFSC:     "PUNB0140600",
	}
}

func testDocument() invoice.Document {
	doc := invoice.NewDocument("2026-09-01")
	doc.InvoiceNumber = "INV-042"
	doc.OrderNumber = "PO-9"
	doc.OrderDate = "2026-08-15"
	doc.Buyer = invoice.Buyer{
		Name:    "ACME FOOTWEAR",
		Address: "12 Park Street",
		City:    "KOLKATA",
		Pincode: "700016",
		GSTIN:   "19AAAAA0000A1Z5",
	}
	doc.Items = invoice.SampleItems()
	return doc
}

func TestDisplayDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-09-01", "01-09-26"},
		{"2025-12-31", "31-12-25"},
		{"", ""},
		{"31/12/2025", "31/12/2025"},
		{"not-a-date", "not-a-date"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DisplayDate(tc.in), "in=%q", tc.in)
	}
}

func TestBuildPreviewRowsArePositional(t *testing.T) {
	doc := testDocument()
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())

	require.Len(t, p.Rows, 5)
	for i, row := range p.Rows {
		require.Equal(t, i+1, row.Number)
		require.Equal(t, "PRS", row.Unit)
	}
	require.Equal(t, "H9QA9108L660", p.Rows[0].Description)
	require.Equal(t, "108.60", p.Rows[0].Rate)
	require.Equal(t, "2606.40", p.Rows[0].Amount)
}

func TestBuildPreviewHeaderAndTotals(t *testing.T) {
	doc := testDocument()
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())

	require.Equal(t, "Tax Invoice", p.Title)
	require.Equal(t, "(ORIGINAL FOR RECIPIENT)", p.Subtitle)
	require.Equal(t, "INV-042", p.InvoiceNumber)
	require.Equal(t, "01-09-26", p.InvoiceDate)
	require.Equal(t, "15-08-26", p.OrderDate)
	require.Equal(t, "120.00 PRS", p.TotalQuantity)
	require.Equal(t, "12038.40", p.TotalAmount)
	require.Equal(t, "INR Twelve Thousand Six Hundred Forty Rupees and Thirty-Two Paise Only", p.AmountInWords)
	require.Equal(t, "INR Six Hundred One Rupees and Ninety-Two Paise Only", p.TaxInWords)
	require.Equal(t, "for MUFIZ TRADERS", p.SignatureBy)
}

func TestBuildPreviewTaxRows(t *testing.T) {
	doc := testDocument()
	doc.CGSTPercent = decimal.RequireFromString("6")
	doc.SGSTPercent = decimal.RequireFromString("2.5")
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())

	require.Len(t, p.TaxRows, 2)
	require.Equal(t, "CGST", p.TaxRows[0].Label)
	require.Equal(t, "6%", p.TaxRows[0].RatePercent)
	require.Equal(t, "SGST", p.TaxRows[1].Label)
	require.Equal(t, "2.5%", p.TaxRows[1].RatePercent)
	require.Equal(t, "300.96", p.TaxRows[1].Amount)
}

func TestBuildPreviewPassesMalformedDateThrough(t *testing.T) {
	doc := testDocument()
	doc.InvoiceDate = "sometime in 2026"
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())
	require.Equal(t, "sometime in 2026", p.InvoiceDate)
}

func TestHTMLRendererOutput(t *testing.T) {
	doc := testDocument()
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())

	var sb strings.Builder
	require.NoError(t, NewHTMLRenderer().Render(&sb, p))
	out := sb.String()

	require.Contains(t, out, "Tax Invoice")
	require.Contains(t, out, "INV-042")
	require.Contains(t, out, "ACME FOOTWEAR")
	require.Contains(t, out, "KOLKATA-700016")
	require.Contains(t, out, "H9QA9108L660")
	require.Contains(t, out, "120.00 PRS")
	require.Contains(t, out, "INR Twelve Thousand Six Hundred Forty Rupees and Thirty-Two Paise Only")
	require.Contains(t, out, "PUNB0140600")
}

func TestHTMLRendererEscapesInput(t *testing.T) {
	doc := testDocument()
	doc.Buyer.Name = `<script>alert("x")</script>`
	p := BuildPreview(doc, invoice.Aggregate(doc), testSeller())

	var sb strings.Builder
	require.NoError(t, NewHTMLRenderer().Render(&sb, p))
	require.NotContains(t, sb.String(), "<script>")
}
