package render

import (
	"time"

	"github.com/mufiz-dev/invoice-studio/internal/invoice"
	"github.com/mufiz-dev/invoice-studio/internal/numwords"
)

// Seller is the issuing business block printed at the top of the preview.
type Seller struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	GSTIN        string `json:"gstin"`
	State        string `json:"state"`
	StateCode    string `json:"stateCode"`
	BankName     string `json:"bankName"`
	BankAccount  string `json:"bankAccount"`
	BankIFSC     string `json:"bankIfsc"`
}

// Row is one rendered product line. Number is the row's 1-based position in
// the document at build time.
type Row struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
	SizeLabel   string `json:"size"`
	HSNCode     string `json:"hsn"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Unit        string `json:"unit"`
	Amount      string `json:"amount"`
}

// TaxRow is one line of the tax breakdown table.
type TaxRow struct {
	Label       string `json:"label"`
	RatePercent string `json:"ratePercent"`
	Amount      string `json:"amount"`
}

// Preview is the fully resolved invoice document, independent of any output
// markup. Every field is already formatted for display.
type Preview struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	Seller Seller `json:"seller"`

	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	OrderNumber   string `json:"orderNumber"`
	OrderDate     string `json:"orderDate"`

	BuyerName    string `json:"buyerName"`
	BuyerAddress string `json:"buyerAddress"`
	BuyerCity    string `json:"buyerCity"`
	BuyerPincode string `json:"buyerPincode"`
	BuyerGSTIN   string `json:"buyerGSTIN"`
	BuyerState   string `json:"buyerState"`

	Rows []Row `json:"rows"`

	TotalQuantity string `json:"totalQuantity"`
	TotalAmount   string `json:"totalAmount"`

	AmountInWords string   `json:"amountInWords"`
	TaxRows       []TaxRow `json:"taxRows"`
	TaxInWords    string   `json:"taxInWords"`

	Declaration string `json:"declaration"`
	SignatureBy string `json:"signatureBy"`
	Footnote    string `json:"footnote"`
}

const (
	unitPairs = "PRS"

	declarationText = "We declare that this invoice shows the actual price of the goods described and that all particulars are true and correct."
	footnoteText    = "This is a Computer Generated Invoice"
)

// BuildPreview resolves a document and its totals into a display-ready tree.
func BuildPreview(doc invoice.Document, totals invoice.Totals, seller Seller) Preview {
	p := Preview{
		Title:    "Tax Invoice",
		Subtitle: "(ORIGINAL FOR RECIPIENT)",
		Seller:   seller,

		InvoiceNumber: doc.InvoiceNumber,
		InvoiceDate:   DisplayDate(doc.InvoiceDate),
		OrderNumber:   doc.OrderNumber,
		OrderDate:     DisplayDate(doc.OrderDate),

		BuyerName:    doc.Buyer.Name,
		BuyerAddress: doc.Buyer.Address,
		BuyerCity:    doc.Buyer.City,
		BuyerPincode: doc.Buyer.Pincode,
		BuyerGSTIN:   doc.Buyer.GSTIN,
		BuyerState:   seller.State,

		TotalQuantity: totals.TotalQuantity.StringFixed(2) + " " + unitPairs,
		TotalAmount:   totals.TotalAmount.StringFixed(2),

		AmountInWords: "INR " + numwords.Rupees(totals.GrandTotal) + " Only",
		TaxInWords:    "INR " + numwords.Rupees(totals.TaxTotal) + " Only",

		Declaration: declarationText,
		SignatureBy: "for " + seller.Name,
		Footnote:    footnoteText,
	}

	p.Rows = make([]Row, 0, len(doc.Items))
	for i, item := range doc.Items {
		p.Rows = append(p.Rows, Row{
			Number:      i + 1,
			Description: item.Description,
			SizeLabel:   item.SizeLabel,
			HSNCode:     item.HSNCode,
			Quantity:    item.Quantity.StringFixed(2),
			Rate:        item.UnitRate.StringFixed(2),
			Unit:        unitPairs,
			Amount:      item.Amount.StringFixed(2),
		})
	}

	p.TaxRows = []TaxRow{
		{Label: "CGST", RatePercent: doc.CGSTPercent.String() + "%", Amount: totals.CGSTAmount.StringFixed(2)},
		{Label: "SGST", RatePercent: doc.SGSTPercent.String() + "%", Amount: totals.SGSTAmount.StringFixed(2)},
	}

	return p
}

// DisplayDate converts an ISO date (2006-01-02) to the DD-MM-YY form used on
// the printed invoice. Values that do not parse are returned unchanged.
func DisplayDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("02-01-06")
}
