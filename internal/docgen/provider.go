package docgen

import (
	"context"
	"fmt"
)

// Payload is the JSON body sent to the document generation service. Field
// names follow the service contract and must not change independently.
type Payload struct {
	BuyerName     string    `json:"buyerName"`
	BuyerAddress  string    `json:"buyerAddress"`
	BuyerCity     string    `json:"buyerCity"`
	BuyerPincode  string    `json:"buyerPincode"`
	BuyerGSTIN    string    `json:"buyerGSTIN"`
	InvoiceNumber string    `json:"invoiceNumber"`
	InvoiceDate   string    `json:"invoiceDate"`
	OrderNumber   string    `json:"orderNumber"`
	OrderDate     string    `json:"orderDate"`
	CGSTRate      string    `json:"cgstRate"`
	SGSTRate      string    `json:"sgstRate"`
	Products      []Product `json:"products"`
}

// Product is one invoice row in the generation payload.
type Product struct {
	Description string  `json:"description"`
	Size        string  `json:"size"`
	HSN         string  `json:"hsn"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Result is a generated document returned by the service.
type Result struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Generator produces a rendered PDF document from an invoice payload.
type Generator interface {
	Generate(ctx context.Context, payload Payload) (*Result, error)
}

// Error is a failure reported by the generation service. Message carries the
// service's own wording when it sent one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("docgen: generation failed (%d): %s", e.StatusCode, e.Message)
}

// GenericFailureMessage is shown when the service gave no usable error detail.
const GenericFailureMessage = "Failed to generate PDF. Please check if the server is running."

// FileName builds the download file name for a generated invoice.
func FileName(invoiceNumber, invoiceDate string) string {
	return fmt.Sprintf("Invoice_%s_%s.pdf", invoiceNumber, invoiceDate)
}

// Mock implements Generator for tests and local development without the
// external service.
type Mock struct {
	Err     error
	Payload *Payload
}

// Generate records the payload and returns a canned PDF stub.
func (m *Mock) Generate(_ context.Context, payload Payload) (*Result, error) {
	m.Payload = &payload
	if m.Err != nil {
		return nil, m.Err
	}
	return &Result{
		FileName:    FileName(payload.InvoiceNumber, payload.InvoiceDate),
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4\n% mock document\n"),
	}, nil
}
