package editor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mufiz-dev/invoice-studio/internal/common"
	"github.com/mufiz-dev/invoice-studio/internal/docgen"
	"github.com/mufiz-dev/invoice-studio/internal/invoice"
	"github.com/mufiz-dev/invoice-studio/internal/obs"
	"github.com/mufiz-dev/invoice-studio/internal/render"
)

// HeaderPatch carries partial updates to the document header. Nil fields are
// left untouched; numeric fields arrive as free text and are coerced.
type HeaderPatch struct {
	InvoiceNumber *string `json:"invoiceNumber"`
	InvoiceDate   *string `json:"invoiceDate"`
	OrderNumber   *string `json:"orderNumber"`
	OrderDate     *string `json:"orderDate"`
	BuyerName     *string `json:"buyerName"`
	BuyerAddress  *string `json:"buyerAddress"`
	BuyerCity     *string `json:"buyerCity"`
	BuyerPincode  *string `json:"buyerPincode"`
	BuyerGSTIN    *string `json:"buyerGSTIN"`
	CGSTRate      *string `json:"cgstRate"`
	SGSTRate      *string `json:"sgstRate"`
}

// ItemPatch carries partial updates to one line item. Numeric fields are free
// text; anything unparseable coerces to zero. Editing ListPrice or
// DiscountPercent recomputes the rate; editing UnitRate directly only sticks
// while ListPrice is zero.
type ItemPatch struct {
	Description     *string `json:"description"`
	SizeLabel       *string `json:"size"`
	HSNCode         *string `json:"hsn"`
	Quantity        *string `json:"quantity"`
	ListPrice       *string `json:"listPrice"`
	DiscountPercent *string `json:"discount"`
	UnitRate        *string `json:"rate"`
}

type exportForm struct {
	BuyerName     string `validate:"required"`
	InvoiceNumber string `validate:"required"`
	InvoiceDate   string `validate:"required"`
}

// Service owns document lifecycle and the export pipeline.
type Service struct {
	Store     *Store
	Generator docgen.Generator
	Validate  *validator.Validate
	Seller    render.Seller

	DefaultCGST decimal.Decimal
	DefaultSGST decimal.Decimal
}

// NewService wires a service around the given store and generator.
func NewService(store *Store, gen docgen.Generator, seller render.Seller) *Service {
	return &Service{
		Store:       store,
		Generator:   gen,
		Validate:    validator.New(),
		Seller:      seller,
		DefaultCGST: invoice.DefaultTaxPercent,
		DefaultSGST: invoice.DefaultTaxPercent,
	}
}

// CreateDocument opens a new editing session. When seedSample is true the
// document starts with the stock product rows instead of an empty grid.
func (s *Service) CreateDocument(seedSample bool) (string, invoice.Document) {
	doc := invoice.NewDocument(time.Now().Format("2006-01-02"))
	doc.CGSTPercent = s.DefaultCGST
	doc.SGSTPercent = s.DefaultSGST
	if seedSample {
		doc.Items = invoice.SampleItems()
	}
	id := s.Store.Create(doc)
	if obs.DocumentsCreatedTotal != nil {
		obs.DocumentsCreatedTotal.WithLabelValues(boolLabel(seedSample)).Inc()
	}
	return id, doc
}

// GetDocument returns the current state of a session.
func (s *Service) GetDocument(id string) (invoice.Document, error) {
	return s.Store.Get(id)
}

// UpdateHeader applies a header patch and returns the updated document.
func (s *Service) UpdateHeader(id string, patch HeaderPatch) (invoice.Document, error) {
	return s.Store.Update(id, func(doc *invoice.Document) error {
		applyString(&doc.InvoiceNumber, patch.InvoiceNumber)
		applyString(&doc.InvoiceDate, patch.InvoiceDate)
		applyString(&doc.OrderNumber, patch.OrderNumber)
		applyString(&doc.OrderDate, patch.OrderDate)
		applyString(&doc.Buyer.Name, patch.BuyerName)
		applyString(&doc.Buyer.Address, patch.BuyerAddress)
		applyString(&doc.Buyer.City, patch.BuyerCity)
		applyString(&doc.Buyer.Pincode, patch.BuyerPincode)
		applyString(&doc.Buyer.GSTIN, patch.BuyerGSTIN)
		if patch.CGSTRate != nil {
			doc.CGSTPercent = common.DecimalOrDefault(*patch.CGSTRate, s.DefaultCGST)
		}
		if patch.SGSTRate != nil {
			doc.SGSTPercent = common.DecimalOrDefault(*patch.SGSTRate, s.DefaultSGST)
		}
		return nil
	})
}

// AddItem appends a new row built from the patch and returns the document.
func (s *Service) AddItem(id string, patch ItemPatch) (invoice.Document, error) {
	return s.Store.Update(id, func(doc *invoice.Document) error {
		item := invoice.LineItem{HSNCode: invoice.DefaultHSNCode}
		applyItemPatch(&item, patch)
		doc.Items = append(doc.Items, invoice.Recompute(item))
		countRecompute()
		return nil
	})
}

// UpdateItem patches the row at the 1-based index and recomputes it.
func (s *Service) UpdateItem(id string, index int, patch ItemPatch) (invoice.Document, error) {
	return s.Store.Update(id, func(doc *invoice.Document) error {
		if index < 1 || index > len(doc.Items) {
			return ErrRowOutOfRange
		}
		item := doc.Items[index-1]
		applyItemPatch(&item, patch)
		doc.Items[index-1] = invoice.Recompute(item)
		countRecompute()
		return nil
	})
}

// RemoveItem deletes the row at the 1-based index. Rows below it shift up and
// renumber implicitly since numbering is positional.
func (s *Service) RemoveItem(id string, index int) (invoice.Document, error) {
	return s.Store.Update(id, func(doc *invoice.Document) error {
		if index < 1 || index > len(doc.Items) {
			return ErrRowOutOfRange
		}
		doc.Items = append(doc.Items[:index-1], doc.Items[index:]...)
		return nil
	})
}

// Totals returns the live aggregate values for a session.
func (s *Service) Totals(id string) (invoice.Totals, error) {
	doc, err := s.Store.Get(id)
	if err != nil {
		return invoice.Totals{}, err
	}
	return invoice.Aggregate(doc), nil
}

// Preview resolves the session into a display-ready tree.
func (s *Service) Preview(id string) (render.Preview, error) {
	doc, err := s.Store.Get(id)
	if err != nil {
		if obs.PreviewRenderTotal != nil {
			obs.PreviewRenderTotal.WithLabelValues("not_found").Inc()
		}
		return render.Preview{}, err
	}
	if obs.PreviewRenderTotal != nil {
		obs.PreviewRenderTotal.WithLabelValues("ok").Inc()
	}
	return render.BuildPreview(doc, invoice.Aggregate(doc), s.Seller), nil
}

// ValidateForExport enforces the pre-submit rules. It returns a validation
// AppError listing every missing field, or nil when the document may be sent.
func (s *Service) ValidateForExport(doc invoice.Document) error {
	details := map[string]string{}
	form := exportForm{
		BuyerName:     strings.TrimSpace(doc.Buyer.Name),
		InvoiceNumber: strings.TrimSpace(doc.InvoiceNumber),
		InvoiceDate:   strings.TrimSpace(doc.InvoiceDate),
	}
	if err := s.Validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "BuyerName":
					details["buyerName"] = "buyer name is required"
				case "InvoiceNumber":
					details["invoiceNumber"] = "invoice number is required"
				case "InvoiceDate":
					details["invoiceDate"] = "invoice date is required"
				}
			}
		}
	}
	if len(doc.Items) == 0 {
		details["products"] = "at least one product is required"
	}
	if len(details) > 0 {
		return common.ValidationError("Please fill all required fields", details)
	}
	return nil
}

// ExportPayload converts a document into the generation service contract.
func (s *Service) ExportPayload(doc invoice.Document) docgen.Payload {
	products := make([]docgen.Product, 0, len(doc.Items))
	for _, item := range doc.Items {
		products = append(products, docgen.Product{
			Description: item.Description,
			Size:        item.SizeLabel,
			HSN:         item.HSNCode,
			Quantity:    item.Quantity.Round(2).InexactFloat64(),
			Rate:        item.UnitRate.Round(2).InexactFloat64(),
			Amount:      item.Amount.Round(2).InexactFloat64(),
		})
	}
	return docgen.Payload{
		BuyerName:     doc.Buyer.Name,
		BuyerAddress:  doc.Buyer.Address,
		BuyerCity:     doc.Buyer.City,
		BuyerPincode:  doc.Buyer.Pincode,
		BuyerGSTIN:    doc.Buyer.GSTIN,
		InvoiceNumber: doc.InvoiceNumber,
		InvoiceDate:   doc.InvoiceDate,
		OrderNumber:   doc.OrderNumber,
		OrderDate:     doc.OrderDate,
		CGSTRate:      doc.CGSTPercent.String(),
		SGSTRate:      doc.SGSTPercent.String(),
		Products:      products,
	}
}

// Generate validates the session and asks the configured generator for the
// rendered document. Validation failures never reach the generator.
func (s *Service) Generate(ctx context.Context, id string) (*docgen.Result, error) {
	doc, err := s.Store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateForExport(doc); err != nil {
		recordGenerate("rejected")
		return nil, err
	}
	start := time.Now()
	result, err := s.Generator.Generate(ctx, s.ExportPayload(doc))
	if obs.GenerateLatency != nil {
		obs.GenerateLatency.Observe(obs.DurationMillis(time.Since(start)))
	}
	if err != nil {
		recordGenerate("error")
		return nil, err
	}
	recordGenerate("ok")
	return result, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyItemPatch(item *invoice.LineItem, patch ItemPatch) {
	applyString(&item.Description, patch.Description)
	applyString(&item.SizeLabel, patch.SizeLabel)
	applyString(&item.HSNCode, patch.HSNCode)
	if patch.Quantity != nil {
		item.Quantity = common.DecimalOrZero(*patch.Quantity)
	}
	if patch.ListPrice != nil {
		item.ListPrice = common.DecimalOrZero(*patch.ListPrice)
	}
	if patch.DiscountPercent != nil {
		item.DiscountPercent = common.DecimalOrZero(*patch.DiscountPercent)
	}
	if patch.UnitRate != nil {
		item.UnitRate = common.DecimalOrZero(*patch.UnitRate)
	}
}

func countRecompute() {
	if obs.RowRecomputeTotal != nil {
		obs.RowRecomputeTotal.Inc()
	}
}

func recordGenerate(result string) {
	if obs.GenerateTotal != nil {
		obs.GenerateTotal.WithLabelValues(result).Inc()
	}
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
