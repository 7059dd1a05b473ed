package render

import (
	"fmt"
	"html/template"
	"io"
)

// Renderer turns a resolved preview into output markup.
type Renderer interface {
	Render(w io.Writer, p Preview) error
}

// HTMLRenderer renders the preview as a self-contained HTML fragment.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the preview template. It panics on a malformed
// template since that is a programming error, not runtime input.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("preview").Parse(previewTemplate)),
	}
}

// Render writes the preview markup to w.
func (r *HTMLRenderer) Render(w io.Writer, p Preview) error {
	if err := r.tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}

const previewTemplate = `<div class="invoice-preview">
  <header class="invoice-head">
    <h2>{{.Title}}</h2>
    <div class="copy-label">{{.Subtitle}}</div>
  </header>

  <section class="parties">
    <div class="seller">
      <div class="name">{{.Seller.Name}}</div>
      <div>{{.Seller.AddressLine1}}</div>
      <div>{{.Seller.AddressLine2}}</div>
      <div>{{.Seller.AddressLine3}}</div>
      <div>GSTIN/UIN: {{.Seller.GSTIN}}</div>
      <div>State Name : {{.Seller.State}}, Code : {{.Seller.StateCode}}</div>
    </div>
    <div class="meta">
      <table>
        <tr><td>Invoice No.</td><td>: {{.InvoiceNumber}}</td></tr>
        <tr><td>Dated</td><td>: {{.InvoiceDate}}</td></tr>
        <tr><td>Delivery Note</td><td></td></tr>
        <tr><td>Mode/Terms of Payment</td><td></td></tr>
        <tr><td>Buyer's Order No.</td><td>: {{.OrderNumber}}</td></tr>
        <tr><td>Dated</td><td>: {{.OrderDate}}</td></tr>
      </table>
    </div>
  </section>

  <section class="buyer">
    <div class="label">Buyer (Bill to)</div>
    <div class="name">{{.BuyerName}}</div>
    <div>{{.BuyerAddress}}</div>
    <div>{{.BuyerCity}}{{if .BuyerPincode}}-{{.BuyerPincode}}{{end}}</div>
    <div>GSTIN/UIN: {{.BuyerGSTIN}}</div>
    <div>State Name: {{.BuyerState}}</div>
  </section>

  <table class="products">
    <thead>
      <tr>
        <th>Sr.</th>
        <th>Description of Goods</th>
        <th>HSN/SAC</th>
        <th>Quantity</th>
        <th>Rate</th>
        <th>per</th>
        <th>Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        <td>{{.Number}}</td>
        <td>{{.Description}}{{if .SizeLabel}}<br><small>{{.SizeLabel}}</small>{{end}}</td>
        <td>{{.HSNCode}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="num">{{.Rate}}</td>
        <td>{{.Unit}}</td>
        <td class="num">{{.Amount}}</td>
      </tr>
      {{end}}<tr class="total">
        <td colspan="3">Total</td>
        <td class="num">{{.TotalQuantity}}</td>
        <td></td>
        <td></td>
        <td class="num">{{.TotalAmount}}</td>
      </tr>
    </tbody>
  </table>

  <section class="words">
    <div>Amount Chargeable (in words)</div>
    <div class="value">{{.AmountInWords}}</div>
  </section>

  <section class="taxes">
    <table>
      {{range .TaxRows}}<tr>
        <td class="label">{{.Label}}</td>
        <td>Rate</td>
        <td>{{.RatePercent}}</td>
        <td>Amount</td>
        <td class="num">{{.Amount}}</td>
      </tr>
      {{end}}
    </table>
    <div>Tax Amount (in words)</div>
    <div class="value">{{.TaxInWords}}</div>
  </section>

  <section class="footer-blocks">
    <div class="declaration">
      <div class="label">Declaration</div>
      <div>{{.Declaration}}</div>
    </div>
    <div class="bank">
      <div class="label">Company's Bank Details</div>
      <div>A/c Holder's Name : {{.Seller.Name}}</div>
      <div>Bank Name : {{.Seller.BankName}}</div>
      <div>A/c No. : {{.Seller.BankAccount}}</div>
      <div>Branch &amp; IFS Code : {{.Seller.BankIFSC}}</div>
    </div>
  </section>

  <section class="signatures">
    <div>Customer's Seal and Signature</div>
    <div>{{.SignatureBy}}</div>
    <div class="authorised">Authorised Signatory</div>
  </section>

  <footer>{{.Footnote}}</footer>
</div>
`
