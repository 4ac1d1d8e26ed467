// internal/pkg/invoice/service.go
package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/order"
)

// Service renders PDF invoices for orders
type Service struct {
	config *config.Config
}

// NewService creates a new invoice service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Data is the payload handed to the invoice template
type Data struct {
	InvoiceNumber string
	InvoiceDate   string
	StoreName     string
	Order         *order.Order
}

// Generate renders a PDF invoice for the given order
func (s *Service) Generate(o *order.Order) (*bytes.Buffer, error) {
	data := Data{
		InvoiceNumber: "INV-" + o.OrderNumber,
		InvoiceDate:   time.Now().Format("January 2, 2006"),
		StoreName:     s.config.App.Name,
		Order:         o,
	}

	htmlContent, err := s.renderHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) renderHTML(data Data) (string, error) {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	}).Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
  h1 { font-size: 22px; }
  .meta { margin-bottom: 24px; color: #555; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #ddd; }
  th { background: #f5f5f5; }
  .right { text-align: right; }
  .total { font-weight: bold; font-size: 16px; }
  .address { margin-top: 24px; }
</style>
</head>
<body>
  <h1>{{.StoreName}} Invoice {{.InvoiceNumber}}</h1>
  <div class="meta">
    <div>Date: {{.InvoiceDate}}</div>
    <div>Order: {{.Order.OrderNumber}}</div>
    <div>Payment status: {{.Order.PaymentStatus}}</div>
  </div>

  <table>
    <tr><th>Specimen</th><th class="right">Qty</th><th class="right">Unit price</th><th class="right">Line total</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Name}}</td>
      <td class="right">{{.Quantity}}</td>
      <td class="right">{{money .Price}}</td>
      <td class="right">{{money .LineTotal}}</td>
    </tr>
    {{end}}
    <tr><td colspan="3" class="right total">Total</td><td class="right total">{{money .Order.TotalAmount}}</td></tr>
  </table>

  <div class="address">
    <strong>Ship to</strong><br>
    {{.Order.Address.Street}}<br>
    {{.Order.Address.City}}, {{.Order.Address.State}} {{.Order.Address.Zip}}<br>
    {{.Order.Address.Country}}
  </div>
</body>
</html>`
