// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
	now    func() time.Time
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		now:    time.Now,
	}
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	Order         *order.Order
	Company       CompanyInfo
}

// CompanyInfo represents the seller printed on the invoice
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

// GenerateInvoice renders the order's invoice as a PDF
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderInvoiceHTML(o)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Title.Set("Invoice " + o.Code())

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	page.Encoding.Set("utf-8")
	page.FooterRight.Set("[page]/[topage]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// RenderInvoiceHTML renders the invoice page that GenerateInvoice converts
func (s *Service) RenderInvoiceHTML(o *order.Order) (string, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", o.Reference()),
		InvoiceDate:   s.now().Format("02/01/2006"),
		Order:         o,
		Company: CompanyInfo{
			Name:    s.config.Invoice.CompanyName,
			Address: s.config.Invoice.CompanyAddress,
			Phone:   s.config.Invoice.CompanyPhone,
			Email:   s.config.Invoice.CompanyEmail,
			Website: s.config.Invoice.CompanyWebsite,
		},
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// FormatVND formats an amount as Vietnamese dong, e.g. 13.000.000 ₫
func FormatVND(amount decimal.Decimal) string {
	digits := amount.Abs().StringFixed(0)

	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"vnd": FormatVND,
	"date": func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	},
}).Parse(invoiceHTML))

const invoiceHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body {
            font-family: "DejaVu Sans", Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .company-info, .invoice-info {
            flex: 1;
        }
        .invoice-info {
            text-align: right;
        }
        .invoice-title {
            font-size: 28px;
            font-weight: bold;
            color: #111827;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 10px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
        }
        .items-table .num {
            text-align: right;
            white-space: nowrap;
        }
        .totals {
            float: right;
            width: 320px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
            text-align: right;
        }
        .total-row td {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>Điện thoại: {{.Company.Phone}}</p>
            <p>Email: {{.Company.Email}}</p>
            <p>{{.Company.Website}}</p>
        </div>
        <div class="invoice-info">
            <div class="invoice-title">HÓA ĐƠN</div>
            <p><strong>Số hóa đơn:</strong> {{.InvoiceNumber}}</p>
            <p><strong>Ngày lập:</strong> {{.InvoiceDate}}</p>
            <p><strong>Mã đơn hàng:</strong> {{.Order.Code}}</p>
            <p><strong>Ngày đặt:</strong> {{date .Order.CreatedAt}}</p>
            <p><strong>Trạng thái:</strong> {{.Order.Status.Label}}</p>
            <p><strong>Thanh toán:</strong> {{.Order.PaymentMethod}} ({{.Order.PaymentState.Label}})</p>
        </div>
    </div>

    <div class="section-title">Giao đến:</div>
    <p><strong>{{.Order.FullName}}</strong></p>
    <p>{{.Order.Address}}, {{.Order.Ward}}, {{.Order.Province}}</p>
    <p>Điện thoại: {{.Order.PhoneNumber}}</p>

    <table class="items-table">
        <thead>
            <tr>
                <th>Sản phẩm</th>
                <th>Thương hiệu</th>
                <th class="num">SL</th>
                <th class="num">Đơn giá</th>
                <th class="num">Thành tiền</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td><strong>{{.Product.Name}}</strong></td>
                <td>{{.Product.Brand}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{vnd .Price}}</td>
                <td class="num">{{vnd .Subtotal}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td>Tạm tính:</td>
                <td>{{vnd .Order.Subtotal}}</td>
            </tr>
            <tr>
                <td>Phí vận chuyển:</td>
                <td>{{vnd .Order.ShippingFee}}</td>
            </tr>
            <tr class="total-row">
                <td>Tổng cộng:</td>
                <td>{{vnd .Order.TotalAmount}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Cảm ơn quý khách đã mua sắm tại {{.Company.Name}}!</p>
        <p>Mọi thắc mắc về hóa đơn xin liên hệ {{.Company.Email}} hoặc {{.Company.Phone}}</p>
    </div>
</body>
</html>
`
