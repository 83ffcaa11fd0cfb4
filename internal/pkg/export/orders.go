// internal/pkg/export/orders.go
package export

import (
	"fmt"
	"io"

	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/tealeg/xlsx"
)

// ContentType is the MIME type of the workbooks written here
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const moneyFormat = "#,##0"

var orderHeaders = []string{
	"Order", "Date", "Customer", "Phone", "Province", "Ward", "Address",
	"Payment Method", "Status", "Payment", "Items", "Shipping Fee", "Total",
}

var itemHeaders = []string{"Order", "Product", "Brand", "Quantity", "Unit Price", "Subtotal"}

// Orders writes orders as an .xlsx workbook with an order sheet and a line item sheet
func Orders(w io.Writer, orders []order.Order) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create orders sheet: %w", err)
	}
	addHeader(sheet, orderHeaders)

	for i := range orders {
		o := &orders[i]
		row := sheet.AddRow()
		row.AddCell().SetValue(o.Code())
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(o.FullName)
		row.AddCell().SetValue(o.PhoneNumber)
		row.AddCell().SetValue(o.Province)
		row.AddCell().SetValue(o.Ward)
		row.AddCell().SetValue(o.Address)
		row.AddCell().SetValue(string(o.PaymentMethod))
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(string(o.PaymentState()))
		row.AddCell().SetValue(o.ItemCount())
		row.AddCell().SetFloatWithFormat(o.ShippingFee.InexactFloat64(), moneyFormat)
		row.AddCell().SetFloatWithFormat(o.TotalAmount.InexactFloat64(), moneyFormat)
	}

	items, err := file.AddSheet("Items")
	if err != nil {
		return fmt.Errorf("failed to create items sheet: %w", err)
	}
	addHeader(items, itemHeaders)

	for i := range orders {
		o := &orders[i]
		for j := range o.Items {
			item := &o.Items[j]
			row := items.AddRow()
			row.AddCell().SetValue(o.Code())
			row.AddCell().SetValue(item.Product.Name)
			row.AddCell().SetValue(item.Product.Brand)
			row.AddCell().SetValue(item.Quantity)
			row.AddCell().SetFloatWithFormat(item.Price.InexactFloat64(), moneyFormat)
			row.AddCell().SetFloatWithFormat(item.Subtotal().InexactFloat64(), moneyFormat)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetValue(h)
		style := xlsx.NewStyle()
		style.Font.Bold = true
		cell.SetStyle(style)
	}
}
