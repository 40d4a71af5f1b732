package reports

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Govind-619/Storefront/models"
	"github.com/jung-kurt/gofpdf"
)

// StoreInfo is printed in the invoice header
type StoreInfo struct {
	Name    string
	Address string
	Contact string
}

// DefaultStoreInfo is used when no store details are configured
var DefaultStoreInfo = StoreInfo{
	Name:    "Storefront",
	Address: "123 Main St, City, Country",
	Contact: "Email: support@storefront.example",
}

// InvoicePDF renders an order as a one-page A4 invoice
func InvoicePDF(order *models.Order, store StoreInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, store.Name)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, store.Address)
	pdf.Ln(8)
	pdf.Cell(100, 8, store.Contact)
	pdf.Ln(12)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 8, "Order ID: "+order.ID)
	pdf.Ln(7)
	pdf.Cell(100, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(7)
	method := order.PaymentInfo.Method
	if method == "" {
		method = "-"
	}
	pdf.Cell(70, 8, "Payment: "+method+" ("+string(order.PaymentStatus)+")")
	pdf.Cell(60, 8, "Status: "+string(order.OrderStatus))
	pdf.Ln(10)

	addr := order.ShippingAddress
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Shipping Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, addr.FullName)
	pdf.Ln(6)
	pdf.Cell(100, 8, addr.Address)
	pdf.Ln(6)
	pdf.Cell(100, 8, fmt.Sprintf("%s, %s - %s", addr.City, addr.State, addr.Pincode))
	pdf.Ln(6)
	if addr.Phone != "" {
		pdf.Cell(100, 8, "Phone: "+addr.Phone)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		lineTotal := item.UnitPrice.Mul(decimalFromInt(item.Quantity))
		pdf.CellFormat(70, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, item.Size, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, lineTotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Order Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, order.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	if order.ReturnRequest.Active() {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(100, 8, fmt.Sprintf("Return: %s, refund %s (%s)",
			order.ReturnRequest.Status,
			order.ReturnRequest.RefundAmount.StringFixed(2),
			order.ReturnRequest.RefundStatus))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice for order %s: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
