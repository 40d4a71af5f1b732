package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/Govind-619/Storefront/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// OrderExportHeaders are the column titles of the order export sheet
var OrderExportHeaders = []string{
	"Order ID", "Owner", "Date", "Items", "Total", "Payment Method",
	"Payment Status", "Order Status", "Return Status", "Refund Amount", "Refund Status",
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// OrdersWorkbook builds a workbook with one row per order and a summary
func OrdersWorkbook(orders []models.Order, generatedAt time.Time) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, fmt.Errorf("create orders sheet: %w", err)
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("Order Report - generated " + generatedAt.Format("2006-01-02 15:04"))
	sheet.AddRow()

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range OrderExportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	revenue := decimal.Zero
	refunds := decimal.Zero
	cancelled := 0
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.ID)
		row.AddCell().SetString(order.OwnerID)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(len(order.Items))
		row.AddCell().SetString(order.TotalAmount.StringFixed(2))
		row.AddCell().SetString(order.PaymentInfo.Method)
		row.AddCell().SetString(string(order.PaymentStatus))
		row.AddCell().SetString(string(order.OrderStatus))
		row.AddCell().SetString(string(order.ReturnRequest.Status))
		row.AddCell().SetString(order.ReturnRequest.RefundAmount.StringFixed(2))
		row.AddCell().SetString(string(order.ReturnRequest.RefundStatus))

		if order.OrderStatus == models.OrderStatusCancelled {
			cancelled++
			continue
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			revenue = revenue.Add(order.TotalAmount)
		}
		if order.ReturnRequest.Status == models.ReturnStatusApproved &&
			order.ReturnRequest.RefundStatus == models.RefundStatusProcessed {
			refunds = refunds.Add(order.ReturnRequest.RefundAmount)
		}
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	summaryRow.Cells[0].SetStyle(bold)

	summary := [][2]string{
		{"Total Orders", fmt.Sprintf("%d", len(orders))},
		{"Cancelled Orders", fmt.Sprintf("%d", cancelled)},
		{"Paid Revenue", revenue.StringFixed(2)},
		{"Processed Refunds", refunds.StringFixed(2)},
		{"Net Revenue", revenue.Sub(refunds).StringFixed(2)},
	}
	for _, data := range summary {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}
	return file, nil
}

// WriteOrdersXLSX writes the order export workbook to w
func WriteOrdersXLSX(w io.Writer, orders []models.Order, generatedAt time.Time) error {
	file, err := OrdersWorkbook(orders, generatedAt)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("write orders workbook: %w", err)
	}
	return nil
}
