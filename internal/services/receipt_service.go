package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"restaurant_pos_backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptService renders the printable bill for a finalized order.
type ReceiptService interface {
	GenerateReceipt(orderID int64, lines []models.OrderLine, bill models.Bill) (string, error)
	GenerateFromOrder(order *models.Order) (string, error)
	ReceiptPath(orderID int64) string
}

type receiptService struct {
	outputDir string
	storeName string
}

// NewReceiptService creates a ReceiptService writing PDFs under outputDir.
func NewReceiptService(outputDir, storeName string) ReceiptService {
	return &receiptService{outputDir: outputDir, storeName: storeName}
}

// ReceiptPath returns where the receipt for the given order is written.
func (s *receiptService) ReceiptPath(orderID int64) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("order_%d.pdf", orderID))
}

// GenerateReceipt writes a single-page PDF: header, one row per order line,
// then the four summary amounts. Amounts are shown the way they were billed;
// the document is derived output and never read back by the store.
func (s *receiptService) GenerateReceipt(orderID int64, lines []models.OrderLine, bill models.Bill) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create receipts directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, s.storeName+" - Final Bill", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Date: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Order #%d", orderID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		lineTotal := line.Price * float64(line.Quantity)
		pdf.CellFormat(90, 7, line.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("Rs. %.2f", lineTotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Subtotal: Rs. %.2f", bill.Subtotal), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("GST: Rs. %.2f", bill.GST), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Discount: Rs. %.2f", bill.Discount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("TOTAL: Rs. %.2f", bill.Total), "", 1, "L", false, 0, "")

	path := s.ReceiptPath(orderID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("could not write receipt PDF %s: %w", path, err)
	}
	return path, nil
}

// GenerateFromOrder re-renders a receipt from a stored order and its item
// rows. Line prices come from the current menu join, since item rows only
// persist quantities.
func (s *receiptService) GenerateFromOrder(order *models.Order) (string, error) {
	lines := make([]models.OrderLine, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		lines = append(lines, models.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       item.ItemName,
			Price:      item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}
	bill := models.Bill{
		Subtotal: order.Subtotal,
		GST:      order.GSTAmount,
		Discount: order.Discount,
		Total:    order.TotalAmount,
	}
	return s.GenerateReceipt(order.ID, lines, bill)
}
