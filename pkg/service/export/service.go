// Package export renders filtered receipt items as an XLSX workbook: one row
// per item with the receipt fields repeated, ready for a spreadsheet.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

// SheetName is the single sheet the export writes.
const SheetName = "Items"

var headers = []string{
	"Date",
	"Store",
	"Currency",
	"Item",
	"Brand",
	"Category",
	"Quantity",
	"Unit",
	"Price/Unit",
	"Total Price",
	"Normalized Price",
	"Normalized Unit",
	"Notes",
}

// Service produces XLSX bytes from the denormalized item export query.
type Service struct {
	repo   repository.AnalyticsRepository
	logger *slog.Logger
}

// New creates a new Service.
func New(repo repository.AnalyticsRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ItemsXLSX returns an XLSX workbook (as bytes) of all items matching the
// filter, newest receipts first.
func (s *Service) ItemsXLSX(ctx context.Context, filter dto.ReceiptFilter) ([]byte, error) {
	start := time.Now()

	rows, err := s.repo.ItemsExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query items for export: %w", err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for rowIdx, row := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx+2)
			_ = f.SetCellValue(SheetName, cell, v)
		}
		write(1, row.Date.Format("2006-01-02"))
		write(2, row.Store)
		write(3, row.Currency)
		write(4, row.ItemName)
		write(5, deref(row.Brand))
		write(6, deref(row.Category))
		write(7, row.Quantity.String())
		write(8, row.Unit)
		write(9, formatPrice(row.PricePerUnit))
		write(10, formatPrice(row.TotalPrice))
		write(11, formatPrice(row.NormalizedPrice))
		write(12, row.NormalizedUnit)
		write(13, deref(row.Notes))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("items exported",
		"rows", len(rows),
		"bytes", buf.Len(),
		"took", time.Since(start),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatPrice renders with exactly two decimal places, as stored.
func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}
