package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

// SheetName — имя листа с сообщениями в итоговой книге.
const SheetName = "Messages"

// ColumnHeaders — заголовки колонок таблицы в фиксированном порядке.
// AttachmentPaths колонкой не является: пути нужны только этапу миниатюр.
var ColumnHeaders = []string{
	"GroupType",
	"GroupId",
	"SendersName",
	"SendersEmail",
	"MessageTimestamp",
	"MessageContent",
	"SpaceName",
	"AttachmentNames",
}

// ExcelExporter реализует интерфейс Exporter для записи записей в xlsx-файл.
type ExcelExporter struct{}

// NewExcelExporter создает новый экземпляр ExcelExporter.
func NewExcelExporter() ports.Exporter {
	return &ExcelExporter{}
}

// Export записывает записи в xlsx-файл: одна строка на запись, порядок
// строк совпадает с порядком записей. Существующий файл перезаписывается.
func (e *ExcelExporter) Export(records []domain.Record, outputPath string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close excel file", slog.String("error", err.Error()))
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	// Заголовки
	for i, h := range ColumnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	// Данные
	for i, rec := range records {
		row := i + 2
		values := []any{
			string(rec.GroupType),
			rec.GroupID,
			rec.SenderName,
			rec.SenderEmail,
			rec.MessageTimestamp,
			rec.MessageContent,
			rec.SpaceName,
			rec.AttachmentNames,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save excel file %s: %w", outputPath, err)
	}
	return nil
}
