package embedder

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

// messageContentHeader — колонка, после которой вставляются миниатюры.
const messageContentHeader = "MessageContent"

// ExcelImageEmbedder реализует интерфейс Embedder: дописывает миниатюры
// вложений в уже записанную книгу xlsx.
type ExcelImageEmbedder struct {
	// thumbnailer может быть nil — тогда встраиваются исходные файлы.
	thumbnailer ports.Thumbnailer
	rowHeight   float64
	colWidth    float64
}

// NewExcelImageEmbedder создает новый экземпляр ExcelImageEmbedder.
func NewExcelImageEmbedder(thumbnailer ports.Thumbnailer, rowHeight, colWidth float64) ports.Embedder {
	return &ExcelImageEmbedder{
		thumbnailer: thumbnailer,
		rowHeight:   rowHeight,
		colWidth:    colWidth,
	}
}

// Embed открывает книгу, вставляет по одной колонке на каждый слот вложения
// сразу после колонки MessageContent (или добавляет в конец, если заголовок
// не найден) и встраивает миниатюры. Ошибка одного изображения никогда не
// прерывает обработку остальных; итог каждого вложения попадает в отчет.
func (e *ExcelImageEmbedder) Embed(records []domain.Record, filePath string) (*domain.EmbedReport, error) {
	report := &domain.EmbedReport{MaxImages: maxAttachments(records)}
	if report.MaxImages == 0 {
		// Нечего встраивать, книга остается без изменений
		return report, nil
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file %s: %w", filePath, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close excel file", slog.String("error", err.Error()))
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	firstImageCol, err := e.insertImageColumns(f, sheet, report.MaxImages)
	if err != nil {
		return nil, err
	}

	var tempFiles []string
	for i, rec := range records {
		row := i + 2 // поправка на строку заголовков
		for j, path := range rec.AttachmentPaths {
			if j >= report.MaxImages {
				break
			}
			status := e.embedOne(f, sheet, row, firstImageCol+j, path, &tempFiles)
			report.Add(domain.EmbedResult{Row: row, Path: path, Status: status})
		}
	}

	if err := f.Save(); err != nil {
		return nil, fmt.Errorf("failed to save excel file %s: %w", filePath, err)
	}

	// Удаление временных миниатюр после сохранения, ошибки игнорируются
	for _, tmp := range tempFiles {
		_ = os.Remove(tmp)
	}

	return report, nil
}

// insertImageColumns вставляет колонки для миниатюр и проставляет их
// заголовки. Возвращает номер первой колонки миниатюр (с единицы).
func (e *ExcelImageEmbedder) insertImageColumns(f *excelize.File, sheet string, count int) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}

	messageCol := 0
	if len(rows) > 0 {
		for i, h := range rows[0] {
			if h == messageContentHeader {
				messageCol = i + 1
				break
			}
		}
	}

	var firstImageCol int
	if messageCol > 0 {
		firstImageCol = messageCol + 1
		colName, err := excelize.ColumnNumberToName(firstImageCol)
		if err != nil {
			return 0, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.InsertCols(sheet, colName, count); err != nil {
			return 0, fmt.Errorf("failed to insert columns: %w", err)
		}
	} else {
		// Колонка MessageContent не найдена, добавляем в конец
		headerLen := 0
		if len(rows) > 0 {
			headerLen = len(rows[0])
		}
		firstImageCol = headerLen + 1
	}

	for i := 0; i < count; i++ {
		cell, _ := excelize.CoordinatesToCellName(firstImageCol+i, 1)
		if err := f.SetCellValue(sheet, cell, fmt.Sprintf("AttachmentImage%d", i+1)); err != nil {
			return 0, fmt.Errorf("failed to set image header cell: %w", err)
		}
	}

	return firstImageCol, nil
}

// embedOne встраивает одно вложение в одну ячейку и возвращает статус.
func (e *ExcelImageEmbedder) embedOne(f *excelize.File, sheet string, row, col int, path string, tempFiles *[]string) domain.EmbedStatus {
	if _, err := os.Stat(path); err != nil {
		return domain.EmbedStatusMissing
	}

	imagePath := path
	status := domain.EmbedStatusOriginal
	if e.thumbnailer != nil {
		if tmp, err := e.thumbnailer.Thumbnail(path); err == nil {
			imagePath = tmp
			status = domain.EmbedStatusEmbedded
			*tempFiles = append(*tempFiles, tmp)
		} else {
			slog.Warn("Не удалось уменьшить изображение, встраиваем оригинал",
				slog.String("path", path), slog.String("error", err.Error()))
		}
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return domain.EmbedStatusUnreadable
	}
	if err := f.AddPicture(sheet, cell, imagePath, nil); err != nil {
		slog.Warn("Не удалось встроить изображение",
			slog.String("path", imagePath), slog.String("error", err.Error()))
		return domain.EmbedStatusUnreadable
	}

	// Увеличиваем строку и колонку, чтобы миниатюра была видна
	if err := f.SetRowHeight(sheet, row, e.rowHeight); err != nil {
		slog.Warn("failed to set row height", slog.Int("row", row), slog.String("error", err.Error()))
	}
	if colName, err := excelize.ColumnNumberToName(col); err == nil {
		if err := f.SetColWidth(sheet, colName, colName, e.colWidth); err != nil {
			slog.Warn("failed to set column width", slog.String("col", colName), slog.String("error", err.Error()))
		}
	}

	return status
}

// maxAttachments возвращает максимальное число вложений на одну запись.
func maxAttachments(records []domain.Record) int {
	count := 0
	for _, rec := range records {
		if len(rec.AttachmentPaths) > count {
			count = len(rec.AttachmentPaths)
		}
	}
	return count
}
