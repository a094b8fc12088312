package exporter

import (
	"fmt"

	"google-chat-parser/internal/domain"
)

// ReportConsole выводит отчет этапа встраивания миниатюр в консоль.
type ReportConsole struct{}

// NewReportConsole создает новый экземпляр ReportConsole.
func NewReportConsole() *ReportConsole {
	return &ReportConsole{}
}

// Print выводит сводку отчета.
func (c *ReportConsole) Print(report *domain.EmbedReport) {
	fmt.Println("--- Embedding Report ---")
	if len(report.Results) == 0 {
		fmt.Println("No attachments processed.")
		return
	}
	fmt.Printf("Embedded: %d (thumbnails: %d, originals: %d)\n",
		report.EmbeddedCount(),
		report.Count(domain.EmbedStatusEmbedded),
		report.Count(domain.EmbedStatusOriginal),
	)
	if n := report.Count(domain.EmbedStatusMissing); n > 0 {
		fmt.Printf("Skipped, file missing: %d\n", n)
	}
	if n := report.Count(domain.EmbedStatusUnreadable); n > 0 {
		fmt.Printf("Skipped, unreadable: %d\n", n)
	}
}
