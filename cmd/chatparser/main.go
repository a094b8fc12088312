package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"google-chat-parser/internal/adapters/embedder"
	"google-chat-parser/internal/adapters/exporter"
	"google-chat-parser/internal/adapters/parser"
	"google-chat-parser/internal/adapters/source"
	"google-chat-parser/internal/adapters/thumbnail"
	"google-chat-parser/internal/cache"
	"google-chat-parser/internal/core/services"
	"google-chat-parser/internal/pkg/config"
	"google-chat-parser/internal/pkg/term"
	"google-chat-parser/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}

// run инкапсулирует всю логику инициализации и запуска приложения.
func run() error {
	// 1. Загрузка и валидация конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		// Логгер еще не инициализирован, выводим в stderr
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Инициализация логгера
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// 3. Валидация конфигурации (после инициализации логгера)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Запрос пути к архиву
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	defaultPath := filepath.Join(cwd, cfg.Archive.DefaultFolder)

	archivePath := term.NewTerminal().PromptPath("Enter path to Takeout folder", defaultPath)
	archivePath, err = filepath.Abs(archivePath)
	if err != nil {
		return fmt.Errorf("failed to resolve archive path: %w", err)
	}

	info, err := os.Stat(archivePath)
	if err != nil || !info.IsDir() {
		fmt.Printf("Error: The path '%s' does not exist or is not a directory.\n", archivePath)
		return fmt.Errorf("invalid archive path: %s", archivePath)
	}

	// 5. Инициализация зависимостей
	scanCache := cache.NewScanCache()
	jsonParser := parser.NewJsonParser()
	locator := services.NewAttachmentLocator(scanCache)
	flattener := services.NewFlattenService(locator)
	archiveSource := source.NewTakeoutSource(jsonParser)
	processor := usecase.NewProcessArchiveUseCase(archiveSource, jsonParser, flattener)

	// 6. Извлечение записей и запись таблицы
	records, err := processor.ProcessArchive(archivePath)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(archivePath, cfg.Archive.OutputFile)
	if err := exporter.NewExcelExporter().Export(records, outputPath); err != nil {
		return fmt.Errorf("не удалось записать таблицу: %w", err)
	}
	fmt.Printf("Data saved to %s\n", outputPath)

	// 7. Встраивание миниатюр. Ошибка этого этапа не фатальна:
	// таблица без миниатюр уже записана.
	thumbnailer := thumbnail.NewImagingThumbnailer(cfg.Thumbnail.MaxWidth, cfg.Thumbnail.MaxHeight)
	imageEmbedder := embedder.NewExcelImageEmbedder(thumbnailer, cfg.Thumbnail.RowHeight, cfg.Thumbnail.ColWidth)

	report, err := imageEmbedder.Embed(records, outputPath)
	if err != nil {
		fmt.Printf("Warning: failed to embed images into Excel: %v\n", err)
		return nil
	}

	if report.MaxImages == 0 {
		fmt.Println("No image attachments found to embed.")
		return nil
	}

	exporter.NewReportConsole().Print(report)
	fmt.Printf("Images embedded (where available) into %s\n", outputPath)
	return nil
}
