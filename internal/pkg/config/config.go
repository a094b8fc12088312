// Package config предоставляет управление конфигурацией приложения
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Archive содержит конфигурацию расположения архива и вывода
type Archive struct {
	DefaultFolder string `json:"default_folder" yaml:"default_folder"`
	OutputFile    string `json:"output_file" yaml:"output_file"`
}

// Thumbnail содержит конфигурацию миниатюр вложений
type Thumbnail struct {
	MaxWidth  int     `json:"max_width" yaml:"max_width"`
	MaxHeight int     `json:"max_height" yaml:"max_height"`
	RowHeight float64 `json:"row_height" yaml:"row_height"`
	ColWidth  float64 `json:"col_width" yaml:"col_width"`
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// Config содержит конфигурацию приложения
type Config struct {
	Archive   Archive   `json:"archive" yaml:"archive"`
	Thumbnail Thumbnail `json:"thumbnail" yaml:"thumbnail"`
	Logging   Logging   `json:"logging" yaml:"logging"`
}

// LoadConfig загружает конфигурацию приложения из переменных окружения, .env файла или config.yml
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла, если он существует
	if err := godotenv.Load(); err != nil {
		// Если .env файла не существует, это нормально, мы будем полагаться на переменные окружения или config.yml
	}

	// Попытка загрузки из config.yml сначала
	cfg, err := loadFromYAML("config.yml")
	if err != nil {
		// Если загрузка YAML не удалась, используем переменные окружения
		cfg, err = loadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// loadFromYAML загружает конфигурацию из YAML-файла
func loadFromYAML(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}

	return &cfg, nil
}

// loadFromEnv загружает конфигурацию из переменных окружения
func loadFromEnv() (*Config, error) {
	maxWidthStr := getEnv("THUMBNAIL_MAX_WIDTH", strconv.Itoa(DefaultThumbnailMaxWidth))
	maxHeightStr := getEnv("THUMBNAIL_MAX_HEIGHT", strconv.Itoa(DefaultThumbnailMaxHeight))

	maxWidth, err := strconv.Atoi(maxWidthStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый THUMBNAIL_MAX_WIDTH: %w", err)
	}

	maxHeight, err := strconv.Atoi(maxHeightStr)
	if err != nil {
		return nil, fmt.Errorf("недопустимый THUMBNAIL_MAX_HEIGHT: %w", err)
	}

	return &Config{
		Archive: Archive{
			DefaultFolder: getEnv("ARCHIVE_DEFAULT_FOLDER", DefaultArchiveFolder),
			OutputFile:    getEnv("ARCHIVE_OUTPUT_FILE", DefaultOutputFile),
		},
		Thumbnail: Thumbnail{
			MaxWidth:  maxWidth,
			MaxHeight: maxHeight,
		},
		Logging: Logging{
			Level: getEnv("LOG_LEVEL", DefaultLogLevel),
		},
	}, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Archive.DefaultFolder == "" {
		c.Archive.DefaultFolder = DefaultArchiveFolder
	}
	if c.Archive.OutputFile == "" {
		c.Archive.OutputFile = DefaultOutputFile
	}
	if c.Thumbnail.MaxWidth == 0 {
		c.Thumbnail.MaxWidth = DefaultThumbnailMaxWidth
	}
	if c.Thumbnail.MaxHeight == 0 {
		c.Thumbnail.MaxHeight = DefaultThumbnailMaxHeight
	}
	if c.Thumbnail.RowHeight == 0 {
		c.Thumbnail.RowHeight = DefaultThumbnailRowHeight
	}
	if c.Thumbnail.ColWidth == 0 {
		c.Thumbnail.ColWidth = DefaultThumbnailColWidth
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	if c.Archive.DefaultFolder == "" {
		return fmt.Errorf("archive.default_folder не может быть пустым")
	}

	if c.Archive.OutputFile == "" {
		return fmt.Errorf("archive.output_file не может быть пустым")
	}

	if c.Thumbnail.MaxWidth <= 0 {
		return fmt.Errorf("thumbnail.max_width должно быть положительным")
	}

	if c.Thumbnail.MaxHeight <= 0 {
		return fmt.Errorf("thumbnail.max_height должно быть положительным")
	}

	if c.Thumbnail.RowHeight <= 0 {
		return fmt.Errorf("thumbnail.row_height должно быть положительным")
	}

	if c.Thumbnail.ColWidth <= 0 {
		return fmt.Errorf("thumbnail.col_width должно быть положительным")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// all good
	default:
		return fmt.Errorf("logging.level должен быть одним из: debug, info, warn, error")
	}

	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
