package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	t.Run("Загрузка корректного YAML", func(t *testing.T) {
		content := `
archive:
  default_folder: MyTakeout
  output_file: Chats.xlsx
thumbnail:
  max_width: 200
  max_height: 100
  row_height: 90
  col_width: 15
logging:
  level: debug
`
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := loadFromYAML(path)
		require.NoError(t, err)

		assert.Equal(t, "MyTakeout", cfg.Archive.DefaultFolder)
		assert.Equal(t, "Chats.xlsx", cfg.Archive.OutputFile)
		assert.Equal(t, 200, cfg.Thumbnail.MaxWidth)
		assert.Equal(t, 100, cfg.Thumbnail.MaxHeight)
		assert.Equal(t, 90.0, cfg.Thumbnail.RowHeight)
		assert.Equal(t, 15.0, cfg.Thumbnail.ColWidth)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Отсутствующий файл дает ошибку", func(t *testing.T) {
		_, err := loadFromYAML(filepath.Join(t.TempDir(), "none.yml"))
		assert.Error(t, err)
	})

	t.Run("Некорректный YAML дает ошибку", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("archive: ["), 0o644))

		_, err := loadFromYAML(path)
		assert.Error(t, err)
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("Значения по умолчанию без переменных окружения", func(t *testing.T) {
		cfg, err := loadFromEnv()
		require.NoError(t, err)

		assert.Equal(t, DefaultArchiveFolder, cfg.Archive.DefaultFolder)
		assert.Equal(t, DefaultOutputFile, cfg.Archive.OutputFile)
		assert.Equal(t, DefaultThumbnailMaxWidth, cfg.Thumbnail.MaxWidth)
		assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	})

	t.Run("Переменные окружения перекрывают значения по умолчанию", func(t *testing.T) {
		t.Setenv("ARCHIVE_DEFAULT_FOLDER", "Export")
		t.Setenv("THUMBNAIL_MAX_WIDTH", "320")
		t.Setenv("LOG_LEVEL", "warn")

		cfg, err := loadFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "Export", cfg.Archive.DefaultFolder)
		assert.Equal(t, 320, cfg.Thumbnail.MaxWidth)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("Нечисловая ширина миниатюры дает ошибку", func(t *testing.T) {
		t.Setenv("THUMBNAIL_MAX_WIDTH", "wide")

		_, err := loadFromEnv()
		assert.Error(t, err)
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultArchiveFolder, cfg.Archive.DefaultFolder)
	assert.Equal(t, DefaultOutputFile, cfg.Archive.OutputFile)
	assert.Equal(t, DefaultThumbnailMaxWidth, cfg.Thumbnail.MaxWidth)
	assert.Equal(t, DefaultThumbnailMaxHeight, cfg.Thumbnail.MaxHeight)
	assert.Equal(t, float64(DefaultThumbnailRowHeight), cfg.Thumbnail.RowHeight)
	assert.Equal(t, float64(DefaultThumbnailColWidth), cfg.Thumbnail.ColWidth)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	t.Run("Конфигурация по умолчанию проходит валидацию", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Пустое имя выходного файла отклоняется", func(t *testing.T) {
		cfg := valid()
		cfg.Archive.OutputFile = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Неположительная ширина миниатюры отклоняется", func(t *testing.T) {
		cfg := valid()
		cfg.Thumbnail.MaxWidth = 0
		assert.Error(t, cfg.Validate())

		cfg = valid()
		cfg.Thumbnail.MaxWidth = -5
		assert.Error(t, cfg.Validate())
	})

	t.Run("Неположительная высота строки отклоняется", func(t *testing.T) {
		cfg := valid()
		cfg.Thumbnail.RowHeight = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Неизвестный уровень логирования отклоняется", func(t *testing.T) {
		cfg := valid()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})
}
