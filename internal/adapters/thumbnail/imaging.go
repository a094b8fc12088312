package thumbnail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"google-chat-parser/internal/ports"
)

// ImagingThumbnailer реализует интерфейс Thumbnailer на базе
// библиотеки imaging: изображение вписывается в ограничивающий
// прямоугольник с сохранением пропорций.
type ImagingThumbnailer struct {
	maxWidth  int
	maxHeight int
}

// NewImagingThumbnailer создает новый экземпляр ImagingThumbnailer.
func NewImagingThumbnailer(maxWidth, maxHeight int) ports.Thumbnailer {
	return &ImagingThumbnailer{maxWidth: maxWidth, maxHeight: maxHeight}
}

// Thumbnail уменьшает изображение и сохраняет его во временный файл,
// путь к которому возвращает. Формат файла определяется расширением
// исходного пути; неподдерживаемые форматы дают ошибку, по которой
// вызывающий встраивает исходный файл.
func (t *ImagingThumbnailer) Thumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", srcPath, err)
	}

	thumb := imaging.Fit(img, t.maxWidth, t.maxHeight, imaging.Lanczos)

	ext := strings.ToLower(filepath.Ext(srcPath))
	if ext == "" {
		ext = ".png"
	}
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("chatparser_thumb_%s%s", uuid.NewString(), ext))

	if err := imaging.Save(thumb, tmpPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail for %s: %w", srcPath, err)
	}
	return tmpPath, nil
}
