package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"google-chat-parser/internal/cache"
	"google-chat-parser/internal/ports"
)

// imageExtensions — расширения файлов, которые считаются изображениями.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// AttachmentLocatorImpl реализует интерфейс AttachmentLocator.
type AttachmentLocatorImpl struct {
	scanCache *cache.ScanCache
}

// NewAttachmentLocator создает новый экземпляр AttachmentLocatorImpl.
func NewAttachmentLocator(scanCache *cache.ScanCache) ports.AttachmentLocator {
	return &AttachmentLocatorImpl{scanCache: scanCache}
}

// Locate рекурсивно обходит разобранное JSON-дерево сообщения и возвращает
// абсолютные пути существующих файлов-изображений, на которые ссылаются
// строковые значения, в порядке обнаружения и без дубликатов.
//
// Значения объектов посещаются в порядке отсортированных ключей: encoding/json
// не сохраняет порядок документа, а позиция первого вхождения должна быть
// детерминированной.
func (l *AttachmentLocatorImpl) Locate(node any, conversationRoot string) []string {
	var found []string
	l.walk(node, conversationRoot, &found)

	// Дедупликация с сохранением порядка первого вхождения
	seen := make(map[string]bool)
	var result []string
	for _, p := range found {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

// walk посещает один узел дерева. Закрытое множество типов encoding/json:
// map[string]any, []any, string, float64, bool, nil. Числовые и булевы
// листья кандидатами не являются.
func (l *AttachmentLocatorImpl) walk(node any, root string, found *[]string) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			l.walk(v[k], root, found)
		}
	case []any:
		for _, item := range v {
			l.walk(item, root, found)
		}
	case string:
		if !looksLikeImageReference(v) {
			return
		}
		if path, ok := l.resolve(v, root); ok {
			*found = append(*found, path)
		}
	}
}

// looksLikeImageReference проверяет, похожа ли строка на имя или путь
// файла-изображения: нижний регистр оканчивается на известное расширение,
// либо содержит расширение вместе с разделителем пути.
func looksLikeImageReference(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
		if strings.Contains(lower, ext) && strings.ContainsAny(s, `/\`) {
			return true
		}
	}
	return false
}

// resolve пытается сопоставить кандидата с существующим файлом,
// останавливаясь на первой успешной стратегии:
//  1. кандидат как путь относительно папки беседы;
//  2. только имя файла кандидата непосредственно в папке беседы;
//  3. глубокий поиск имени файла по всем поддиректориям папки беседы.
func (l *AttachmentLocatorImpl) resolve(candidate, root string) (string, bool) {
	if p := filepath.Join(root, filepath.FromSlash(candidate)); fileExists(p) {
		return absolute(p), true
	}

	base := baseName(candidate)
	if p := filepath.Join(root, base); fileExists(p) {
		return absolute(p), true
	}

	if p, ok := l.scanCache.Index(root)[base]; ok && fileExists(p) {
		return absolute(p), true
	}

	return "", false
}

// baseName возвращает последний компонент пути кандидата,
// учитывая оба вида разделителей.
func baseName(s string) string {
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i+1:]
	}
	return s
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
