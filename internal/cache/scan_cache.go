package cache

import (
	"io/fs"
	"path/filepath"
	"sync"
)

// ScanCache хранит индексы содержимого папок бесед, чтобы глубокий поиск
// вложений обходил дерево каждой беседы не более одного раза за прогон.
type ScanCache struct {
	mu      sync.RWMutex
	indexes map[string]map[string]string
}

// NewScanCache создает новое хранилище индексов.
func NewScanCache() *ScanCache {
	return &ScanCache{
		indexes: make(map[string]map[string]string),
	}
}

// Index возвращает индекс "имя файла -> полный путь" для папки,
// строя его при первом обращении.
//
// Обход выполняется через filepath.WalkDir, который посещает записи каждой
// директории в лексическом порядке; при совпадении имен в разных
// поддиректориях сохраняется первый встреченный путь. Другие инструменты
// обхода могут давать иной порядок — это известная недетерминированность
// стратегии глубокого поиска.
func (c *ScanCache) Index(dir string) map[string]string {
	c.mu.RLock()
	idx, found := c.indexes[dir]
	c.mu.RUnlock()
	if found {
		return idx
	}

	idx = buildIndex(dir)

	c.mu.Lock()
	c.indexes[dir] = idx
	c.mu.Unlock()
	return idx
}

// buildIndex обходит дерево папки и собирает индекс по именам файлов.
func buildIndex(dir string) map[string]string {
	idx := make(map[string]string)
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Недоступные поддиректории пропускаем
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, seen := idx[d.Name()]; !seen {
			idx[d.Name()] = path
		}
		return nil
	})
	return idx
}
