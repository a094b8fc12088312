package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKind(t *testing.T) {
	t.Run("Значения типов бесед совпадают с колонкой GroupType", func(t *testing.T) {
		assert.Equal(t, "DM", string(GroupKindDM))
		assert.Equal(t, "Space", string(GroupKindSpace))
	})
}

func TestEmbedReport(t *testing.T) {
	t.Run("Пустой отчет", func(t *testing.T) {
		report := &EmbedReport{}
		assert.Equal(t, 0, report.Count(EmbedStatusEmbedded))
		assert.Equal(t, 0, report.EmbeddedCount())
		assert.Empty(t, report.Results)
	})

	t.Run("Подсчет результатов по статусам", func(t *testing.T) {
		report := &EmbedReport{MaxImages: 2}
		report.Add(EmbedResult{Row: 2, Path: "/a/one.png", Status: EmbedStatusEmbedded})
		report.Add(EmbedResult{Row: 2, Path: "/a/two.png", Status: EmbedStatusEmbedded})
		report.Add(EmbedResult{Row: 3, Path: "/a/three.svg", Status: EmbedStatusOriginal})
		report.Add(EmbedResult{Row: 4, Path: "/a/gone.png", Status: EmbedStatusMissing})
		report.Add(EmbedResult{Row: 5, Path: "/a/odd.webp", Status: EmbedStatusUnreadable})

		assert.Equal(t, 2, report.Count(EmbedStatusEmbedded))
		assert.Equal(t, 1, report.Count(EmbedStatusOriginal))
		assert.Equal(t, 1, report.Count(EmbedStatusMissing))
		assert.Equal(t, 1, report.Count(EmbedStatusUnreadable))
		assert.Equal(t, 3, report.EmbeddedCount(), "Встроенными считаются миниатюры и оригиналы")
		assert.Len(t, report.Results, 5)
	})
}
