package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google-chat-parser/internal/cache"
	"google-chat-parser/internal/domain"
)

func newTestFlattener() *FlattenServiceImpl {
	return &FlattenServiceImpl{locator: NewAttachmentLocator(cache.NewScanCache())}
}

func TestFlatten(t *testing.T) {
	t.Run("Полное сообщение в пространстве", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "photo.png"))

		conv := domain.Conversation{
			Kind:        domain.GroupKindSpace,
			ID:          "xyz123",
			DisplayName: "Team Chat",
			Path:        root,
		}
		msg := &domain.Message{
			Creator:     &domain.Creator{Name: "Alice", Email: "a@x.com"},
			CreatedDate: "2021-01-01T00:00:00Z",
			Text:        "hello",
			Raw: map[string]any{
				"creator":    map[string]any{"name": "Alice", "email": "a@x.com"},
				"text":       "hello",
				"attachment": map[string]any{"local_path": "photo.png"},
			},
		}

		rec, err := newTestFlattener().Flatten(conv, msg)
		require.NoError(t, err)

		assert.Equal(t, domain.GroupKindSpace, rec.GroupType)
		assert.Equal(t, "xyz123", rec.GroupID)
		assert.Equal(t, "Alice", rec.SenderName)
		assert.Equal(t, "a@x.com", rec.SenderEmail)
		assert.Equal(t, "2021-01-01T00:00:00Z", rec.MessageTimestamp)
		assert.Equal(t, "hello", rec.MessageContent)
		assert.Equal(t, "Team Chat", rec.SpaceName)
		require.Len(t, rec.AttachmentPaths, 1)
		assert.Equal(t, "photo.png", rec.AttachmentNames)
	})

	t.Run("Отсутствие creator дает ошибку", func(t *testing.T) {
		conv := domain.Conversation{Kind: domain.GroupKindDM, ID: "abc", Path: t.TempDir()}
		msg := &domain.Message{Raw: map[string]any{"text": "orphan"}}

		_, err := newTestFlattener().Flatten(conv, msg)
		assert.Error(t, err)
	})

	t.Run("Отсутствующие необязательные поля дают пустые значения", func(t *testing.T) {
		conv := domain.Conversation{Kind: domain.GroupKindDM, ID: "abc", Path: t.TempDir()}
		msg := &domain.Message{
			Creator: &domain.Creator{},
			Raw:     map[string]any{"creator": map[string]any{}},
		}

		rec, err := newTestFlattener().Flatten(conv, msg)
		require.NoError(t, err)

		assert.Empty(t, rec.SenderName)
		assert.Empty(t, rec.SenderEmail)
		assert.Empty(t, rec.MessageTimestamp)
		assert.Empty(t, rec.MessageContent)
		assert.Empty(t, rec.AttachmentPaths)
		assert.Equal(t, "", rec.AttachmentNames, "Пустой список вложений дает пустую строку, не nil")
	})

	t.Run("SpaceName пустое для личной переписки", func(t *testing.T) {
		conv := domain.Conversation{
			Kind:        domain.GroupKindDM,
			ID:          "abc",
			DisplayName: "должно игнорироваться",
			Path:        t.TempDir(),
		}
		msg := &domain.Message{
			Creator: &domain.Creator{Name: "Bob"},
			Raw:     map[string]any{"creator": map[string]any{"name": "Bob"}},
		}

		rec, err := newTestFlattener().Flatten(conv, msg)
		require.NoError(t, err)
		assert.Equal(t, domain.GroupKindDM, rec.GroupType)
		assert.Empty(t, rec.SpaceName)
	})

	t.Run("AttachmentNames выводится из того же прохода, что и пути", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "one.png"))
		writeFile(t, filepath.Join(root, "sub", "two.jpg"))

		conv := domain.Conversation{Kind: domain.GroupKindSpace, ID: "s", Path: root}
		msg := &domain.Message{
			Creator: &domain.Creator{Name: "Alice"},
			Raw: map[string]any{
				"attachments": []any{"one.png", "sub/two.jpg"},
			},
		}

		rec, err := newTestFlattener().Flatten(conv, msg)
		require.NoError(t, err)

		require.Len(t, rec.AttachmentPaths, 2)
		var names []string
		for _, p := range rec.AttachmentPaths {
			names = append(names, filepath.Base(p))
		}
		assert.Equal(t, names[0]+"; "+names[1], rec.AttachmentNames)
	})
}
