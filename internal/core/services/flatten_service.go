package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

// FlattenServiceImpl реализует интерфейс FlattenService.
type FlattenServiceImpl struct {
	locator ports.AttachmentLocator
}

// NewFlattenService создает новый экземпляр FlattenServiceImpl.
func NewFlattenService(locator ports.AttachmentLocator) ports.FlattenService {
	return &FlattenServiceImpl{locator: locator}
}

// Flatten сводит сообщение и метаданные беседы в одну плоскую запись.
// Отсутствующие необязательные поля дают пустые значения; ошибка
// возвращается только если у сообщения нет поля creator.
//
// Поиск вложений выполняется по всему дереву сообщения, а не по известным
// полям: в зависимости от версии инструмента экспорта ссылки встречаются
// на произвольной глубине.
func (s *FlattenServiceImpl) Flatten(conv domain.Conversation, msg *domain.Message) (domain.Record, error) {
	if msg.Creator == nil {
		return domain.Record{}, fmt.Errorf("message has no creator field")
	}

	paths := s.locator.Locate(msg.Raw, conv.Path)

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}

	spaceName := ""
	if conv.Kind == domain.GroupKindSpace {
		spaceName = conv.DisplayName
	}

	return domain.Record{
		GroupType:        conv.Kind,
		GroupID:          conv.ID,
		SenderName:       msg.Creator.Name,
		SenderEmail:      msg.Creator.Email,
		MessageTimestamp: msg.CreatedDate,
		MessageContent:   msg.Text,
		SpaceName:        spaceName,
		AttachmentPaths:  paths,
		AttachmentNames:  strings.Join(names, "; "),
	}, nil
}
