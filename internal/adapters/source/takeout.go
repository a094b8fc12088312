package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

const (
	// groupsSubdir — путь к папкам бесед внутри корня архива.
	groupsSubdir = "Google Chat/Groups"
	// messagesFileName — журнал сообщений беседы.
	messagesFileName = "messages.json"
	// groupInfoFileName — файл метаданных пространства.
	groupInfoFileName = "group_info.json"
	// dmMarker — маркер личной переписки в имени папки, проставляется
	// инструментом экспорта. Это эвристика, а не поле схемы: пространство
	// с "DM" в имени папки будет классифицировано как личная переписка.
	dmMarker = "DM"
)

// TakeoutSource реализует интерфейс ArchiveSource для чтения архива
// Google Takeout с локального диска.
type TakeoutSource struct {
	parser ports.Parser
}

// NewTakeoutSource создает новый экземпляр TakeoutSource.
func NewTakeoutSource(parser ports.Parser) ports.ArchiveSource {
	return &TakeoutSource{parser: parser}
}

// ListConversations находит папки бесед внутри корня архива и загружает
// их метаданные. Папки перечисляются в лексическом порядке os.ReadDir.
func (s *TakeoutSource) ListConversations(archiveRoot string) ([]domain.Conversation, error) {
	groupsDir := filepath.Join(archiveRoot, filepath.FromSlash(groupsSubdir))

	entries, err := os.ReadDir(groupsDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Архив без чатов — не ошибка, просто ноль бесед
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read groups directory %s: %w", groupsDir, err)
	}

	var conversations []domain.Conversation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		conv, err := s.LoadConversation(filepath.Join(groupsDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// LoadConversation классифицирует папку беседы, извлекает идентификатор
// и — для пространств — отображаемое имя из group_info.json.
// Отсутствие файла метаданных допустимо, ошибка его разбора — нет.
func (s *TakeoutSource) LoadConversation(folderPath string) (domain.Conversation, error) {
	base := filepath.Base(folderPath)

	kind := domain.GroupKindSpace
	if strings.Contains(base, dmMarker) {
		kind = domain.GroupKindDM
	}

	tokens := strings.Fields(base)
	id := base
	if len(tokens) > 0 {
		id = tokens[len(tokens)-1]
	}

	conv := domain.Conversation{
		Kind: kind,
		ID:   id,
		Path: folderPath,
	}

	if kind != domain.GroupKindSpace {
		return conv, nil
	}

	data, err := os.ReadFile(filepath.Join(folderPath, groupInfoFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return conv, nil
		}
		return domain.Conversation{}, fmt.Errorf("failed to read %s in %s: %w", groupInfoFileName, folderPath, err)
	}

	info, err := s.parser.ParseGroupInfo(data)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("не удалось разобрать %s в %s: %w", groupInfoFileName, folderPath, err)
	}
	conv.DisplayName = info.Name

	return conv, nil
}

// ReadMessages читает содержимое messages.json беседы.
// Отсутствие файла означает ноль сообщений, а не ошибку.
func (s *TakeoutSource) ReadMessages(conv domain.Conversation) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(conv.Path, messagesFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s in %s: %w", messagesFileName, conv.Path, err)
	}
	return data, nil
}
