package usecase

import (
	"fmt"
	"log/slog"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

// ProcessArchiveUseCase инкапсулирует бизнес-логику обработки архива Takeout:
// обнаружение бесед, разбор журналов сообщений и сведение в плоские записи.
type ProcessArchiveUseCase struct {
	source    ports.ArchiveSource
	parser    ports.Parser
	flattener ports.FlattenService
}

// NewProcessArchiveUseCase создает новый экземпляр ProcessArchiveUseCase.
func NewProcessArchiveUseCase(
	source ports.ArchiveSource,
	parser ports.Parser,
	flattener ports.FlattenService,
) *ProcessArchiveUseCase {
	return &ProcessArchiveUseCase{
		source:    source,
		parser:    parser,
		flattener: flattener,
	}
}

// ProcessArchive обрабатывает архив целиком и возвращает плоские записи
// в порядке обхода: беседы в порядке перечисления папок, сообщения в порядке
// следования в журнале. Ошибка сведения одного сообщения не прерывает
// обработку остальных; ошибка разбора файла прерывает весь прогон.
func (uc *ProcessArchiveUseCase) ProcessArchive(archiveRoot string) ([]domain.Record, error) {
	conversations, err := uc.source.ListConversations(archiveRoot)
	if err != nil {
		return nil, fmt.Errorf("не удалось перечислить беседы: %w", err)
	}
	slog.Info("Найдены беседы", "count", len(conversations))

	var records []domain.Record
	for _, conv := range conversations {
		slog.Info("Обработка беседы", "path", conv.Path, "kind", string(conv.Kind), "id", conv.ID)

		data, err := uc.source.ReadMessages(conv)
		if err != nil {
			return nil, err
		}
		if data == nil {
			slog.Info("Журнал сообщений отсутствует, беседа пропущена", "path", conv.Path)
			continue
		}

		messages, err := uc.parser.ParseMessageLog(data)
		if err != nil {
			return nil, fmt.Errorf("не удалось разобрать журнал сообщений в %s: %w", conv.Path, err)
		}
		slog.Info("Разобран журнал сообщений", "path", conv.Path, "message_count", len(messages))

		for i, msg := range messages {
			rec, err := uc.flattener.Flatten(conv, msg)
			if err != nil {
				slog.Warn("Сообщение пропущено", "path", conv.Path, "index", i, "error", err.Error())
				continue
			}
			records = append(records, rec)
		}
	}

	slog.Info("Обработка успешно завершена", "record_count", len(records))
	return records, nil
}
