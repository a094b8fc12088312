package parser

import (
	"encoding/json"
	"fmt"

	"google-chat-parser/internal/domain"
	"google-chat-parser/internal/ports"
)

// JsonParser реализует интерфейс Parser для разбора JSON-файлов архива.
type JsonParser struct{}

// NewJsonParser создает новый экземпляр JsonParser.
func NewJsonParser() ports.Parser {
	return &JsonParser{}
}

// messageLog соответствует корневой структуре messages.json.
type messageLog struct {
	Messages []map[string]any `json:"messages"`
}

// ParseMessageLog преобразует содержимое messages.json в список сообщений.
// Каждое сообщение сохраняет полное разобранное дерево, типизированные поля
// извлекаются с терпимостью к отсутствию.
func (p *JsonParser) ParseMessageLog(data []byte) ([]*domain.Message, error) {
	var log messageLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages json: %w", err)
	}

	messages := make([]*domain.Message, 0, len(log.Messages))
	for _, raw := range log.Messages {
		messages = append(messages, messageFromRaw(raw))
	}
	return messages, nil
}

// ParseGroupInfo преобразует содержимое group_info.json.
func (p *JsonParser) ParseGroupInfo(data []byte) (*domain.GroupInfo, error) {
	var info domain.GroupInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group info json: %w", err)
	}
	return &info, nil
}

// messageFromRaw извлекает типизированные поля из разобранного дерева сообщения.
func messageFromRaw(raw map[string]any) *domain.Message {
	msg := &domain.Message{Raw: raw}

	if creator, ok := raw["creator"].(map[string]any); ok {
		msg.Creator = &domain.Creator{
			Name:  stringField(creator, "name"),
			Email: stringField(creator, "email"),
		}
	}

	// created_date — непрозрачное значение: строки передаются как есть,
	// прочие непустые значения форматируются.
	if v, ok := raw["created_date"]; ok && v != nil {
		if s, ok := v.(string); ok {
			msg.CreatedDate = s
		} else {
			msg.CreatedDate = fmt.Sprint(v)
		}
	}

	msg.Text = stringField(raw, "text")
	return msg
}

// stringField возвращает строковое значение ключа или пустую строку.
func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}
