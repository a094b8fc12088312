package ports

import (
	"google-chat-parser/internal/domain"
)

// ArchiveSource определяет интерфейс для чтения архива Takeout с диска.
type ArchiveSource interface {
	// ListConversations находит папки бесед внутри корня архива
	// и загружает их метаданные.
	ListConversations(archiveRoot string) ([]domain.Conversation, error)
	// ReadMessages читает содержимое messages.json беседы.
	// Отсутствие файла не является ошибкой: возвращается (nil, nil).
	ReadMessages(conv domain.Conversation) ([]byte, error)
}

// Parser определяет интерфейс для разбора JSON-файлов архива.
type Parser interface {
	// ParseMessageLog преобразует содержимое messages.json в список сообщений.
	ParseMessageLog(data []byte) ([]*domain.Message, error)
	// ParseGroupInfo преобразует содержимое group_info.json.
	ParseGroupInfo(data []byte) (*domain.GroupInfo, error)
}

// AttachmentLocator определяет интерфейс для поиска вложений-изображений
// внутри произвольно вложенной структуры сообщения.
type AttachmentLocator interface {
	// Locate возвращает дедуплицированный список абсолютных путей
	// существующих файлов в порядке обнаружения.
	Locate(node any, conversationRoot string) []string
}

// FlattenService определяет интерфейс для сведения сообщения
// и метаданных беседы в одну плоскую запись.
type FlattenService interface {
	Flatten(conv domain.Conversation, msg *domain.Message) (domain.Record, error)
}

// Exporter определяет интерфейс для записи плоских записей в таблицу.
type Exporter interface {
	// Export записывает записи в файл таблицы: одна строка на запись,
	// порядок строк совпадает с порядком записей.
	Export(records []domain.Record, outputPath string) error
}

// Embedder определяет интерфейс для встраивания миниатюр вложений
// в уже записанную таблицу.
type Embedder interface {
	// Embed дописывает миниатюры в файл таблицы и возвращает отчет.
	// Ошибка одного изображения никогда не прерывает обработку остальных.
	Embed(records []domain.Record, filePath string) (*domain.EmbedReport, error)
}

// Thumbnailer определяет интерфейс для уменьшения изображения до миниатюры.
type Thumbnailer interface {
	// Thumbnail уменьшает изображение и возвращает путь к временному файлу.
	// Удаление временного файла — обязанность вызывающего.
	Thumbnail(srcPath string) (string, error)
}
