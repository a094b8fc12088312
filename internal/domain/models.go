package domain

// GroupKind определяет тип беседы в архиве Takeout.
type GroupKind string

const (
	// GroupKindDM — личная переписка один на один.
	GroupKindDM GroupKind = "DM"
	// GroupKindSpace — групповое пространство (Space).
	GroupKindSpace GroupKind = "Space"
)

// Conversation представляет одну беседу — папку внутри архива.
type Conversation struct {
	Kind GroupKind
	// ID — последний токен имени папки, разделенного пробелами.
	ID string
	// DisplayName — человекочитаемое имя пространства из group_info.json.
	// Пустая строка для DM и для пространств без файла метаданных.
	DisplayName string
	// Path — абсолютный путь к папке беседы на диске.
	Path string
}

// Creator представляет отправителя сообщения.
type Creator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GroupInfo представляет структуру файла group_info.json.
// Нас интересует только поле name.
type GroupInfo struct {
	Name string `json:"name"`
}

// Message представляет одно сообщение из messages.json.
// Типизированные поля извлекаются с терпимостью к отсутствию,
// Raw хранит полную разобранную структуру для поиска вложений.
type Message struct {
	// Creator равен nil, если поле creator отсутствует или не является объектом.
	Creator *Creator
	// CreatedDate — непрозрачная строка, передается в вывод без изменений.
	CreatedDate string
	Text        string
	// Raw — полное дерево сообщения после json.Unmarshal.
	Raw map[string]any
}

// Record представляет одну плоскую строку итоговой таблицы.
// Это наша внутренняя модель, а не структура из JSON.
type Record struct {
	GroupType        GroupKind
	GroupID          string
	SenderName       string
	SenderEmail      string
	MessageTimestamp string
	MessageContent   string
	// SpaceName пустое, если беседа не является пространством.
	SpaceName string
	// AttachmentPaths — абсолютные пути найденных вложений в порядке обнаружения.
	// В таблицу не записываются, используются только для встраивания миниатюр.
	AttachmentPaths []string
	// AttachmentNames — имена файлов вложений, соединенные через "; ".
	// Всегда выводится из AttachmentPaths того же прохода поиска.
	AttachmentNames string
}

// EmbedStatus описывает результат встраивания одной миниатюры.
type EmbedStatus string

const (
	// EmbedStatusEmbedded — миниатюра уменьшена и встроена.
	EmbedStatusEmbedded EmbedStatus = "embedded"
	// EmbedStatusOriginal — уменьшение не удалось, встроен исходный файл.
	EmbedStatusOriginal EmbedStatus = "embedded_original"
	// EmbedStatusMissing — файл вложения отсутствует на диске, пропущен.
	EmbedStatusMissing EmbedStatus = "skipped_missing"
	// EmbedStatusUnreadable — файл не удалось встроить, пропущен.
	EmbedStatusUnreadable EmbedStatus = "skipped_unreadable"
)

// EmbedResult представляет итог обработки одного вложения одной строки.
type EmbedResult struct {
	// Row — номер строки таблицы (с учетом заголовка).
	Row    int
	Path   string
	Status EmbedStatus
}

// EmbedReport агрегирует результаты этапа встраивания миниатюр.
type EmbedReport struct {
	// MaxImages — максимальное число вложений на одно сообщение за прогон.
	MaxImages int
	Results   []EmbedResult
}

// Add добавляет результат обработки одного вложения.
func (r *EmbedReport) Add(res EmbedResult) {
	r.Results = append(r.Results, res)
}

// Count возвращает число результатов с заданным статусом.
func (r *EmbedReport) Count(status EmbedStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// EmbeddedCount возвращает число фактически встроенных изображений,
// включая встроенные без уменьшения.
func (r *EmbedReport) EmbeddedCount() int {
	return r.Count(EmbedStatusEmbedded) + r.Count(EmbedStatusOriginal)
}
