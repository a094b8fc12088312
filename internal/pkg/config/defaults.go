package config

// Default values for configuration.
const (
	// Archive defaults
	DefaultArchiveFolder = "Takeout"
	DefaultOutputFile    = "GoogleChatMessages.xlsx"

	// Thumbnail defaults
	DefaultThumbnailMaxWidth  = 150
	DefaultThumbnailMaxHeight = 150
	DefaultThumbnailRowHeight = 110
	DefaultThumbnailColWidth  = 20

	// Logging defaults
	DefaultLogLevel = "info"
)
