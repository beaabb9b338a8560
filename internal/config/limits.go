package config

const (
	// ArticleTitleLength is the number of characters of an article title shown
	// in a select option. Longer titles are cut without a marker.
	ArticleTitleLength = 32

	// ContentPreviewLength is the number of characters of a stripped content
	// value shown in a content slot option.
	ContentPreviewLength = 20

	// ContentPreviewMarker follows every non empty content preview.
	ContentPreviewMarker = "..."

	// LevelSpacer is the indentation emitted once per tree level.
	LevelSpacer = "\u00a0\u00a0\u00a0\u00a0\u00a0"

	// FolderSymbol prefixes directory and group header labels.
	FolderSymbol = "\U0001F4C1"

	// MaxLogFiles is the number of server log files kept in LOG_DIR.
	MaxLogFiles = 10
)
