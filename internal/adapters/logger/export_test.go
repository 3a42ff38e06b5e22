package logger

// Exported for white-box testing of the error chain rendering.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
