package pastebin

import (
	"path/filepath"
	"strings"
)

// DefaultFormat is the syntax label used when none can be inferred.
const DefaultFormat = "text"

var formatsByExt = map[string]string{
	"c":    "c",
	"cpp":  "cpp",
	"cs":   "csharp",
	"css":  "css",
	"go":   "go",
	"h":    "c",
	"html": "html5",
	"java": "java",
	"js":   "javascript",
	"json": "json",
	"kt":   "kotlin",
	"lua":  "lua",
	"md":   "markdown",
	"php":  "php",
	"py":   "python",
	"rb":   "ruby",
	"rs":   "rust",
	"sh":   "bash",
	"sql":  "sql",
	"toml": "ini",
	"ts":   "typescript",
	"txt":  "text",
	"xml":  "xml",
	"yaml": "yaml",
	"yml":  "yaml",
}

// FormatForFile returns the syntax label for a file name's extension.
func FormatForFile(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if f, ok := formatsByExt[ext]; ok {
		return f
	}
	return DefaultFormat
}

// TitleForFile returns the file's base name without its extension.
func TitleForFile(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
