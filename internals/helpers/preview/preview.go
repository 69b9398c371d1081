// file: internals/helpers/preview/preview.go
//
// Preview de texto para arquivos enviados: decide pela extensão se o
// arquivo é "texto" e devolve um trecho limitado a 500KB.
package preview

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxBytes é o teto de leitura do preview (500KB).
const MaxBytes = 500 * 1024

// Extensões consideradas "texto" para preview.
var textExtensions = map[string]struct{}{
	".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".py": {}, ".java": {}, ".c": {}, ".cpp": {}, ".h": {}, ".hpp": {},
	".cs": {}, ".rb": {}, ".go": {}, ".rs": {}, ".php": {}, ".swift": {}, ".kt": {}, ".scala": {},
	".html": {}, ".htm": {}, ".css": {}, ".scss": {}, ".sass": {}, ".less": {},
	".json": {}, ".xml": {}, ".yaml": {}, ".yml": {}, ".toml": {}, ".ini": {}, ".cfg": {}, ".conf": {},
	".md": {}, ".txt": {}, ".csv": {}, ".log": {}, ".sh": {}, ".bash": {}, ".bat": {}, ".ps1": {},
	".sql": {}, ".r": {}, ".m": {}, ".lua": {}, ".pl": {}, ".asm": {}, ".s": {},
	".dockerfile": {}, ".makefile": {}, ".gitignore": {}, ".env": {},
	".vue": {}, ".svelte": {}, ".astro": {},
}

// Mapeia extensão → linguagem (para syntax highlighting no front).
var langMap = map[string]string{
	".js": "javascript", ".jsx": "javascript", ".ts": "typescript", ".tsx": "typescript",
	".py": "python", ".java": "java", ".c": "c", ".cpp": "cpp", ".h": "c", ".hpp": "cpp",
	".cs": "csharp", ".rb": "ruby", ".go": "go", ".rs": "rust", ".php": "php",
	".html": "html", ".htm": "html", ".css": "css", ".scss": "scss",
	".json": "json", ".xml": "xml", ".yaml": "yaml", ".yml": "yaml",
	".md": "markdown", ".txt": "text", ".sql": "sql", ".sh": "bash",
	".bat": "batch", ".ps1": "powershell", ".r": "r", ".lua": "lua",
	".vue": "vue", ".svelte": "svelte",
}

type Preview struct {
	Language  string `json:"language"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
	TotalSize int64  `json:"totalSize"`
}

// IsTextFile verifica se o arquivo é previewável pela extensão
// (case-insensitive). A lista do servidor é a autoritativa; qualquer
// réplica no cliente é só conveniência de UI.
func IsTextFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := textExtensions[ext]
	return ok
}

// Language devolve a tag de linguagem da extensão; extensões fora da
// tabela caem em "text".
func Language(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := langMap[ext]; ok {
		return lang
	}
	return "text"
}

// GetPreview lê no máximo MaxBytes do início do arquivo e decodifica
// como UTF-8 (best-effort). Arquivo ausente propaga o erro de os.Open
// (os.IsNotExist identifica a corrida com deleção).
func GetPreview(filePath, filename string) (*Preview, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, min64(info.Size(), MaxBytes))
	if _, err := io.ReadFull(f, buf); err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return &Preview{
		Language:  Language(filename),
		Content:   string(buf),
		Truncated: info.Size() > MaxBytes,
		TotalSize: info.Size(),
	}, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
