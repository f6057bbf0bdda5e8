package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Document is a prompt file read from disk
type Document struct {
	Content  string
	Metadata Metadata
}

// Metadata describes where a prompt file came from
type Metadata struct {
	Title         string    `json:"title" yaml:"title"`
	SourcePath    string    `json:"source_path" yaml:"source_path"`
	FileSizeBytes int64     `json:"file_size_bytes" yaml:"file_size_bytes"`
	WordCount     int       `json:"word_count" yaml:"word_count"`
	ModifiedAt    time.Time `json:"modified_at" yaml:"modified_at"`
}

// FileSizeHuman returns human-readable file size
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}

// titleFromPath strips directory and extension: "/a/b/review.txt" -> "review"
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
