package organizer

import (
	"path/filepath"
	"strings"
)

// CategoryOther is where files with unknown or missing extensions land.
const CategoryOther = "Other"

// Category groups file extensions under one destination folder name.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered category list. Order matters: the first category
// containing an extension wins.
type Table []Category

// DefaultTable maps common extensions to their destination folders.
// Extensions are lowercase and include the leading dot.
var DefaultTable = Table{
	{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".svg"}},
	{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".xls", ".xlsx", ".ppt", ".pptx"}},
	{Name: "Audio", Extensions: []string{".mp3", ".wav", ".ogg", ".aac", ".flac"}},
	{Name: "Video", Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".wmv"}},
	{Name: "Archives", Extensions: []string{".zip", ".tar", ".gz", ".rar", ".7z"}},
	{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".c", ".cpp", ".java", ".php", ".rb", ".go"}},
}

// Categorize maps a file name to its destination category based on the
// file extension. Extension matching is case-insensitive. Files whose
// extension is not in the table, including files with no extension at
// all, go to CategoryOther.
func (t Table) Categorize(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	for _, category := range t {
		for _, e := range category.Extensions {
			if e == ext {
				return category.Name
			}
		}
	}
	return CategoryOther
}
