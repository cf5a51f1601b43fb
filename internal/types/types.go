// Package types defines every cross-package data structure used by the apidoc CLI.
package types

import "github.com/temirov/apidoc/internal/jsdoc"

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
)

// FileList holds discovered source paths in visitation order.
type FileList []string

// NameIndex maps a file's basename, with and without its suffix, to the file's full path.
type NameIndex map[string]string

// DocumentModel is the per-file data handed to the page template.
type DocumentModel struct {
	Title     string           `json:"title"`
	File      string           `json:"file"`
	Filename  string           `json:"filename"`
	Head      *jsdoc.Comment   `json:"head,omitempty"`
	Functions []FunctionRecord `json:"functions,omitempty"`
}

// FunctionRecord is a parsed comment with its parameter and return tags grouped for templates.
type FunctionRecord struct {
	jsdoc.Comment
	Params  []jsdoc.Tag `json:"params,omitempty"`
	Returns *jsdoc.Tag  `json:"returns,omitempty"`
}

// TocEntry describes one rendered page in the table of contents.
type TocEntry struct {
	Title        string `json:"title"`
	File         string `json:"file"`
	Filename     string `json:"filename"`
	Href         string `json:"href"`
	Size         string `json:"size,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// TableOfContents is the data handed to the table of contents template.
type TableOfContents struct {
	Title     string     `json:"title"`
	Documents []TocEntry `json:"documents"`
	Files     FileList   `json:"files"`
	Index     NameIndex  `json:"index"`
}
