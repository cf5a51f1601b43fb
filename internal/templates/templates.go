// Package templates loads and renders the HTML templates used for documentation pages and the table of contents.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultsDirectory    = "defaults"
	defaultPageFileName  = "page.html"
	defaultTOCFileName   = "toc.html"
	joinFunctionName     = "join"
	readTemplateFormat   = "read template %s: %w"
	parseTemplateFormat  = "parse template %s: %w"
	renderTemplateFormat = "render template %s: %w"
)

//go:embed defaults/*.html
var defaultTemplates embed.FS

// Template is a compiled template that renders a single data model.
type Template struct {
	name     string
	compiled *template.Template
}

// Name returns the file the template was loaded from.
func (compiledTemplate *Template) Name() string {
	return compiledTemplate.name
}

// Render executes the template against model.
func (compiledTemplate *Template) Render(model any) (string, error) {
	var buffer bytes.Buffer
	if executeError := compiledTemplate.compiled.Execute(&buffer, model); executeError != nil {
		return "", fmt.Errorf(renderTemplateFormat, compiledTemplate.name, executeError)
	}
	return buffer.String(), nil
}

// Load reads and compiles the template at path.
// #nosec G304
func Load(path string) (*Template, error) {
	content, readError := os.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf(readTemplateFormat, path, readError)
	}
	return compile(path, string(content))
}

// LoadOrDefault loads the template at path, or returns fallback when path is empty.
func LoadOrDefault(path string, fallback func() (*Template, error)) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return fallback()
	}
	return Load(path)
}

// DefaultPage returns the built-in page template.
func DefaultPage() (*Template, error) {
	return loadDefault(defaultPageFileName)
}

// DefaultTOC returns the built-in table of contents template.
func DefaultTOC() (*Template, error) {
	return loadDefault(defaultTOCFileName)
}

func loadDefault(fileName string) (*Template, error) {
	embeddedPath := defaultsDirectory + "/" + fileName
	content, readError := defaultTemplates.ReadFile(embeddedPath)
	if readError != nil {
		return nil, fmt.Errorf(readTemplateFormat, embeddedPath, readError)
	}
	return compile(embeddedPath, string(content))
}

func compile(name string, content string) (*Template, error) {
	compiled, parseError := template.New(filepath.Base(name)).Funcs(template.FuncMap{
		joinFunctionName: strings.Join,
	}).Parse(content)
	if parseError != nil {
		return nil, fmt.Errorf(parseTemplateFormat, name, parseError)
	}
	return &Template{name: name, compiled: compiled}, nil
}
