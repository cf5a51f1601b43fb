package jsdoc

import (
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const markdownExtensions = blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs

// renderMarkdown converts comment text to HTML. Raw HTML in comments is passed through.
func renderMarkdown(text string) template.HTML {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return ""
	}
	rendered := blackfriday.Run([]byte(trimmedText), blackfriday.WithExtensions(markdownExtensions))
	return template.HTML(strings.TrimSpace(string(rendered)))
}
