// Package jsdoc extracts documentation comment blocks from JavaScript source.
//
// Each /** ... */ block becomes a Comment carrying its rendered description,
// its tags, and the code context that follows it. Descriptions are Markdown and
// are rendered to HTML; tag text is kept verbatim.
package jsdoc

import (
	"html/template"
	"regexp"
	"strings"
)

// Context types reported for the code that follows a comment block.
const (
	ContextFunction    = "function"
	ContextMethod      = "method"
	ContextProperty    = "property"
	ContextDeclaration = "declaration"
	ContextClass       = "class"
)

// Comment is one parsed documentation block.
type Comment struct {
	Tags        []Tag       `json:"tags"`
	Description Description `json:"description"`
	IsPrivate   bool        `json:"isPrivate"`
	Line        int         `json:"line"`
	Code        string      `json:"code,omitempty"`
	Context     *Context    `json:"ctx,omitempty"`
}

// Description holds the rendered HTML of a comment's free text.
// Summary is the first paragraph and Body everything after it.
type Description struct {
	Full    template.HTML `json:"full"`
	Summary template.HTML `json:"summary"`
	Body    template.HTML `json:"body"`
}

// Context describes the declaration a comment documents.
type Context struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Receiver    string `json:"receiver,omitempty"`
	Constructor string `json:"constructor,omitempty"`
	Value       string `json:"value,omitempty"`
	String      string `json:"string"`
}

// ContextType returns the type of the documented code, or an empty string when the block stands alone.
func (comment Comment) ContextType() string {
	if comment.Context == nil {
		return ""
	}
	return comment.Context.Type
}

// TagsOfType returns the tags whose discriminator equals one of tagTypes, in order.
func (comment Comment) TagsOfType(tagTypes ...string) []Tag {
	var matching []Tag
	for _, tag := range comment.Tags {
		for _, tagType := range tagTypes {
			if tag.Type == tagType {
				matching = append(matching, tag)
				break
			}
		}
	}
	return matching
}

// rawBlock is a comment block located in source before its text is interpreted.
type rawBlock struct {
	text    string
	line    int
	code    string
	context *Context
}

var (
	commentOpeningExpression = regexp.MustCompile(`^/\*\*[ \t]?`)
	commentClosingExpression = regexp.MustCompile(`[ \t]*\*/$`)
	commentMarginExpression  = regexp.MustCompile(`(?m)^[ \t]*\* ?`)
	paragraphBreakExpression = regexp.MustCompile(`\n[ \t]*\n`)
)

// Parse extracts every documentation block from source in file order.
func Parse(source []byte) ([]Comment, error) {
	blocks, extractError := extractBlocks(source)
	if extractError != nil {
		return nil, extractError
	}
	comments := make([]Comment, 0, len(blocks))
	for _, block := range blocks {
		comments = append(comments, buildComment(block))
	}
	return comments, nil
}

func buildComment(block rawBlock) Comment {
	descriptionText, tagTexts := splitCommentText(stripCommentMarkers(block.text))
	comment := Comment{
		Description: renderDescription(descriptionText),
		Line:        block.line,
		Code:        block.code,
		Context:     block.context,
		Tags:        make([]Tag, 0, len(tagTexts)),
	}
	for _, tagText := range tagTexts {
		tag := ParseTag(tagText)
		if tag.Type == TagPrivate || (tag.Type == TagAPI && tag.Visibility == visibilityPrivate) {
			comment.IsPrivate = true
		}
		comment.Tags = append(comment.Tags, tag)
	}
	return comment
}

// stripCommentMarkers removes the opening and closing delimiters and the leading asterisk margin.
func stripCommentMarkers(rawText string) string {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	normalized = commentOpeningExpression.ReplaceAllString(normalized, "")
	normalized = commentClosingExpression.ReplaceAllString(normalized, "")
	normalized = commentMarginExpression.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

// splitCommentText separates the free text from the tags. A tag starts on a line beginning
// with "@" and continues until the next such line.
func splitCommentText(text string) (string, []string) {
	var descriptionLines []string
	var tagTexts []string
	for _, line := range strings.Split(text, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if strings.HasPrefix(trimmedLine, tagMarker) {
			tagTexts = append(tagTexts, trimmedLine)
			continue
		}
		if len(tagTexts) > 0 {
			if trimmedLine != "" {
				tagTexts[len(tagTexts)-1] += " " + trimmedLine
			}
			continue
		}
		descriptionLines = append(descriptionLines, line)
	}
	return strings.TrimSpace(strings.Join(descriptionLines, "\n")), tagTexts
}

func renderDescription(text string) Description {
	if text == "" {
		return Description{}
	}
	paragraphs := paragraphBreakExpression.Split(text, 2)
	description := Description{
		Full:    renderMarkdown(text),
		Summary: renderMarkdown(paragraphs[0]),
	}
	if len(paragraphs) > 1 {
		description.Body = renderMarkdown(paragraphs[1])
	}
	return description
}
