package jsdoc

import (
	"strings"
	"unicode"
)

// Tag types with dedicated handling. Any other tag keeps its name as Type and its text in Text.
const (
	TagParam   = "param"
	TagReturns = "returns"
	TagReturn  = "return"
	TagSee     = "see"
	TagAPI     = "api"
	TagPrivate = "private"

	tagMarker          = "@"
	visibilityPrivate  = "private"
	typeOpening        = '{'
	typeClosing        = '}'
	typeSeparator      = "|"
	optionalOpening    = "["
	optionalClosing    = "]"
	defaultValueMarker = "="
)

var urlPrefixes = []string{"http://", "https://"}

// Tag is a single annotation inside a comment block, discriminated by Type.
type Tag struct {
	Type        string   `json:"type"`
	Types       []string `json:"types,omitempty"`
	Name        string   `json:"name,omitempty"`
	Optional    bool     `json:"optional,omitempty"`
	Description string   `json:"description,omitempty"`
	Local       string   `json:"local,omitempty"`
	URL         string   `json:"url,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
	Text        string   `json:"string"`
}

// IsReturn reports whether the tag documents a return value.
func (tag Tag) IsReturn() bool {
	return tag.Type == TagReturns || tag.Type == TagReturn
}

// ParseTag interprets a single "@name ..." line. Parameter tags accept the type either before
// or after the name, so both "@param {Number} a" and "@param a {Number}" are understood.
func ParseTag(text string) Tag {
	trimmedText := strings.TrimPrefix(strings.TrimSpace(text), tagMarker)
	tagType, remainder := nextWord(trimmedText)
	tag := Tag{Type: tagType, Text: remainder}

	switch tagType {
	case TagParam:
		types, afterTypes := readTypes(remainder)
		name, afterName := nextWord(afterTypes)
		if types == nil {
			types, afterName = readTypes(afterName)
		}
		tag.Types = types
		tag.Name, tag.Optional = normalizeParameterName(name)
		tag.Description = afterName
	case TagReturns, TagReturn:
		tag.Types, tag.Description = readTypes(remainder)
	case TagSee:
		if hasURLPrefix(remainder) {
			tag.URL = remainder
		} else {
			tag.Local = remainder
		}
	case TagAPI:
		tag.Visibility = remainder
	}
	return tag
}

// readTypes consumes a leading "{A|B}" group. It returns nil types when the text does not start with one.
func readTypes(text string) ([]string, string) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" || trimmedText[0] != typeOpening {
		return nil, trimmedText
	}
	depth := 0
	for index, character := range trimmedText {
		switch character {
		case typeOpening:
			depth++
		case typeClosing:
			depth--
			if depth == 0 {
				return splitTypes(trimmedText[1:index]), strings.TrimSpace(trimmedText[index+1:])
			}
		}
	}
	return splitTypes(trimmedText[1:]), ""
}

func splitTypes(typeExpression string) []string {
	var types []string
	for _, typeName := range strings.Split(typeExpression, typeSeparator) {
		trimmedName := strings.TrimSpace(typeName)
		if trimmedName != "" {
			types = append(types, trimmedName)
		}
	}
	return types
}

// normalizeParameterName unwraps "[name]" and "[name=default]".
func normalizeParameterName(name string) (string, bool) {
	if !strings.HasPrefix(name, optionalOpening) || !strings.HasSuffix(name, optionalClosing) {
		return name, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(name, optionalOpening), optionalClosing)
	if separatorIndex := strings.Index(inner, defaultValueMarker); separatorIndex >= 0 {
		inner = inner[:separatorIndex]
	}
	return strings.TrimSpace(inner), true
}

func nextWord(text string) (string, string) {
	trimmedText := strings.TrimLeftFunc(text, unicode.IsSpace)
	wordEnd := strings.IndexFunc(trimmedText, unicode.IsSpace)
	if wordEnd < 0 {
		return trimmedText, ""
	}
	return trimmedText[:wordEnd], strings.TrimSpace(trimmedText[wordEnd:])
}

func hasURLPrefix(text string) bool {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
