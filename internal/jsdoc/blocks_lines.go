//go:build !cgo

package jsdoc

import (
	"regexp"
	"strings"
)

var commentBlockExpression = regexp.MustCompile(`(?s)/\*\*(?:[^/].*?)?\*/`)

// extractBlocks locates comment blocks with a regular expression when the tree-sitter
// grammar cannot be linked. The code of a block runs until the next block.
func extractBlocks(source []byte) ([]rawBlock, error) {
	text := string(source)
	locations := commentBlockExpression.FindAllStringIndex(text, -1)
	blocks := make([]rawBlock, 0, len(locations))
	for index, location := range locations {
		codeEnd := len(text)
		if index+1 < len(locations) {
			codeEnd = locations[index+1][0]
		}
		code := strings.TrimSpace(text[location[1]:codeEnd])
		blocks = append(blocks, rawBlock{
			text:    text[location[0]:location[1]],
			line:    strings.Count(text[:location[0]], "\n") + 1,
			code:    code,
			context: contextFromCode(code),
		})
	}
	return blocks, nil
}
