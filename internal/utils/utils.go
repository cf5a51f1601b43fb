// Package utils contains general helper functions used across the apidoc tool.
package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept. Blank patterns are dropped.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; !exists {
			encounteredPatterns[trimmedPattern] = struct{}{}
			result = append(result, trimmedPattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// TrimExtension returns the final path segment without its extension,
// so "lib/blah.js" becomes "blah".
func TrimExtension(filePath string) string {
	baseName := filepath.Base(filePath)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}

// RelativePathOrSelf calculates the slash-separated relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails or escapes root.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absolutePath, pathError := filepath.Abs(cleanPath)
	if pathError != nil {
		return cleanPath
	}
	absoluteRoot, rootError := filepath.Abs(root)
	if rootError != nil {
		return cleanPath
	}
	if absolutePath == filepath.Clean(absoluteRoot) {
		return "."
	}
	relativePath, relError := filepath.Rel(absoluteRoot, absolutePath)
	if relError != nil || relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(filepath.Separator)) {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}
