package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/temirov/apidoc/internal/utils"
)

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate and blank patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"node_modules", "/poo/", "node_modules"},
			expected: []string{"node_modules", "/poo/"},
		},
		{
			testName: "drops blanks",
			patterns: []string{" ", "shark.js", ""},
			expected: []string{"shark.js"},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestTrimExtension verifies that the final segment loses only its extension.
func TestTrimExtension(testingInstance *testing.T) {
	testCases := map[string]string{
		"lib/blah.js":     "blah",
		"a/b/c/d.js":      "d",
		"dog.js":          "dog",
		"adv-math.min.js": "adv-math.min",
		"README":          "README",
	}
	for input, expected := range testCases {
		if actual := utils.TrimExtension(input); actual != expected {
			testingInstance.Errorf("TrimExtension(%q): expected %q, got %q", input, expected, actual)
		}
	}
}

// TestRelativePathOrSelf verifies relative path calculations.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	nestedPath := filepath.Join(temporaryRoot, "lib", "math.js")
	if makeError := os.MkdirAll(filepath.Dir(nestedPath), 0o755); makeError != nil {
		testingInstance.Fatalf("failed to create directory: %v", makeError)
	}
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{testName: "root path returns dot", fullPath: temporaryRoot, root: temporaryRoot, expected: "."},
		{testName: "nested path returns slash form", fullPath: nestedPath, root: temporaryRoot, expected: "lib/math.js"},
		{testName: "path outside root returns itself", fullPath: temporaryRoot, root: filepath.Dir(nestedPath), expected: filepath.Clean(temporaryRoot)},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestFormatFileSize verifies the compact size rendering used in the table of contents.
func TestFormatFileSize(testingInstance *testing.T) {
	testCases := []struct {
		byteCount int64
		expected  string
	}{
		{byteCount: -1, expected: "0b"},
		{byteCount: 512, expected: "512b"},
		{byteCount: 1024, expected: "1kb"},
		{byteCount: 1536, expected: "1.5kb"},
		{byteCount: 10 * 1024 * 1024, expected: "10mb"},
	}
	for _, testCase := range testCases {
		if actual := utils.FormatFileSize(testCase.byteCount); actual != testCase.expected {
			testingInstance.Errorf("FormatFileSize(%d): expected %s, got %s", testCase.byteCount, testCase.expected, actual)
		}
	}
}

// TestFormatTimestamp verifies minute-precision timestamps and the empty zero value.
func TestFormatTimestamp(testingInstance *testing.T) {
	if actual := utils.FormatTimestamp(time.Time{}); actual != "" {
		testingInstance.Fatalf("expected empty string for zero time, got %q", actual)
	}
	localTime := time.Date(2024, time.January, 2, 15, 4, 59, 0, time.Local)
	if actual := utils.FormatTimestamp(localTime); actual != "2024-01-02 15:04" {
		testingInstance.Fatalf("unexpected timestamp %q", actual)
	}
}

// TestNewApplicationLoggerQuiet verifies that a quiet logger suppresses informational output.
func TestNewApplicationLoggerQuiet(testingInstance *testing.T) {
	quietLogger, loggerError := utils.NewApplicationLogger(true)
	if loggerError != nil {
		testingInstance.Fatalf("NewApplicationLogger failed: %v", loggerError)
	}
	if quietLogger.Core().Enabled(-1) {
		testingInstance.Fatalf("expected debug level to be disabled")
	}
	if quietLogger.Core().Enabled(0) {
		testingInstance.Fatalf("expected info level to be disabled for a quiet logger")
	}
	verboseLogger, verboseError := utils.NewApplicationLogger(false)
	if verboseError != nil {
		testingInstance.Fatalf("NewApplicationLogger failed: %v", verboseError)
	}
	if !verboseLogger.Core().Enabled(0) {
		testingInstance.Fatalf("expected info level to be enabled")
	}
}
