package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func mustPatternRule(testingHandle *testing.T, expression string) PatternRule {
	testingHandle.Helper()
	rule, ruleError := NewPatternRule(expression)
	if ruleError != nil {
		testingHandle.Fatalf("NewPatternRule(%q) failed: %v", expression, ruleError)
	}
	return rule
}

// TestIsExcluded covers literal and pattern rules against single names.
func TestIsExcluded(testingHandle *testing.T) {
	testCases := []struct {
		testName      string
		candidatePath string
		rules         RuleSet
		expected      bool
	}{
		{
			testName:      "literal in the set",
			candidatePath: "bob",
			rules:         RuleSet{LiteralRule{Name: "bob"}, LiteralRule{Name: "dog"}},
			expected:      true,
		},
		{
			testName:      "literal not in the set",
			candidatePath: "bob",
			rules:         RuleSet{LiteralRule{Name: "cat"}, LiteralRule{Name: "dog"}},
			expected:      false,
		},
		{
			testName:      "positive pattern among literals",
			candidatePath: "bob.js",
			rules:         RuleSet{LiteralRule{Name: "gunk"}, mustPatternRule(testingHandle, `.js$`), LiteralRule{Name: "test"}},
			expected:      true,
		},
		{
			testName:      "no pattern matches",
			candidatePath: "bob.js",
			rules:         RuleSet{mustPatternRule(testingHandle, `bobo+`), mustPatternRule(testingHandle, `.c$`)},
			expected:      false,
		},
		{
			testName:      "single rule",
			candidatePath: "bob.js",
			rules:         RuleSet{mustPatternRule(testingHandle, `.js$`)},
			expected:      true,
		},
		{
			testName:      "empty rule set",
			candidatePath: "bob.js",
			rules:         RuleSet{},
			expected:      false,
		},
		{
			testName:      "nil rule set",
			candidatePath: "bob.js",
			rules:         nil,
			expected:      false,
		},
		{
			testName:      "literal compares only the basename",
			candidatePath: filepath.Join("zoo", "mammal", "dog.js"),
			rules:         RuleSet{LiteralRule{Name: "mammal"}},
			expected:      false,
		},
		{
			testName:      "literal matches a directory basename",
			candidatePath: filepath.Join("zoo", "mammal"),
			rules:         RuleSet{LiteralRule{Name: "mammal"}},
			expected:      true,
		},
		{
			testName:      "pattern sees the full path",
			candidatePath: filepath.Join("zoo", "mammal", "dog.js"),
			rules:         RuleSet{mustPatternRule(testingHandle, `mammal`)},
			expected:      true,
		},
		{
			testName:      "nil rule is skipped",
			candidatePath: "bob.js",
			rules:         RuleSet{nil, LiteralRule{Name: "bob.js"}},
			expected:      true,
		},
	}
	for index, testCase := range testCases {
		actual := IsExcluded(testCase.candidatePath, testCase.rules)
		if actual != testCase.expected {
			testingHandle.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestParseRule verifies that slash-delimited text becomes a pattern and everything else a literal.
func TestParseRule(testingHandle *testing.T) {
	testCases := []struct {
		text            string
		expectedPattern bool
		expectedString  string
	}{
		{text: "/poo/", expectedPattern: true, expectedString: "/poo/"},
		{text: `/\.min\.js$/`, expectedPattern: true, expectedString: `/\.min\.js$/`},
		{text: "shark.js", expectedPattern: false, expectedString: "shark.js"},
		{text: " mammal ", expectedPattern: false, expectedString: "mammal"},
		{text: "//", expectedPattern: false, expectedString: "//"},
		{text: "/", expectedPattern: false, expectedString: "/"},
	}
	for _, testCase := range testCases {
		rule, parseError := ParseRule(testCase.text)
		if parseError != nil {
			testingHandle.Fatalf("ParseRule(%q) failed: %v", testCase.text, parseError)
		}
		_, isPattern := rule.(PatternRule)
		if isPattern != testCase.expectedPattern {
			testingHandle.Errorf("ParseRule(%q): expected pattern=%t, got %t", testCase.text, testCase.expectedPattern, isPattern)
		}
		if rule.String() != testCase.expectedString {
			testingHandle.Errorf("ParseRule(%q): expected %q, got %q", testCase.text, testCase.expectedString, rule.String())
		}
	}
}

// TestParseRulesRejectsInvalidPattern verifies that a broken expression surfaces as an error.
func TestParseRulesRejectsInvalidPattern(testingHandle *testing.T) {
	if _, parseError := ParseRules([]string{"node_modules", "/([a-z/"}); parseError == nil {
		testingHandle.Fatalf("expected an error for an invalid expression")
	}
	rules, parseError := ParseRules([]string{"node_modules", "", "/poo/"})
	if parseError != nil {
		testingHandle.Fatalf("ParseRules failed: %v", parseError)
	}
	if len(rules) != 2 {
		testingHandle.Fatalf("expected blank rules to be skipped, got %d rules", len(rules))
	}
}

// TestIgnoreFileRule verifies gitignore semantics relative to the ignore file's directory.
func TestIgnoreFileRule(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, ".gitignore")
	if writeError := os.WriteFile(ignoreFilePath, []byte("*.min.js\nbuild/\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write ignore file: %v", writeError)
	}
	rule, loadError := LoadIgnoreFileRule(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFileRule failed: %v", loadError)
	}
	testCases := map[string]bool{
		filepath.Join(rootDirectory, "app.min.js"):           true,
		filepath.Join(rootDirectory, "lib", "vendor.min.js"): true,
		filepath.Join(rootDirectory, "build", "bundle.js"):   true,
		filepath.Join(rootDirectory, "lib", "app.js"):        false,
		rootDirectory: false,
		filepath.Join(filepath.Dir(rootDirectory), "x.min.js"): false,
	}
	for candidatePath, expected := range testCases {
		if actual := rule.Matches(candidatePath); actual != expected {
			testingHandle.Errorf("Matches(%s): expected %t, got %t", candidatePath, expected, actual)
		}
	}
	if rule.String() != ignoreFilePath {
		testingHandle.Errorf("expected rule to describe its source %s, got %s", ignoreFilePath, rule.String())
	}
}

// TestPatternRuleZeroValue verifies that an uncompiled pattern matches nothing.
func TestPatternRuleZeroValue(testingHandle *testing.T) {
	var rule PatternRule
	if rule.Matches("anything.js") {
		testingHandle.Fatalf("zero PatternRule must not match")
	}
	compiled := PatternRule{Expression: regexp.MustCompile(`any`)}
	if !compiled.Matches("anything.js") {
		testingHandle.Fatalf("compiled PatternRule must match")
	}
}
