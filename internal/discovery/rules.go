// Package discovery finds documentable source files under a set of roots
// and derives the short-name lookup table used for cross-document references.
package discovery

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/apidoc/internal/utils"
)

const (
	patternDelimiter        = "/"
	minimumDelimitedPattern = 2
)

// Rule decides whether a candidate path is excluded from discovery.
type Rule interface {
	Matches(candidatePath string) bool
	String() string
}

// RuleSet is an ordered collection of exclusion rules. A path is excluded when any rule matches.
type RuleSet []Rule

// LiteralRule matches the final segment of a path exactly.
// A literal equal to a directory name prunes that whole subtree.
type LiteralRule struct {
	Name string
}

// Matches compares the rule against the basename of candidatePath.
func (rule LiteralRule) Matches(candidatePath string) bool {
	return rule.Name == filepath.Base(candidatePath)
}

func (rule LiteralRule) String() string {
	return rule.Name
}

// PatternRule matches a regular expression against the full candidate path.
type PatternRule struct {
	Expression *regexp.Regexp
}

// NewPatternRule compiles expression into a PatternRule.
func NewPatternRule(expression string) (PatternRule, error) {
	compiled, compileError := regexp.Compile(expression)
	if compileError != nil {
		return PatternRule{}, fmt.Errorf("compile exclusion pattern %q: %w", expression, compileError)
	}
	return PatternRule{Expression: compiled}, nil
}

// Matches reports whether the expression matches anywhere in candidatePath.
func (rule PatternRule) Matches(candidatePath string) bool {
	if rule.Expression == nil {
		return false
	}
	return rule.Expression.MatchString(candidatePath)
}

func (rule PatternRule) String() string {
	if rule.Expression == nil {
		return patternDelimiter + patternDelimiter
	}
	return patternDelimiter + rule.Expression.String() + patternDelimiter
}

// IgnoreFileRule applies gitignore-syntax patterns relative to the directory holding the ignore file.
type IgnoreFileRule struct {
	BaseDirectory string
	SourcePath    string
	matcher       *ignore.GitIgnore
}

// LoadIgnoreFileRule compiles the gitignore-syntax file at ignoreFilePath.
//
// #nosec G304
func LoadIgnoreFileRule(ignoreFilePath string) (*IgnoreFileRule, error) {
	matcher, compileError := ignore.CompileIgnoreFile(ignoreFilePath)
	if compileError != nil {
		return nil, fmt.Errorf("load ignore file %s: %w", ignoreFilePath, compileError)
	}
	return &IgnoreFileRule{
		BaseDirectory: filepath.Dir(ignoreFilePath),
		SourcePath:    ignoreFilePath,
		matcher:       matcher,
	}, nil
}

// Matches reports whether candidatePath, taken relative to the rule's base directory, is ignored.
// Paths outside the base directory never match.
func (rule *IgnoreFileRule) Matches(candidatePath string) bool {
	if rule == nil || rule.matcher == nil {
		return false
	}
	relativePath := utils.RelativePathOrSelf(candidatePath, rule.BaseDirectory)
	if relativePath == "." || filepath.IsAbs(relativePath) {
		return false
	}
	return rule.matcher.MatchesPath(relativePath)
}

func (rule *IgnoreFileRule) String() string {
	if rule.SourcePath != "" {
		return rule.SourcePath
	}
	return filepath.Join(rule.BaseDirectory, utils.GitIgnoreFileName)
}

// ParseRule converts a textual rule into a Rule. Text wrapped in slashes, such as "/poo/",
// becomes a PatternRule; anything else is a LiteralRule.
func ParseRule(text string) (Rule, error) {
	trimmedText := strings.TrimSpace(text)
	if len(trimmedText) > minimumDelimitedPattern &&
		strings.HasPrefix(trimmedText, patternDelimiter) &&
		strings.HasSuffix(trimmedText, patternDelimiter) {
		return NewPatternRule(trimmedText[1 : len(trimmedText)-1])
	}
	return LiteralRule{Name: trimmedText}, nil
}

// ParseRules converts every non-blank textual rule in order.
func ParseRules(texts []string) (RuleSet, error) {
	rules := make(RuleSet, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		rule, parseError := ParseRule(text)
		if parseError != nil {
			return nil, parseError
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// IsExcluded returns true on the first rule matching candidatePath.
// A nil or empty rule set excludes nothing.
func IsExcluded(candidatePath string, rules RuleSet) bool {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if rule.Matches(candidatePath) {
			return true
		}
	}
	return false
}
