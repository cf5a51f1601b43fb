package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/temirov/apidoc/internal/discovery"
	"github.com/temirov/apidoc/internal/types"
	"github.com/temirov/apidoc/internal/utils"
)

const (
	DefaultOutputDirectory = "public/docs"
	DefaultTitle           = "API Documentation"
	TableOfContentsFile    = "toc.html"

	invalidPatternFormat = "invalid source pattern %q: %w"
)

// DefaultExclude lists the rules applied when none are configured.
var DefaultExclude = []string{utils.DependencyCacheDirectoryName}

// Options controls a documentation run. Zero values fall back to the defaults.
type Options struct {
	Include      []string
	Exclude      []string
	Output       string
	PageTemplate string
	TocTemplate  string
	Pattern      string
	UseGitignore bool
	Title        string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Include: []string{discovery.DefaultRoot},
		Exclude: append([]string(nil), DefaultExclude...),
		Output:  DefaultOutputDirectory,
		Pattern: discovery.DefaultSourcePattern.String(),
		Title:   DefaultTitle,
	}
}

// WithDefaults fills every unset field from DefaultOptions.
func (options Options) WithDefaults() Options {
	defaults := DefaultOptions()
	options.Include = nonBlank(options.Include)
	if len(options.Include) == 0 {
		options.Include = defaults.Include
	}
	if options.Exclude == nil {
		options.Exclude = defaults.Exclude
	}
	if strings.TrimSpace(options.Output) == "" {
		options.Output = defaults.Output
	}
	if strings.TrimSpace(options.Pattern) == "" {
		options.Pattern = defaults.Pattern
	}
	if strings.TrimSpace(options.Title) == "" {
		options.Title = defaults.Title
	}
	return options
}

// Rules builds the exclusion rule set for the options, adding one ignore-file rule per root when enabled.
func (options Options) Rules() (discovery.RuleSet, error) {
	rules, parseError := discovery.ParseRules(options.Exclude)
	if parseError != nil {
		return nil, parseError
	}
	if !options.UseGitignore {
		return rules, nil
	}
	ignoreRules, ignoreError := discovery.IgnoreFileRules(options.Include, utils.GitIgnoreFileName)
	if ignoreError != nil {
		return nil, ignoreError
	}
	return append(rules, ignoreRules...), nil
}

// SourcePattern compiles the configured source file pattern.
func (options Options) SourcePattern() (*regexp.Regexp, error) {
	compiled, compileError := regexp.Compile(options.Pattern)
	if compileError != nil {
		return nil, fmt.Errorf(invalidPatternFormat, options.Pattern, compileError)
	}
	return compiled, nil
}

// Discover lists the source files selected by the options.
func (options Options) Discover() (types.FileList, error) {
	pattern, patternError := options.SourcePattern()
	if patternError != nil {
		return nil, patternError
	}
	rules, rulesError := options.Rules()
	if rulesError != nil {
		return nil, rulesError
	}
	return discovery.Collect(pattern, options.Include, rules)
}

// nonBlank trims entries and drops empty ones. Repeated roots are kept, so they are walked again.
func nonBlank(values []string) []string {
	var kept []string
	for _, value := range values {
		if trimmedValue := strings.TrimSpace(value); trimmedValue != "" {
			kept = append(kept, trimmedValue)
		}
	}
	return kept
}
