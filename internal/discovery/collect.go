package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/temirov/apidoc/internal/types"
)

// DefaultRoot is scanned when no roots are configured.
const DefaultRoot = "."

// DefaultSourcePattern selects JavaScript sources.
var DefaultSourcePattern = regexp.MustCompile(`\.js$`)

// All returns every JavaScript file under roots that survives the exclusion rules.
// Roots default to the current directory.
func All(roots []string, rules RuleSet) (types.FileList, error) {
	if len(roots) == 0 {
		roots = []string{DefaultRoot}
	}
	return Collect(DefaultSourcePattern, roots, rules)
}

// Collect walks roots depth first and returns the regular files whose full path matches pattern
// and that no rule excludes. Files are appended at the point of visitation, so the result follows
// root order and then lexical directory order. Excluded directories are pruned without descending.
// A missing root yields a *DiscoveryError wrapping ErrNotFound.
func Collect(pattern *regexp.Regexp, roots []string, rules RuleSet) (types.FileList, error) {
	return collectFiles(pattern, roots, rules, "")
}

func collectFiles(pattern *regexp.Regexp, roots []string, rules RuleSet, parentDirectory string) (types.FileList, error) {
	var results types.FileList
	for _, root := range roots {
		candidatePath := root
		if parentDirectory != "" {
			candidatePath = filepath.Join(parentDirectory, root)
		}

		fileInformation, statError := os.Stat(candidatePath)
		if statError != nil {
			if errors.Is(statError, fs.ErrNotExist) {
				return nil, &DiscoveryError{Path: candidatePath, Err: ErrNotFound}
			}
			return nil, &DiscoveryError{Path: candidatePath, Err: statError}
		}

		switch {
		case fileInformation.IsDir():
			if IsExcluded(candidatePath, rules) {
				continue
			}
			childNames, listError := listDirectory(candidatePath)
			if listError != nil {
				return nil, &DiscoveryError{Path: candidatePath, Err: listError}
			}
			nestedResults, nestedError := collectFiles(pattern, childNames, rules, candidatePath)
			if nestedError != nil {
				return nil, nestedError
			}
			results = append(results, nestedResults...)
		case fileInformation.Mode().IsRegular():
			if pattern != nil && !pattern.MatchString(candidatePath) {
				continue
			}
			if IsExcluded(candidatePath, rules) {
				continue
			}
			results = append(results, candidatePath)
		}
	}
	return results, nil
}

// listDirectory returns the names of a directory's immediate children in lexical order.
func listDirectory(directoryPath string) ([]string, error) {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, readError
	}
	childNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		childNames = append(childNames, directoryEntry.Name())
	}
	return childNames, nil
}

// IgnoreFileRules loads a gitignore rule for every root directory that carries one.
// Roots without an ignore file contribute nothing.
func IgnoreFileRules(roots []string, ignoreFileName string) (RuleSet, error) {
	var rules RuleSet
	for _, root := range roots {
		ignoreFilePath := filepath.Join(root, ignoreFileName)
		fileInformation, statError := os.Stat(ignoreFilePath)
		if statError != nil {
			if errors.Is(statError, fs.ErrNotExist) {
				continue
			}
			return nil, &DiscoveryError{Path: ignoreFilePath, Err: statError}
		}
		if fileInformation.IsDir() {
			continue
		}
		rule, loadError := LoadIgnoreFileRule(ignoreFilePath)
		if loadError != nil {
			return nil, loadError
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
