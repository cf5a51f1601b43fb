package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/apidoc/internal/discovery"
	"github.com/temirov/apidoc/internal/types"
)

const documentedSource = `/**
 * Greets someone.
 *
 * @param {String} name who to greet
 * @returns {String} the greeting
 */
function greet(name) {
    return 'hello ' + name;
}
`

type recordingCopier struct {
	copied []string
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return nil
}

type commandResult struct {
	output    string
	err       error
	copier    *recordingCopier
	quietSeen []bool
}

// prepareWorkspace creates an isolated working directory and home directory with a small source tree.
func prepareWorkspace(t *testing.T) string {
	t.Helper()
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)
	workspace := t.TempDir()
	t.Chdir(workspace)
	for relativePath, content := range map[string]string{
		filepath.Join("lib", "greet.js"):               documentedSource,
		filepath.Join("lib", "util.js"):                "var x = 1;\n",
		filepath.Join("lib", "node_modules", "dep.js"): documentedSource,
		filepath.Join("lib", "README.md"):              "# lib\n",
		filepath.Join("lib", "generated", "bundle.js"): documentedSource,
		filepath.Join("lib", ".gitignore"):             "generated/\n",
	} {
		writeWorkspaceFile(t, relativePath, content)
	}
	return workspace
}

func writeWorkspaceFile(t *testing.T, relativePath string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(relativePath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(relativePath, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func runCommand(t *testing.T, arguments ...string) commandResult {
	t.Helper()
	result := commandResult{copier: &recordingCopier{}}
	loggerFactory := func(quiet bool) (*zap.Logger, error) {
		result.quietSeen = append(result.quietSeen, quiet)
		return zap.NewNop(), nil
	}
	rootCommand := NewRootCommand(loggerFactory, result.copier)
	var outputBuffer bytes.Buffer
	rootCommand.SetOut(&outputBuffer)
	rootCommand.SetErr(&outputBuffer)
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, arguments))
	result.err = rootCommand.Execute()
	result.output = outputBuffer.String()
	return result
}

func TestFilesCommandListsSources(t *testing.T) {
	prepareWorkspace(t)

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "default_exclusions",
			arguments: []string{"files", "lib"},
			expected:  []string{"lib/generated/bundle.js", "lib/greet.js", "lib/util.js"},
		},
		{
			name:      "gitignore_enabled",
			arguments: []string{"files", "--gitignore", "lib"},
			expected:  []string{"lib/greet.js", "lib/util.js"},
		},
		{
			name:      "explicit_exclusions_replace_defaults",
			arguments: []string{"files", "-e", "/util/", "lib"},
			expected:  []string{"lib/generated/bundle.js", "lib/greet.js", "lib/node_modules/dep.js"},
		},
		{
			name:      "custom_pattern",
			arguments: []string{"files", "--pattern", `\.md$`, "lib"},
			expected:  []string{"lib/README.md"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := runCommand(t, testCase.arguments...)
			if result.err != nil {
				t.Fatalf("files failed: %v", result.err)
			}
			lines := strings.Split(strings.TrimSpace(result.output), "\n")
			expected := make([]string, 0, len(testCase.expected))
			for _, path := range testCase.expected {
				expected = append(expected, filepath.FromSlash(path))
			}
			if !reflect.DeepEqual(lines, expected) {
				t.Fatalf("expected %v, got %v", expected, lines)
			}
		})
	}
}

func TestFilesCommandJSONAndClipboard(t *testing.T) {
	prepareWorkspace(t)

	result := runCommand(t, "files", "--format", "JSON", "--copy", "--gitignore", "lib")
	if result.err != nil {
		t.Fatalf("files failed: %v", result.err)
	}
	var listed []string
	if err := json.Unmarshal([]byte(result.output), &listed); err != nil {
		t.Fatalf("decode output %q: %v", result.output, err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected two files, got %v", listed)
	}
	if len(result.copier.copied) != 1 || result.copier.copied[0] != strings.TrimSpace(result.output) {
		t.Fatalf("expected the listing on the clipboard, got %v", result.copier.copied)
	}
}

func TestFilesCommandErrors(t *testing.T) {
	prepareWorkspace(t)

	if result := runCommand(t, "files", "--format", "xml", "lib"); result.err == nil {
		t.Fatalf("expected an unsupported format error")
	}
	result := runCommand(t, "files", "absent")
	if !errors.Is(result.err, discovery.ErrNotFound) {
		t.Fatalf("expected a not found error, got %v", result.err)
	}
}

func TestIndexCommandPrintsLookupTable(t *testing.T) {
	prepareWorkspace(t)

	result := runCommand(t, "index", "--gitignore", "lib")
	if result.err != nil {
		t.Fatalf("index failed: %v", result.err)
	}
	var index types.NameIndex
	if err := json.Unmarshal([]byte(result.output), &index); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	expected := types.NameIndex{
		"greet":    filepath.Join("lib", "greet.js"),
		"greet.js": filepath.Join("lib", "greet.js"),
		"util":     filepath.Join("lib", "util.js"),
		"util.js":  filepath.Join("lib", "util.js"),
	}
	if !reflect.DeepEqual(index, expected) {
		t.Fatalf("expected %v, got %v", expected, index)
	}
}

func TestModelCommandPrintsDocumentModel(t *testing.T) {
	prepareWorkspace(t)

	result := runCommand(t, "model", filepath.Join("lib", "greet.js"))
	if result.err != nil {
		t.Fatalf("model failed: %v", result.err)
	}
	var model struct {
		Title     string `json:"title"`
		Functions []struct {
			Params []struct {
				Name string `json:"name"`
			} `json:"params"`
		} `json:"functions"`
	}
	if err := json.Unmarshal([]byte(result.output), &model); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if model.Title != "greet" || len(model.Functions) != 1 || len(model.Functions[0].Params) != 1 || model.Functions[0].Params[0].Name != "name" {
		t.Fatalf("unexpected model %+v", model)
	}

	if missing := runCommand(t, "model"); missing.err == nil {
		t.Fatalf("expected an argument error")
	}
}

func TestGenerateCommandWritesPages(t *testing.T) {
	workspace := prepareWorkspace(t)

	result := runCommand(t, "generate", "--quiet", "--gitignore", "-o", "site", "--title", "Greeting API", "lib")
	if result.err != nil {
		t.Fatalf("generate failed: %v", result.err)
	}
	if !reflect.DeepEqual(result.quietSeen, []bool{true}) {
		t.Fatalf("expected a quiet logger, got %v", result.quietSeen)
	}
	for _, page := range []string{"greet.html", "util.html", "toc.html"} {
		if _, err := os.Stat(filepath.Join(workspace, "site", page)); err != nil {
			t.Errorf("expected %s: %v", page, err)
		}
	}
	if _, err := os.Stat(filepath.Join(workspace, "site", "bundle.html")); err == nil {
		t.Errorf("expected ignored sources to be skipped")
	}
	toc, err := os.ReadFile(filepath.Join(workspace, "site", "toc.html"))
	if err != nil || !strings.Contains(string(toc), "Greeting API") {
		t.Fatalf("expected the custom title in the table of contents, got %v", err)
	}
}

func TestGenerateCommandReadsConfiguration(t *testing.T) {
	workspace := prepareWorkspace(t)
	writeWorkspaceFile(t, "config.yaml", "generate:\n  include: [lib]\n  output: from-config\n  use_gitignore: true\n")
	writeWorkspaceFile(t, "alternate.yaml", "generate:\n  include: [lib]\n  output: from-alternate\n")

	if result := runCommand(t, "generate"); result.err != nil {
		t.Fatalf("generate failed: %v", result.err)
	}
	if _, err := os.Stat(filepath.Join(workspace, "from-config", "toc.html")); err != nil {
		t.Fatalf("expected output in the configured directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workspace, "from-config", "bundle.html")); err == nil {
		t.Fatalf("expected use_gitignore from configuration to apply")
	}

	if result := runCommand(t, "generate", "--config", "alternate.yaml", "--gitignore=false", "-o", "from-flag"); result.err != nil {
		t.Fatalf("generate failed: %v", result.err)
	}
	if _, err := os.Stat(filepath.Join(workspace, "from-flag", "bundle.html")); err != nil {
		t.Fatalf("expected flags to override configuration: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workspace, "from-alternate")); err == nil {
		t.Fatalf("expected the output flag to win over the alternate configuration")
	}
}

func TestInitCommandWritesConfiguration(t *testing.T) {
	workspace := prepareWorkspace(t)

	first := runCommand(t, "init")
	if first.err != nil {
		t.Fatalf("init failed: %v", first.err)
	}
	if !strings.Contains(first.output, filepath.Join(workspace, "config.yaml")) {
		t.Fatalf("expected the written path, got %q", first.output)
	}
	if second := runCommand(t, "init"); second.err == nil {
		t.Fatalf("expected init to refuse overwriting")
	}
	if forced := runCommand(t, "init", "--force"); forced.err != nil {
		t.Fatalf("forced init failed: %v", forced.err)
	}
	if global := runCommand(t, "init", "--global"); global.err != nil {
		t.Fatalf("global init failed: %v", global.err)
	}
}

func TestGenerateDocsCommandWritesMarkdown(t *testing.T) {
	workspace := prepareWorkspace(t)

	result := runCommand(t, "gen-docs", "--dir", "reference")
	if result.err != nil {
		t.Fatalf("gen-docs failed: %v", result.err)
	}
	for _, page := range []string{"apidoc.md", "apidoc_generate.md", "apidoc_files.md"} {
		if _, err := os.Stat(filepath.Join(workspace, "reference", page)); err != nil {
			t.Errorf("expected %s: %v", page, err)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	result := runCommand(t, "--version")
	if result.err != nil {
		t.Fatalf("version failed: %v", result.err)
	}
	if !strings.HasPrefix(result.output, "apidoc version: ") {
		t.Fatalf("unexpected version output %q", result.output)
	}
}
