// Package generator runs the documentation pipeline: discover sources, build a model per file,
// render each page, then render the table of contents.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/apidoc/internal/discovery"
	"github.com/temirov/apidoc/internal/docs"
	"github.com/temirov/apidoc/internal/templates"
	"github.com/temirov/apidoc/internal/types"
	"github.com/temirov/apidoc/internal/utils"
)

const (
	directoryPermissions = 0o755
	pagePermissions      = 0o644

	writeFileFormat  = "write %s: %w"
	renderPageFormat = "render %s: %w"

	directoryCreateFailedMessage = "output directory could not be created"
	pageWrittenMessage           = "page written"
	tableOfContentsMessage       = "table of contents written"
	sourcesDiscoveredMessage     = "sources discovered"

	sourceLogField = "source"
	outputLogField = "output"
	countLogField  = "count"
	errorLogField  = "error"
)

// DirectoryCreateError reports an output directory that could not be created.
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (directoryCreateError *DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", directoryCreateError.Path, directoryCreateError.Err)
}

func (directoryCreateError *DirectoryCreateError) Unwrap() error {
	return directoryCreateError.Err
}

// EnsureDirectory creates directoryPath and any missing ancestors. An existing directory is not an error.
func EnsureDirectory(directoryPath string) error {
	if makeError := os.MkdirAll(directoryPath, directoryPermissions); makeError != nil {
		return &DirectoryCreateError{Path: directoryPath, Err: makeError}
	}
	return nil
}

// Generate renders one page per discovered source file and a table of contents into options.Output.
// Discovery, template and write failures stop the run; per-file model failures do not.
func Generate(options Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	options = options.WithDefaults()

	pageTemplate, pageTemplateError := templates.LoadOrDefault(options.PageTemplate, templates.DefaultPage)
	if pageTemplateError != nil {
		return pageTemplateError
	}
	tocTemplate, tocTemplateError := templates.LoadOrDefault(options.TocTemplate, templates.DefaultTOC)
	if tocTemplateError != nil {
		return tocTemplateError
	}

	files, discoverError := options.Discover()
	if discoverError != nil {
		return discoverError
	}
	logger.Info(sourcesDiscoveredMessage, zap.Int(countLogField, len(files)))

	if directoryError := EnsureDirectory(options.Output); directoryError != nil {
		var directoryCreateError *DirectoryCreateError
		if !errors.As(directoryError, &directoryCreateError) {
			return directoryError
		}
		logger.Warn(directoryCreateFailedMessage, zap.String(outputLogField, directoryCreateError.Path), zap.NamedError(errorLogField, directoryCreateError.Err))
	}

	builder := docs.NewBuilder(logger)
	documents := make([]types.TocEntry, 0, len(files))
	for _, sourcePath := range files {
		outputPath := docs.OutputFileName(options.Output, sourcePath)
		rendered, renderError := pageTemplate.Render(builder.BuildModel(sourcePath))
		if renderError != nil {
			return fmt.Errorf(renderPageFormat, sourcePath, renderError)
		}
		if writeError := writePage(outputPath, rendered); writeError != nil {
			return writeError
		}
		logger.Info(pageWrittenMessage, zap.String(sourceLogField, sourcePath), zap.String(outputLogField, outputPath))
		documents = append(documents, newTocEntry(sourcePath, outputPath, len(rendered)))
	}

	tableOfContents := types.TableOfContents{
		Title:     options.Title,
		Documents: documents,
		Files:     files,
		Index:     discovery.BuildIndex(files),
	}
	renderedTableOfContents, tocRenderError := tocTemplate.Render(tableOfContents)
	if tocRenderError != nil {
		return fmt.Errorf(renderPageFormat, TableOfContentsFile, tocRenderError)
	}
	tocPath := filepath.Join(options.Output, TableOfContentsFile)
	if writeError := writePage(tocPath, renderedTableOfContents); writeError != nil {
		return writeError
	}
	logger.Info(tableOfContentsMessage, zap.String(outputLogField, tocPath), zap.Int(countLogField, len(documents)))
	return nil
}

func writePage(outputPath string, content string) error {
	if writeError := os.WriteFile(outputPath, []byte(content), pagePermissions); writeError != nil {
		return fmt.Errorf(writeFileFormat, outputPath, writeError)
	}
	return nil
}

func newTocEntry(sourcePath string, outputPath string, renderedLength int) types.TocEntry {
	entry := types.TocEntry{
		Title:    utils.TrimExtension(sourcePath),
		File:     filepath.Base(sourcePath),
		Filename: sourcePath,
		Href:     filepath.Base(outputPath),
		Size:     utils.FormatFileSize(int64(renderedLength)),
	}
	if fileInformation, statError := os.Stat(sourcePath); statError == nil {
		entry.LastModified = utils.FormatTimestamp(fileInformation.ModTime())
	}
	return entry
}
