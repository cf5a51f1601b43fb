// Package docs reshapes parsed documentation comments into the per-file model rendered by page templates.
package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/apidoc/internal/jsdoc"
	"github.com/temirov/apidoc/internal/types"
	"github.com/temirov/apidoc/internal/utils"
)

const (
	htmlFileExtension    = ".html"
	modelBuildFailedText = "documentation model degraded"
	pathLogField         = "path"
)

// CommentParser turns raw source text into documentation comments.
type CommentParser func(source []byte) ([]jsdoc.Comment, error)

// ModelBuildError reports a file whose comments could not be read or parsed.
// The builder logs it and continues with a reduced model.
type ModelBuildError struct {
	Path string
	Err  error
}

func (modelBuildError *ModelBuildError) Error() string {
	return fmt.Sprintf("build documentation model for %s: %v", modelBuildError.Path, modelBuildError.Err)
}

func (modelBuildError *ModelBuildError) Unwrap() error {
	return modelBuildError.Err
}

// Builder reads source files and produces document models.
type Builder struct {
	logger *zap.Logger
	parse  CommentParser
}

// NewBuilder creates a Builder backed by the JavaScript comment parser.
func NewBuilder(logger *zap.Logger) *Builder {
	return NewBuilderWithParser(logger, jsdoc.Parse)
}

// NewBuilderWithParser creates a Builder using parse as the comment parser.
func NewBuilderWithParser(logger *zap.Logger, parse CommentParser) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parse == nil {
		parse = jsdoc.Parse
	}
	return &Builder{logger: logger, parse: parse}
}

// BuildModel reads filePath and returns its document model. Read and parse failures are logged
// and yield a model carrying only the title, file and filename, so one bad file never stops a run.
func (builder *Builder) BuildModel(filePath string) types.DocumentModel {
	model := types.DocumentModel{
		Title:    utils.TrimExtension(filePath),
		File:     filepath.Base(filePath),
		Filename: filePath,
	}

	comments, buildError := builder.readComments(filePath)
	if buildError != nil {
		builder.logger.Warn(modelBuildFailedText, zap.String(pathLogField, filePath), zap.Error(buildError))
		return model
	}

	if len(comments) > 0 && comments[0].ContextType() == jsdoc.ContextDeclaration {
		head := comments[0]
		model.Head = &head
		comments = comments[1:]
	}

	model.Functions = make([]types.FunctionRecord, 0, len(comments))
	for _, comment := range comments {
		model.Functions = append(model.Functions, newFunctionRecord(comment))
	}
	return model
}

// #nosec G304
func (builder *Builder) readComments(filePath string) ([]jsdoc.Comment, error) {
	source, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil, &ModelBuildError{Path: filePath, Err: readError}
	}
	comments, parseError := builder.parse(source)
	if parseError != nil {
		return nil, &ModelBuildError{Path: filePath, Err: parseError}
	}
	return comments, nil
}

// newFunctionRecord groups parameter tags in order and keeps the last return tag.
func newFunctionRecord(comment jsdoc.Comment) types.FunctionRecord {
	record := types.FunctionRecord{Comment: comment}
	for tagIndex := range comment.Tags {
		tag := comment.Tags[tagIndex]
		if tag.Type == jsdoc.TagParam {
			record.Params = append(record.Params, tag)
		}
		if tag.IsReturn() {
			record.Returns = &tag
		}
	}
	return record
}

// OutputFileName places the page for sourcePath under outputDirectory, swapping the source suffix for ".html".
func OutputFileName(outputDirectory string, sourcePath string) string {
	return filepath.Join(outputDirectory, utils.TrimExtension(sourcePath)+htmlFileExtension)
}
