package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/apidoc/internal/discovery"
	"github.com/temirov/apidoc/internal/docs"
	"github.com/temirov/apidoc/internal/types"
	"github.com/temirov/apidoc/internal/utils"
)

const (
	filesUse              = "files [paths...]"
	filesAlias            = "f"
	filesShortDescription = "list the source files generate would document (" + filesAlias + ")"
	filesLongDescription  = `Walk the given paths with the configured exclusions and print the matching
files in discovery order. Use --format to select raw or json output and --copy to
place the listing on the clipboard.`
	filesUsageExample = `  # List sources as JSON
  apidoc files --format json lib

  # Copy the listing
  apidoc files --copy`

	indexUse              = "index [paths...]"
	indexShortDescription = "print the short name to path lookup table as JSON"
	indexLongDescription  = `Walk the given paths and print a JSON object mapping every file's basename,
with and without its suffix, to its path. Later files overwrite earlier ones.`

	modelUse              = "model <file>"
	modelShortDescription = "print the document model of one source file as JSON"
	modelLongDescription  = `Parse a single source file and print the document model handed to page
templates. Useful when writing a custom --page-template.`

	formatFlagName        = "format"
	formatFlagDescription = "output format (raw or json)"
	copyFlagName          = "copy"
	copyFlagDescription   = "copy the output to the clipboard"

	invalidFormatMessage  = "invalid format value '%s'"
	encodeJSONFormat      = "encode %s: %w"
	clipboardCopyFormat   = "copy to clipboard: %w"
	clipboardCopiedText   = "listing copied to clipboard"
	jsonIndentation       = "  "
	fileListDescription   = "file list"
	nameIndexDescription  = "name index"
	documentModelSubject  = "document model"
	fileCountLogFieldName = "count"
)

var supportedListingFormats = []string{types.FormatRaw, types.FormatJSON}

func (app *application) newFilesCommand() *cobra.Command {
	var flags discoveryFlags
	var outputFormat string
	var copyEnabled bool

	filesCommand := &cobra.Command{
		Use:     filesUse,
		Aliases: []string{filesAlias},
		Short:   filesShortDescription,
		Long:    filesLongDescription,
		Example: filesUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			outputFormatLower := strings.ToLower(strings.TrimSpace(outputFormat))
			if !utils.ContainsString(supportedListingFormats, outputFormatLower) {
				return fmt.Errorf(invalidFormatMessage, outputFormat)
			}
			options, optionsError := app.resolveOptions(command, arguments, &flags)
			if optionsError != nil {
				return optionsError
			}
			files, discoverError := options.Discover()
			if discoverError != nil {
				return discoverError
			}
			listing, renderError := renderFileList(files, outputFormatLower)
			if renderError != nil {
				return renderError
			}
			if copyEnabled && app.copier != nil {
				if copyError := app.copier.Copy(listing); copyError != nil {
					return fmt.Errorf(clipboardCopyFormat, copyError)
				}
				app.logger.Info(clipboardCopiedText, zap.Int(fileCountLogFieldName, len(files)))
			}
			return writeLine(command.OutOrStdout(), listing)
		},
	}

	flags.register(filesCommand)
	filesCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerBooleanFlag(filesCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return filesCommand
}

func (app *application) newIndexCommand() *cobra.Command {
	var flags discoveryFlags

	indexCommand := &cobra.Command{
		Use:   indexUse,
		Short: indexShortDescription,
		Long:  indexLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			options, optionsError := app.resolveOptions(command, arguments, &flags)
			if optionsError != nil {
				return optionsError
			}
			files, discoverError := options.Discover()
			if discoverError != nil {
				return discoverError
			}
			encoded, encodeError := encodeJSON(discovery.BuildIndex(files), nameIndexDescription)
			if encodeError != nil {
				return encodeError
			}
			return writeLine(command.OutOrStdout(), encoded)
		},
	}

	flags.register(indexCommand)
	return indexCommand
}

func (app *application) newModelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   modelUse,
		Short: modelShortDescription,
		Long:  modelLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			model := docs.NewBuilder(app.logger).BuildModel(arguments[0])
			encoded, encodeError := encodeJSON(model, documentModelSubject)
			if encodeError != nil {
				return encodeError
			}
			return writeLine(command.OutOrStdout(), encoded)
		},
	}
}

func renderFileList(files types.FileList, format string) (string, error) {
	if format == types.FormatJSON {
		if files == nil {
			files = types.FileList{}
		}
		return encodeJSON(files, fileListDescription)
	}
	return strings.Join(files, "\n"), nil
}

func encodeJSON(value any, subject string) (string, error) {
	encoded, marshalError := json.MarshalIndent(value, "", jsonIndentation)
	if marshalError != nil {
		return "", fmt.Errorf(encodeJSONFormat, subject, marshalError)
	}
	return string(encoded), nil
}
