// Package cli provides the command line interface.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/apidoc/internal/config"
	"github.com/temirov/apidoc/internal/generator"
	"github.com/temirov/apidoc/internal/services/clipboard"
	"github.com/temirov/apidoc/internal/utils"
)

const (
	rootUse              = "apidoc"
	rootShortDescription = "generate HTML reference pages from JavaScript documentation comments"
	rootLongDescription  = `apidoc walks source directories, parses /** ... */ documentation comments
from JavaScript files, and renders one HTML page per file plus a table of contents.
Use generate to write pages, files and index to inspect discovery, and model to see
the data handed to page templates.`
	versionTemplate = "apidoc version: {{.Version}}\n"

	quietFlagName         = "quiet"
	quietFlagDescription  = "log warnings and errors only"
	configFlagName        = "config"
	configFlagDescription = "configuration file to use instead of ./config.yaml"
)

// LoggerFactory creates the logger used by commands once flags are parsed.
type LoggerFactory func(quiet bool) (*zap.Logger, error)

// application holds the collaborators shared by every command.
type application struct {
	newLogger         LoggerFactory
	logger            *zap.Logger
	copier            clipboard.Copier
	quiet             bool
	configurationPath string
}

// Execute runs the apidoc application against the process arguments.
func Execute() error {
	rootCommand := NewRootCommand(utils.NewApplicationLogger, clipboard.NewService())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root command with its subcommands.
func NewRootCommand(newLogger LoggerFactory, copier clipboard.Copier) *cobra.Command {
	app := &application{newLogger: newLogger, copier: copier, logger: zap.NewNop()}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Version:      utils.GetApplicationVersion(),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return app.initializeLogger()
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	registerBooleanFlag(rootCommand.PersistentFlags(), &app.quiet, quietFlagName, false, quietFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.configurationPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(
		app.newGenerateCommand(),
		app.newFilesCommand(),
		app.newIndexCommand(),
		app.newModelCommand(),
		app.newInitCommand(),
		newDocsCommand(rootCommand),
	)
	return rootCommand
}

func (app *application) initializeLogger() error {
	if app.newLogger == nil {
		return nil
	}
	logger, loggerError := app.newLogger(app.quiet)
	if loggerError != nil {
		return loggerError
	}
	app.logger = logger
	return nil
}

// resolveOptions layers configuration files under the explicitly set flags of command.
func (app *application) resolveOptions(command *cobra.Command, arguments []string, flags *discoveryFlags) (generator.Options, error) {
	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: app.configurationPath})
	if loadError != nil {
		return generator.Options{}, loadError
	}
	options := configuration.Generate.Options()
	if len(arguments) > 0 {
		options.Include = append([]string(nil), arguments...)
	}
	flags.apply(command, &options)
	return options.WithDefaults(), nil
}

func writeLine(writer io.Writer, text string) error {
	_, writeError := io.WriteString(writer, text+"\n")
	return writeError
}
