package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/temirov/apidoc/internal/config"
)

const (
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write the default configuration to ./config.yaml, or to ~/.apidoc/config.yaml
with --global. Existing files are kept unless --force is given.`
	globalFlagName        = "global"
	globalFlagDescription = "write the global configuration instead of the local one"
	forceFlagName         = "force"
	forceFlagDescription  = "overwrite an existing configuration file"
	configurationWritten  = "configuration written to %s"

	docsUse              = "gen-docs"
	docsShortDescription = "write Markdown reference pages for every command"
	dirFlagName          = "dir"
	dirFlagDescription   = "directory receiving the Markdown pages"
	defaultDocsDirectory = "docs/cli"
	createDocsDirFormat  = "create %s: %w"
)

func (app *application) newInitCommand() *cobra.Command {
	var global, force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			return writeLine(command.OutOrStdout(), fmt.Sprintf(configurationWritten, writtenPath))
		},
	}

	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

func newDocsCommand(rootCommand *cobra.Command) *cobra.Command {
	var targetDirectory string

	docsCommand := &cobra.Command{
		Use:   docsUse,
		Short: docsShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			if makeError := os.MkdirAll(targetDirectory, 0o755); makeError != nil {
				return fmt.Errorf(createDocsDirFormat, targetDirectory, makeError)
			}
			return cobradoc.GenMarkdownTree(rootCommand, targetDirectory)
		},
	}
	docsCommand.Flags().StringVar(&targetDirectory, dirFlagName, defaultDocsDirectory, dirFlagDescription)
	return docsCommand
}
