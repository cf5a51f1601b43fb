package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/apidoc/internal/generator"
)

const (
	generateUse              = "generate [paths...]"
	generateAlias            = "g"
	generateShortDescription = "render documentation pages and a table of contents (" + generateAlias + ")"
	generateLongDescription  = `Walk the given paths (the current directory by default), build a document
model for every matching source file, and render it with the page template.
A table of contents named toc.html is written next to the pages.`
	generateUsageExample = `  # Document ./lib into ./public/docs
  apidoc generate lib

  # Skip test files and write elsewhere
  apidoc generate -e '/_test\.js$/' -o site/api .`
)

func (app *application) newGenerateCommand() *cobra.Command {
	var flags discoveryFlags
	var output, pageTemplate, tocTemplate, title string

	generateCommand := &cobra.Command{
		Use:     generateUse,
		Aliases: []string{generateAlias},
		Short:   generateShortDescription,
		Long:    generateLongDescription,
		Example: generateUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			options, optionsError := app.resolveOptions(command, arguments, &flags)
			if optionsError != nil {
				return optionsError
			}
			if command.Flags().Changed(outputFlagName) {
				options.Output = output
			}
			if command.Flags().Changed(pageTemplateFlagName) {
				options.PageTemplate = pageTemplate
			}
			if command.Flags().Changed(tocTemplateFlagName) {
				options.TocTemplate = tocTemplate
			}
			if command.Flags().Changed(titleFlagName) {
				options.Title = title
			}
			return generator.Generate(options.WithDefaults(), app.logger)
		},
	}

	flags.register(generateCommand)
	generateCommand.Flags().StringVarP(&output, outputFlagName, outputFlagShorthand, generator.DefaultOutputDirectory, outputFlagDescription)
	generateCommand.Flags().StringVar(&pageTemplate, pageTemplateFlagName, "", pageTemplateFlagDescription)
	generateCommand.Flags().StringVar(&tocTemplate, tocTemplateFlagName, "", tocTemplateFlagDescription)
	generateCommand.Flags().StringVar(&title, titleFlagName, generator.DefaultTitle, titleFlagDescription)
	return generateCommand
}
