package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/apidoc/internal/generator"
)

const (
	excludeFlagName             = "exclude"
	excludeFlagShorthand        = "e"
	excludeFlagDescription      = "exclude a path by name, or by /regular expression/ over the full path (repeatable)"
	patternFlagName             = "pattern"
	patternFlagDescription      = "regular expression selecting source files"
	gitignoreFlagName           = "gitignore"
	gitignoreFlagDescription    = "also exclude paths listed in each root's .gitignore"
	outputFlagName              = "output"
	outputFlagShorthand         = "o"
	outputFlagDescription       = "directory receiving the rendered pages"
	pageTemplateFlagName        = "page-template"
	pageTemplateFlagDescription = "page template file (built-in when empty)"
	tocTemplateFlagName         = "toc-template"
	tocTemplateFlagDescription  = "table of contents template file (built-in when empty)"
	titleFlagName               = "title"
	titleFlagDescription        = "title of the table of contents"
)

// discoveryFlags are the flags shared by every command that walks source roots.
type discoveryFlags struct {
	exclude      []string
	pattern      string
	useGitignore bool
}

func (flags *discoveryFlags) register(command *cobra.Command) {
	command.Flags().StringArrayVarP(&flags.exclude, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	command.Flags().StringVar(&flags.pattern, patternFlagName, "", patternFlagDescription)
	registerBooleanFlag(command.Flags(), &flags.useGitignore, gitignoreFlagName, false, gitignoreFlagDescription)
}

// apply copies the flags the user set onto options, leaving configured values otherwise.
func (flags *discoveryFlags) apply(command *cobra.Command, options *generator.Options) {
	if command.Flags().Changed(excludeFlagName) {
		options.Exclude = append([]string{}, flags.exclude...)
	}
	if command.Flags().Changed(patternFlagName) {
		options.Pattern = flags.pattern
	}
	if command.Flags().Changed(gitignoreFlagName) {
		options.UseGitignore = flags.useGitignore
	}
}
