// Package config loads apidoc configuration files and writes the default template.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/apidoc/internal/generator"
	"github.com/temirov/apidoc/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Generate GenerateConfiguration `mapstructure:"generate"`
}

// GenerateConfiguration defines the documentation run read by every discovery-driven command.
type GenerateConfiguration struct {
	Include      []string `mapstructure:"include"`
	Exclude      []string `mapstructure:"exclude"`
	Output       string   `mapstructure:"output"`
	PageTemplate string   `mapstructure:"page_template"`
	TocTemplate  string   `mapstructure:"toc_template"`
	Pattern      string   `mapstructure:"pattern"`
	Title        string   `mapstructure:"title"`
	UseGitignore *bool    `mapstructure:"use_gitignore"`
}

// LoadApplicationConfiguration loads the global file and overlays the local or explicit file on it.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath, false)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfiguration, loadError := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	merged.Generate.Exclude = utils.DeduplicatePatterns(merged.Generate.Exclude)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory string, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

// loadConfigurationFromPath decodes one YAML file. A missing file is empty configuration unless required.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if fileInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(configurationFileType)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Generate = result.Generate.merge(override.Generate)
	return result
}

func (configuration GenerateConfiguration) merge(override GenerateConfiguration) GenerateConfiguration {
	result := configuration
	if len(override.Include) > 0 {
		result.Include = append([]string{}, override.Include...)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, override.Exclude...)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.PageTemplate != "" {
		result.PageTemplate = override.PageTemplate
	}
	if override.TocTemplate != "" {
		result.TocTemplate = override.TocTemplate
	}
	if override.Pattern != "" {
		result.Pattern = override.Pattern
	}
	if override.Title != "" {
		result.Title = override.Title
	}
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	return result
}

// Options converts the configuration into generator options. Unset values stay zero so the
// generator defaults apply.
func (configuration GenerateConfiguration) Options() generator.Options {
	options := generator.Options{
		Include:      append([]string(nil), configuration.Include...),
		Output:       configuration.Output,
		PageTemplate: configuration.PageTemplate,
		TocTemplate:  configuration.TocTemplate,
		Pattern:      configuration.Pattern,
		Title:        configuration.Title,
	}
	if len(configuration.Exclude) > 0 {
		options.Exclude = append([]string(nil), configuration.Exclude...)
	}
	if configuration.UseGitignore != nil {
		options.UseGitignore = *configuration.UseGitignore
	}
	return options
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
