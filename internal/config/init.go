package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/apidoc/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	configurationFileType = "yaml"

	defaultConfigurationTemplate = `generate:
  include:
    - .
  exclude:
    - node_modules
  output: public/docs
  pattern: '\.js$'
  title: API Documentation
  page_template: ""
  toc_template: ""
  use_gitignore: false
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the default configuration to the requested target and returns its path.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, destinationError := initDestination(options)
	if destinationError != nil {
		return "", destinationError
	}

	_, statError := os.Stat(destinationPath)
	switch {
	case statError == nil && !options.Force:
		return "", fmt.Errorf("%s already exists; use --force to overwrite it", destinationPath)
	case statError != nil && !os.IsNotExist(statError):
		return "", fmt.Errorf("inspect %s: %w", destinationPath, statError)
	}

	if writeError := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), 0o600); writeError != nil {
		return "", fmt.Errorf("write default configuration %s: %w", destinationPath, writeError)
	}
	return destinationPath, nil
}

// initDestination resolves the configuration file for the target, creating the global directory when needed.
func initDestination(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return "", fmt.Errorf("determine working directory: %w", workingDirectoryError)
			}
			workingDirectory = currentDirectory
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, homeError := os.UserHomeDir()
		if homeError != nil {
			return "", fmt.Errorf("locate home directory: %w", homeError)
		}
		globalDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if makeError := os.MkdirAll(globalDirectory, 0o755); makeError != nil {
			return "", fmt.Errorf("create %s: %w", globalDirectory, makeError)
		}
		return filepath.Join(globalDirectory, utils.ConfigFileName), nil
	}
	return "", fmt.Errorf("unsupported init target %q", options.Target)
}
