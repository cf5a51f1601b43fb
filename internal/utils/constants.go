package utils

const (
	// ConfigFileName is the name of both the local and the global configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".apidoc"
	// GitIgnoreFileName is the name of the Git ignore file consulted when gitignore rules are enabled.
	GitIgnoreFileName = ".gitignore"
	// DependencyCacheDirectoryName is excluded from discovery unless the configuration says otherwise.
	DependencyCacheDirectoryName = "node_modules"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal application errors.
	ApplicationExecutionFailedMessage = "apidoc failed"

	standardErrorSink = "stderr"
)
