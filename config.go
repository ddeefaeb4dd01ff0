package richtext

import "github.com/goliatone/go-richtext/internal/runtimeconfig"

var (
	ErrOutputDirRequired    = runtimeconfig.ErrOutputDirRequired
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
	ErrNilOverride          = runtimeconfig.ErrNilOverride
)

type (
	Config        = runtimeconfig.Config
	ConfigBuilder = runtimeconfig.Builder
	LoggingConfig = runtimeconfig.LoggingConfig
	ExportConfig  = runtimeconfig.ExportConfig
)

// NewConfig starts a configuration builder preset to the Markdown flavor.
func NewConfig() *ConfigBuilder {
	return runtimeconfig.NewBuilder()
}
