package plugin

import "github.com/reglet-dev/unity-native-go/config"

// Option configures a Plugin.
type Option func(*pluginConfig)

type pluginConfig struct {
	config     config.Config
	configFile string
}

// defaultPluginConfig returns the default configuration.
func defaultPluginConfig() pluginConfig {
	return pluginConfig{config: config.Default()}
}

// WithConfig sets the configuration used at load.
func WithConfig(cfg config.Config) Option {
	return func(c *pluginConfig) {
		c.config = cfg
	}
}

// WithConfigFile reads the configuration from a YAML file at load. It
// overrides WithConfig.
func WithConfigFile(path string) Option {
	return func(c *pluginConfig) {
		c.configFile = path
	}
}
