package constants

import "path"

// ConfigName is the base name (without extension) viper searches for
const ConfigName = AppName

var (
	// UserConfigPath is searched for a config file first
	UserConfigPath = path.Join("$HOME", ".config", AppName)
	// SystemConfigPath is searched for a config file when the user has none
	SystemConfigPath = path.Join("/etc", AppName)
)
