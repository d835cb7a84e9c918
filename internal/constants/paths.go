// Package constants contains fixed directory and file names used by hop.
package constants

const (
	// StoreDir is the subdirectory of the documents folder that holds the
	// shortcut store. The name is shared with the PowerShell module this
	// tool reads the same file as.
	StoreDir = "PowerShell"

	// StoreFilename is the shortcut store file name.
	StoreFilename = "LocationShortcuts.json"

	// AppSubDir is the hop-specific subdirectory under XDG base dirs.
	AppSubDir = "hop"

	// LogFilename is the default log file name for hop.
	LogFilename = "hop.log"

	// SettingsFilename is the optional app settings file name.
	SettingsFilename = "config.yaml"
)
