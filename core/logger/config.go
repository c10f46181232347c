package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of the console output (json, console).
	Format string `mapstructure:"format" default:"json"`
	// File is an optional path for a rotating JSON log file.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"50"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `mapstructure:"max_backups" default:"5"`
}
