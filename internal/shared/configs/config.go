package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Accounting  AccountingConfig  `mapstructure:"accounting" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	// StaticDir holds the dashboard assets served under "/". Empty disables asset serving.
	StaticDir string `mapstructure:"static_dir"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

const (
	AccountingSourceCommand = "command"
	AccountingSourceFile    = "file"
)

// AccountingConfig controls where accounting snapshots come from.
type AccountingConfig struct {
	// Source is "command" to run sacct on every request, or "file" to replay snapshots
	// previously captured under the file storage root.
	Source         string `mapstructure:"source" validate:"required,oneof=command file"`
	Command        string `mapstructure:"command" validate:"required"`
	User           string `mapstructure:"user"`                                       // empty means $USER
	CommandTimeout int    `mapstructure:"command_timeout" validate:"required,min=1"` // seconds
}
