package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (the file path for sqlite).
	Name string `mapstructure:"name" default:"postgres"`
	// SSLMode is the postgres sslmode parameter.
	SSLMode string `mapstructure:"ssl_mode" default:"require"`
	// TimeoutSeconds bounds connection setup and each read/write.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Table is the table holding task records.
	Table string `mapstructure:"table" default:"tareas"`
	// BatchSize caps the rows per INSERT and the ids per IN lookup.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
