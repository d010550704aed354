package configs

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	API       `mapstructure:"api"`
	Storage   `mapstructure:"storage"`
	Postgres  `mapstructure:"postgres"`
	Telemetry `mapstructure:"telemetry"`
}

// App struct
type App struct {
	Debug    bool   `mapstructure:"debug"`
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// API struct - remote text service the session client talks to
type API struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout in seconds, 0 disables the client timeout
	Timeout int `mapstructure:"timeout"`
}

// Storage struct - where the session token is persisted
type Storage struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Telemetry struct
type Telemetry struct {
	Enabled     bool   `mapstructure:"enabled"`
	Stdout      bool   `mapstructure:"stdout"`
	ServiceName string `mapstructure:"service_name"`
}

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// DefaultAPIBaseURL is used when api.base_url is not configured
const DefaultAPIBaseURL = "http://127.0.0.1:8080"

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.env", "")
	viper.SetDefault("app.port", "9089")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("api.base_url", DefaultAPIBaseURL)
	viper.SetDefault("api.timeout", 0)
	viper.SetDefault("storage.driver", StorageDriverFile)
	viper.SetDefault("storage.path", ".textkit/session.json")
	viper.SetDefault("postgres.host", "")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.username", "")
	viper.SetDefault("postgres.password", "")
	viper.SetDefault("postgres.database", "")
	viper.SetDefault("postgres.sslmode", false)
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.stdout", false)
	viper.SetDefault("telemetry.service_name", "textkit-client")
}

func getConfig(path, env string) {
	setDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		logrus.Warnf("No config file found in %s, using defaults and environment", path)
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			logrus.Infoln("Config file has changed: ", e.Name)
		})
	}
	if env != "" {
		viper.Set("app.env", env)
	}
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
