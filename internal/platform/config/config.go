package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	DataDir       string              `mapstructure:"data_dir" validate:"required"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Timer         TimerConfig         `mapstructure:"timer"`
	Log           LogConfig           `mapstructure:"log"`
	Library       LibraryConfig       `mapstructure:"library"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Journal       JournalConfig       `mapstructure:"journal"`
}

type StorageConfig struct {
	Driver     string      `mapstructure:"driver" validate:"oneof=sqlite redis memory"`
	SQLitePath string      `mapstructure:"sqlite_path"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type TimerConfig struct {
	StudyMinutes int `mapstructure:"study_minutes" validate:"gte=1"`
	BreakMinutes int `mapstructure:"break_minutes" validate:"gte=1"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	File   string `mapstructure:"file"`
}

type LibraryConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	CoversURL string        `mapstructure:"covers_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type NotificationsConfig struct {
	Command string `mapstructure:"command"`
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// Load reads configuration from configFile, or from studytracker.yaml in the
// working directory or $HOME/.config/studytracker when configFile is empty.
// A missing file is not an error. STUDYTRACKER_* environment variables, and a
// .env file in the working directory, override file values.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("studytracker")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/studytracker")
	}

	v.SetEnvPrefix("STUDYTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.key_prefix", "studytracker:")
	v.SetDefault("timer.study_minutes", 25)
	v.SetDefault("timer.break_minutes", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("library.base_url", "https://openlibrary.org")
	v.SetDefault("library.covers_url", "https://covers.openlibrary.org")
	v.SetDefault("library.timeout", 10*time.Second)
	v.SetDefault("notifications.command", "notify-send")
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.dir", "")
}

// Default returns the configuration Load produces with no file and no
// environment overrides, rooted at dataDir.
func Default(dataDir string) Config {
	cfg := Config{
		DataDir: dataDir,
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Redis:  RedisConfig{Addr: "localhost:6379", KeyPrefix: "studytracker:"},
		},
		Timer:         TimerConfig{StudyMinutes: 25, BreakMinutes: 5},
		Log:           LogConfig{Level: "info", Format: "text"},
		Library:       LibraryConfig{BaseURL: "https://openlibrary.org", CoversURL: "https://covers.openlibrary.org", Timeout: 10 * time.Second},
		Notifications: NotificationsConfig{Command: "notify-send"},
		Journal:       JournalConfig{Enabled: true},
	}
	cfg.resolvePaths()
	return cfg
}

func (c *Config) resolvePaths() {
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join(c.DataDir, "studytracker.db")
	}
	if c.Journal.Dir == "" {
		c.Journal.Dir = filepath.Join(c.DataDir, "journal")
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".studytracker")
	}
	return filepath.Join(home, ".local", "share", "studytracker")
}
