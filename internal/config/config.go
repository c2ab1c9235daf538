package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "t13_cli_config.yaml"

	// EnvAPIToken and EnvCSRFToken name the environment variables that
	// carry backend credentials. They never live in the YAML file.
	EnvAPIToken  = "T13_API_TOKEN"
	EnvCSRFToken = "T13_CSRF_TOKEN"

	defaultHistoryDBPath  = "t13_history.db"
	defaultRequestTimeout = 30
	defaultPageSize       = 100
)

// BookingOverride supplies a default booking window for a recurring event
// series: activities on event dates matching the rrule only open
// openDaysBefore days before the event starts.
type BookingOverride struct {
	RRule          string `yaml:"rrule" validate:"required"`
	OpenDaysBefore int    `yaml:"openDaysBefore" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	BaseURL               string            `yaml:"baseURL" validate:"required,url"`
	MemberID              string            `yaml:"memberID" validate:"required"`
	HistoryDBPath         string            `yaml:"historyDBPath,omitempty"`
	RequestTimeoutSeconds int               `yaml:"requestTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	PageSize              int               `yaml:"pageSize,omitempty" validate:"omitempty,min=1,max=500"`
	BookingOverrides      []BookingOverride `yaml:"bookingOverrides,omitempty" validate:"dive"`

	// Credentials, loaded from the environment rather than the YAML file
	APIToken  string `yaml:"-" validate:"required"`
	CSRFToken string `yaml:"-" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the YAML configuration, overlays a .env.<env> file if
// one exists, pulls credentials from the environment and validates the
// result. A missing .env file is not an error - the variables may already
// be exported.
func LoadWithEnv(env string) (*Config, error) {
	if env != "" {
		envFile := fmt.Sprintf(".env.%s", env)
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.APIToken = os.Getenv(EnvAPIToken)
	cfg.CSRFToken = os.Getenv(EnvCSRFToken)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.BookingOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in bookingOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HistoryDBPath == "" {
		cfg.HistoryDBPath = defaultHistoryDBPath
	}
	if cfg.RequestTimeoutSeconds == 0 {
		cfg.RequestTimeoutSeconds = defaultRequestTimeout
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
}

// findConfigFile searches for the config file in the current directory and
// the user's home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
