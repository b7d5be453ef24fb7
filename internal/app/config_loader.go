package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/yourusername/gifsync/internal/domain"
)

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*domain.Config, error) {
	config := domain.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.gifsync")
		v.AddConfigPath("/etc/gifsync")
	}

	v.SetEnvPrefix("GIFSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// a configured provider list replaces the defaults instead of merging into them
	if v.IsSet("providers") {
		config.Providers = nil
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = expandPaths(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadDotEnv loads env vars from the provided file if it exists.
// Existing process env vars are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// expandPaths expands environment variables in path configurations
func expandPaths(config *domain.Config) *domain.Config {
	config.Store.Dir = expandPath(config.Store.Dir)
	config.Catalog.Path = expandPath(config.Catalog.Path)
	config.History.DatabasePath = expandPath(config.History.DatabasePath)

	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	return config
}

// expandPath expands environment variables and ~ in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if strings.Contains(path, "$HOME") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.ReplaceAll(path, "$HOME", home)
		}
	}

	return os.ExpandEnv(path)
}

// validateConfig validates the configuration
func validateConfig(config *domain.Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Store.Dir == "" {
		return fmt.Errorf("store directory not configured")
	}

	if config.Store.Extension == "" || strings.ContainsAny(config.Store.Extension, `./\`) {
		return fmt.Errorf("invalid store extension: %q", config.Store.Extension)
	}

	if config.Store.MinBytes < 0 {
		return fmt.Errorf("min bytes cannot be negative")
	}

	if config.HTTP.FetchTimeout <= 0 || config.HTTP.ListTimeout <= 0 {
		return fmt.Errorf("http timeouts must be positive")
	}

	if config.HTTP.FetchDelay < 0 || config.HTTP.PageDelay < 0 {
		return fmt.Errorf("http delays cannot be negative")
	}

	if config.HTTP.MaxBytes <= 0 {
		return fmt.Errorf("max bytes must be positive")
	}

	if config.Catalog.KnownTotal < 0 {
		return fmt.Errorf("catalog known total cannot be negative")
	}

	if err := validateProviders(config.Providers); err != nil {
		return err
	}

	if config.History.Enabled && config.History.DatabasePath == "" {
		return fmt.Errorf("history database path not configured")
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	return nil
}

func validateProviders(providers []domain.ProviderConfig) error {
	seen := make(map[string]bool, len(providers))
	for i, p := range providers {
		if p.Name == "" {
			return fmt.Errorf("provider %d: name not configured", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("provider %s: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if !domain.ValidateProviderKind(p.Kind) {
			return fmt.Errorf("provider %s: unknown kind %q", p.Name, p.Kind)
		}

		switch p.Kind {
		case domain.ProviderREST:
			if p.URLTemplate == "" || p.URLField == "" || p.NameField == "" {
				return fmt.Errorf("provider %s: url_template, name_field and url_field are required", p.Name)
			}
			if strings.Contains(p.URLTemplate, "{group}") && len(p.Groups) == 0 {
				return fmt.Errorf("provider %s: groups are required by url_template", p.Name)
			}
		case domain.ProviderGallery:
			if p.PageTemplate == "" {
				return fmt.Errorf("provider %s: page_template is required", p.Name)
			}
			if p.MaxPages < 1 {
				return fmt.Errorf("provider %s: max_pages must be at least 1", p.Name)
			}
		case domain.ProviderDump:
			if p.URL == "" || p.NameField == "" || p.ImagesField == "" {
				return fmt.Errorf("provider %s: url, name_field and images_field are required", p.Name)
			}
		case domain.ProviderStatic:
			if len(p.URLs) == 0 {
				return fmt.Errorf("provider %s: urls are required", p.Name)
			}
		}
	}
	return nil
}
