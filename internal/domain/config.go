package domain

import "time"

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Store        StoreConfig        `mapstructure:"store"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Providers    []ProviderConfig   `mapstructure:"providers"`
	History      HistoryConfig      `mapstructure:"history"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// StoreConfig contains asset store configuration
type StoreConfig struct {
	Dir       string `mapstructure:"dir"`
	Extension string `mapstructure:"extension"`
	MinBytes  int    `mapstructure:"min_bytes"` // smaller payloads are placeholders, not assets
}

// HTTPConfig contains outbound HTTP configuration shared by providers and the fetcher
type HTTPConfig struct {
	UserAgent    string        `mapstructure:"user_agent"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	ListTimeout  time.Duration `mapstructure:"list_timeout"`
	FetchDelay   time.Duration `mapstructure:"fetch_delay"`
	PageDelay    time.Duration `mapstructure:"page_delay"`
	MaxBytes     int64         `mapstructure:"max_bytes"`
}

// CatalogConfig locates the catalog data
type CatalogConfig struct {
	Path       string `mapstructure:"path"` // empty means the embedded catalog
	KnownTotal int    `mapstructure:"known_total"`
}

// ProviderConfig describes one source adapter. Which fields apply depends on Kind.
type ProviderConfig struct {
	Name     string            `mapstructure:"name"`
	Kind     ProviderKind      `mapstructure:"kind"`
	Disabled bool              `mapstructure:"disabled"`
	Headers  map[string]string `mapstructure:"headers"` // values are expanded from the environment

	// rest
	URLTemplate string   `mapstructure:"url_template"` // {group} is replaced per grouping
	Groups      []string `mapstructure:"groups"`
	ItemsField  string   `mapstructure:"items_field"`
	NameField   string   `mapstructure:"name_field"`
	TitleField  string   `mapstructure:"title_field"`
	URLField    string   `mapstructure:"url_field"`

	// gallery
	PageTemplate string `mapstructure:"page_template"` // {page} is replaced by 1..MaxPages
	BaseURL      string `mapstructure:"base_url"`
	MaxPages     int    `mapstructure:"max_pages"`
	SrcContains  string `mapstructure:"src_contains"`
	PathContains string `mapstructure:"path_contains"`

	// dump
	URL          string `mapstructure:"url"`
	ImagesField  string `mapstructure:"images_field"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	MaxImages    int    `mapstructure:"max_images"`

	// static
	URLs map[string]string `mapstructure:"urls"`
}

// HistoryConfig contains pass history configuration
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// NotificationConfig contains notification-related configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// EnabledProviders returns providers that are not disabled, in configured order
func (c *Config) EnabledProviders() []ProviderConfig {
	var out []ProviderConfig
	for _, p := range c.Providers {
		if !p.Disabled {
			out = append(out, p)
		}
	}
	return out
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Store: StoreConfig{
			Dir:       "assets/exercise_gifs",
			Extension: "gif",
			MinBytes:  1000,
		},
		HTTP: HTTPConfig{
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			FetchTimeout: 15 * time.Second,
			ListTimeout:  10 * time.Second,
			FetchDelay:   300 * time.Millisecond,
			PageDelay:    300 * time.Millisecond,
			MaxBytes:     20 << 20,
		},
		Catalog: CatalogConfig{
			Path:       "",
			KnownTotal: 0, // 0 keeps the catalog file's own known_total
		},
		Providers: []ProviderConfig{
			{
				Name:        "exercisedb",
				Kind:        ProviderREST,
				URLTemplate: "https://exercisedb.p.rapidapi.com/exercises/bodyPart/{group}",
				Groups: []string{"back", "cardio", "chest", "lower arms", "lower legs",
					"neck", "shoulders", "upper arms", "upper legs", "waist"},
				Headers: map[string]string{
					"X-RapidAPI-Key":  "${EXERCISEDB_API_KEY}",
					"X-RapidAPI-Host": "exercisedb.p.rapidapi.com",
				},
				NameField:  "name",
				TitleField: "target",
				URLField:   "gifUrl",
			},
			{
				Name:         "gymvisual",
				Kind:         ProviderGallery,
				PageTemplate: "https://gymvisual.com/16-animated-gifs?p={page}",
				BaseURL:      "https://gymvisual.com",
				MaxPages:     15,
				SrcContains:  ".gif",
				PathContains: "/img/p/",
			},
			{
				Name:         "free-exercise-db",
				Kind:         ProviderDump,
				URL:          "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/dist/exercises.json",
				NameField:    "name",
				ImagesField:  "images",
				ImageBaseURL: "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises/",
				MaxImages:    3,
			},
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: "$HOME/.gifsync/history.db",
		},
		Notification: NotificationConfig{
			Enabled: false,
			Method:  "notify-send",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}
