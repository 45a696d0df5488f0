package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Veraticus/pockit/internal/common"
	"github.com/Veraticus/pockit/internal/llm"
	"github.com/Veraticus/pockit/internal/locale"
)

// EnvPrefix prefixes every environment override, e.g. POCKIT_LLM_MODEL.
const EnvPrefix = "POCKIT"

// Defaults.
const (
	DefaultProvider     = "anthropic"
	DefaultModel        = "claude-3-opus-20240229"
	DefaultTimeout      = 60 * time.Second
	DefaultMaxRetries   = 1
	DefaultRetryDelay   = time.Second
	DefaultRateLimit    = 60
	DefaultDatabasePath = "$HOME/.local/share/pockit/pockit.db"
	DefaultLogFile      = "$HOME/.local/share/pockit/pockit.log"
	DefaultServerAddr   = ":8080"
	DefaultCertDir      = "$HOME/.local/share/pockit/certs"
)

// Config is the full application configuration.
type Config struct {
	LLM      LLMConfig      `mapstructure:"llm"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// LLMConfig selects and tunes the remote classifier.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	RateLimit   int           `mapstructure:"rate_limit"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ChatConfig holds conversation defaults.
type ChatConfig struct {
	Language string `mapstructure:"language"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	CertDir string `mapstructure:"cert_dir"`
	TLS     bool   `mapstructure:"tls"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SetDefaults registers every key with v so that environment overrides
// are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", llm.DefaultMaxTokens)
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.timeout", DefaultTimeout)
	v.SetDefault("llm.max_retries", DefaultMaxRetries)
	v.SetDefault("llm.retry_delay", DefaultRetryDelay)
	v.SetDefault("llm.rate_limit", DefaultRateLimit)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("chat.language", string(locale.Default))
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.tls", false)
	v.SetDefault("server.cert_dir", DefaultCertDir)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)
}

// BindEnv wires POCKIT_* environment variables into v. A .env file in the
// working directory is loaded first if present.
func BindEnv(v *viper.Viper) {
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config, fills provider defaults and expands paths.
// It does not validate; call Validate before talking to a provider.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKeyFromEnv(cfg.LLM.Provider)
	}
	if cfg.LLM.Model == "" && cfg.LLM.Provider == DefaultProvider {
		cfg.LLM.Model = DefaultModel
	}

	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)
	cfg.Server.CertDir = ExpandPath(cfg.Server.CertDir)

	return &cfg, nil
}

// Validate rejects configurations that cannot reach a classifier.
func (c *Config) Validate() error {
	if !llm.SupportedProvider(c.LLM.Provider) {
		return fmt.Errorf("%w: unsupported llm provider %q", common.ErrInvalidConfig, c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("%w: %w (set llm.api_key, %s_LLM_API_KEY or %s)",
			common.ErrMissingConfig, llm.ErrMissingAPIKey, EnvPrefix, providerKeyVar(c.LLM.Provider))
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("%w: llm.timeout must be positive", common.ErrInvalidConfig)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: llm.max_tokens must be positive", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}

// Language returns the configured chat language.
func (c *Config) Language() locale.Language {
	return locale.Parse(c.Chat.Language)
}

// LLMClientConfig converts the llm section for llm.New.
func (c *Config) LLMClientConfig() llm.Config {
	return llm.Config{
		Provider:    c.LLM.Provider,
		APIKey:      c.LLM.APIKey,
		Model:       c.LLM.Model,
		BaseURL:     c.LLM.BaseURL,
		MaxRetries:  c.LLM.MaxRetries,
		RetryDelay:  c.LLM.RetryDelay,
		RateLimit:   c.LLM.RateLimit,
		Temperature: c.LLM.Temperature,
		MaxTokens:   c.LLM.MaxTokens,
	}
}

func providerKeyVar(provider string) string {
	if provider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "ANTHROPIC_API_KEY"
}

func providerKeyFromEnv(provider string) string {
	return os.Getenv(providerKeyVar(provider))
}
