package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the typed configuration of a registry process.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Registry RegistryConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

type LogConfig struct {
	Level string // debug | info | warn | error
	JSON  bool
}

type RegistryConfig struct {
	ValuesFile string // YAML name → value file, optional
}

type HTTPConfig struct {
	Addr string
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	env := get("APP_ENV", "local")
	return &Config{
		App: AppConfig{
			Name:  get("APP_NAME", "go-registry"),
			Env:   env,
			Debug: envBool("APP_DEBUG", false),
		},
		Log: LogConfig{
			Level: get("LOG_LEVEL", "info"),
			JSON:  envBool("LOG_JSON", env == "production"),
		},
		Registry: RegistryConfig{
			ValuesFile: get("REGISTRY_VALUES", ""),
		},
		HTTP: HTTPConfig{
			Addr: get("HTTP_ADDR", ":8000"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return get(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
