package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/llm"
)

// Config is the full application configuration, assembled from the
// environment (optionally seeded from a .env file).
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite database path. Empty means the default
	// platform path.
	DBPath string

	LLM     llm.Config
	Trigger adaptive.TriggerPolicy

	// HistoryWindow bounds the per-role conversation window fed to the
	// difficulty classifier.
	HistoryWindow int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env entries.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Addr:          ":5000",
		DBPath:        os.Getenv("SAGE_DB"),
		LLM:           llm.ConfigFromEnv(),
		Trigger:       adaptive.DefaultTriggerPolicy(),
		HistoryWindow: adaptive.DefaultClassifierConfig().WindowPerRole,
	}

	if addr := os.Getenv("SAGE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if n, ok := envInt("SAGE_ANALYZE_MIN_TURNS"); ok {
		cfg.Trigger.MinUserTurns = n
	}
	if n, ok := envInt("SAGE_ANALYZE_INTERVAL"); ok {
		cfg.Trigger.Interval = n
	}
	if n, ok := envInt("SAGE_HISTORY_WINDOW"); ok {
		cfg.HistoryWindow = n
	}

	return cfg
}

// Validate checks the parts that have no workable fallback.
func (c Config) Validate() error {
	if c.Trigger.Interval <= 0 {
		return fmt.Errorf("SAGE_ANALYZE_INTERVAL must be positive")
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("SAGE_HISTORY_WINDOW must be positive")
	}
	return nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
