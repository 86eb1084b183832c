package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DATABASE_REDIS_ADDRESS.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent.
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the current directory or any parent that holds go.mod,
// so tests running from package directories pick it up too.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "career-server"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	m := &cfg.Matcher
	if m.Mode == "" {
		m.Mode = "semantic"
	}
	if m.RIASECWeight == 0 && m.SkillsWeight == 0 && m.InterestsWeight == 0 && m.TextWeight == 0 {
		m.RIASECWeight = 0.4
		m.SkillsWeight = 0.3
		m.InterestsWeight = 0.2
		m.TextWeight = 0.1
	}
	if m.AdvancedRIASECWeight == 0 && m.AdvancedEducationWeight == 0 &&
		m.AdvancedExperienceWeight == 0 && m.AdvancedFieldWeight == 0 && m.AdvancedDemandWeight == 0 {
		m.AdvancedRIASECWeight = 50
		m.AdvancedEducationWeight = 20
		m.AdvancedExperienceWeight = 15
		m.AdvancedFieldWeight = 10
		m.AdvancedDemandWeight = 5
	}
	if m.MinRIASECLength == 0 {
		m.MinRIASECLength = 2
	}
	if m.MaxRIASECLength == 0 {
		m.MaxRIASECLength = 3
	}
	if m.FilterThreshold == 0 {
		m.FilterThreshold = 60
	}
	if m.ResultCount == 0 {
		m.ResultCount = 5
	}
	if m.RetrievalResults == 0 {
		m.RetrievalResults = 50
	}

	if cfg.Session.TTLSeconds == 0 {
		cfg.Session.TTLSeconds = 3600
	}
	if cfg.Database.Redis.Address == "" {
		cfg.Database.Redis.Address = "localhost:6379"
	}
	if len(cfg.Database.Elasticsearch.Addresses) == 0 {
		cfg.Database.Elasticsearch.Addresses = []string{"http://localhost:9200"}
	}
	if cfg.Database.Elasticsearch.Index == "" {
		cfg.Database.Elasticsearch.Index = "careers"
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
}

func validateConfig(cfg *Config) error {
	m := cfg.Matcher

	if m.Mode != "semantic" && m.Mode != "tfidf" {
		return fmt.Errorf("matcher mode must be semantic or tfidf, got %q", m.Mode)
	}

	weightSum := m.RIASECWeight + m.SkillsWeight + m.InterestsWeight + m.TextWeight
	if math.Abs(weightSum-1.0) > 1e-9 {
		return fmt.Errorf("tf-idf matcher weights must sum to 1.0, got %v", weightSum)
	}

	advSum := m.AdvancedRIASECWeight + m.AdvancedEducationWeight +
		m.AdvancedExperienceWeight + m.AdvancedFieldWeight + m.AdvancedDemandWeight
	if math.Abs(advSum-100) > 1e-9 {
		return fmt.Errorf("advanced matcher weights must sum to 100, got %v", advSum)
	}

	if m.MinRIASECLength < 1 || m.MaxRIASECLength < m.MinRIASECLength {
		return fmt.Errorf("invalid RIASEC length bounds: min=%d max=%d", m.MinRIASECLength, m.MaxRIASECLength)
	}

	if m.FilterThreshold < 0 || m.FilterThreshold > 100 {
		return fmt.Errorf("filter threshold must be within [0,100], got %d", m.FilterThreshold)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	return nil
}
