package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Matcher  MatcherConfig  `mapstructure:"matcher"`
	Session  SessionConfig  `mapstructure:"session"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MatcherConfig carries the calibrated scoring constants for both matchers.
// The TF-IDF weights must sum to 1.0 and the advanced weights to 100; the two
// weight tables are calibrated independently and are never interchangeable.
type MatcherConfig struct {
	// Mode selects the serving matcher: "semantic" (retriever-backed) or
	// "tfidf" (catalog corpus).
	Mode string `mapstructure:"mode"`

	RIASECWeight    float64 `mapstructure:"riasec_weight"`
	SkillsWeight    float64 `mapstructure:"skills_weight"`
	InterestsWeight float64 `mapstructure:"interests_weight"`
	TextWeight      float64 `mapstructure:"text_weight"`

	AdvancedRIASECWeight     float64 `mapstructure:"advanced_riasec_weight"`
	AdvancedEducationWeight  float64 `mapstructure:"advanced_education_weight"`
	AdvancedExperienceWeight float64 `mapstructure:"advanced_experience_weight"`
	AdvancedFieldWeight      float64 `mapstructure:"advanced_field_weight"`
	AdvancedDemandWeight     float64 `mapstructure:"advanced_demand_weight"`

	MinRIASECLength int `mapstructure:"min_riasec_length"`
	MaxRIASECLength int `mapstructure:"max_riasec_length"`

	FilterThreshold  int `mapstructure:"filter_threshold"`
	ResultCount      int `mapstructure:"result_count"`
	RetrievalResults int `mapstructure:"retrieval_results"`
}

type SessionConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ValidRIASECCodes is the fixed six-letter trait alphabet.
var ValidRIASECCodes = []string{"R", "I", "A", "S", "E", "C"}
