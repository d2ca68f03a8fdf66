package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is loaded once at startup. The vocabularies are read-only after
// load; the analyzer receives them by reference and never mutates them.
type Config struct {
	Port         string     `yaml:"port"`
	ReportsDir   string     `yaml:"reportsDir"`
	LogsDir      string     `yaml:"logsDir"`
	AIServiceURL string     `yaml:"aiServiceUrl"`
	JokeAPIURL   string     `yaml:"jokeApiUrl"`
	TranslateTo  string     `yaml:"translateTo"`
	Vocabulary   Vocabulary `yaml:"vocabulary"`
}

// Vocabulary holds the static reference lists used by the job analyzer.
type Vocabulary struct {
	Skills       []string `yaml:"skills"`
	Technologies []string `yaml:"technologies"`
	Languages    []string `yaml:"languages"`
}

var defaultSkills = []string{
	"python", "java", "javascript", "react", "vue",
	"docker", "kubernetes", "sql", "nosql", "linux",
	"machine learning", "deep learning",
	"data analysis", "api", "cloud", "aws", "azure",
	"fastapi", "flask", "django",
}

var defaultTechnologies = []string{
	"aws", "gcp", "azure",
	"docker", "kubernetes",
	"tensorflow", "pytorch",
	"fastapi", "flask", "django",
	"postgres", "mysql", "mongodb",
	"redis",
}

var defaultLanguages = []string{
	"english", "german", "french", "arabic", "persian", "norwegian",
}

// Load reads the YAML config at path, then applies env overrides and
// defaults. A missing file is not an error; env and defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.ReportsDir = v
	}
	if v := os.Getenv("LOGS_DIR"); v != "" {
		cfg.LogsDir = v
	}
	if v := os.Getenv("AI_SERVICE_URL"); v != "" {
		cfg.AIServiceURL = v
	}
	if v := os.Getenv("JOKE_API_URL"); v != "" {
		cfg.JokeAPIURL = v
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "reports"
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = "logs"
	}
	if cfg.AIServiceURL == "" {
		cfg.AIServiceURL = "http://ai-service:8000"
	}
	if cfg.JokeAPIURL == "" {
		cfg.JokeAPIURL = "https://official-joke-api.appspot.com/random_joke"
	}
	if cfg.TranslateTo == "" {
		cfg.TranslateTo = "fa"
	}
	if len(cfg.Vocabulary.Skills) == 0 {
		cfg.Vocabulary.Skills = defaultSkills
	}
	if len(cfg.Vocabulary.Technologies) == 0 {
		cfg.Vocabulary.Technologies = defaultTechnologies
	}
	if len(cfg.Vocabulary.Languages) == 0 {
		cfg.Vocabulary.Languages = defaultLanguages
	}

	return cfg, nil
}
