package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Server struct {
		Port         string `toml:"port"`
		CookieName   string `toml:"cookie_name"`
		CookieSecure bool   `toml:"cookie_secure"`
	} `toml:"server"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"database"`

	Sessions struct {
		Backend    string `toml:"backend"`
		RedisURL   string `toml:"redis_url"`
		TTLMinutes int    `toml:"ttl_minutes"`
	} `toml:"sessions"`

	Quiz struct {
		BankPath         string `toml:"bank_path"`
		QuestionsPerQuiz int    `toml:"questions_per_quiz"`
	} `toml:"quiz"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}
	if config.Database.DSN == "" {
		return nil, fmt.Errorf("Database DSN is not specified in config")
	}
	if config.Sessions.Backend == "redis" && config.Sessions.RedisURL == "" {
		return nil, fmt.Errorf("Sessions backend is redis but redis_url is empty")
	}

	if config.Server.CookieName == "" {
		config.Server.CookieName = "frageverk_sid"
	}
	if config.Database.MigrationsDir == "" {
		config.Database.MigrationsDir = "./migrations"
	}
	if config.Sessions.Backend == "" {
		config.Sessions.Backend = "memory"
	}
	if config.Sessions.TTLMinutes <= 0 {
		config.Sessions.TTLMinutes = 60
	}
	if config.Quiz.BankPath == "" {
		config.Quiz.BankPath = "./questions.toml"
	}
	if config.Quiz.QuestionsPerQuiz <= 0 {
		config.Quiz.QuestionsPerQuiz = 30
	}

	logger.Debug.Printf("Loaded quiz config: %+v", config.Quiz)

	return &config, nil
}
