// config предоставляет структуру конфигурации tv-guide
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация приложения.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Channels  []ChannelConfig `yaml:"channels"`
	Kinopoisk KinopoiskConfig `yaml:"kinopoisk"`
	Fetcher   FetcherConfig   `yaml:"fetcher"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
	Output    OutputConfig    `yaml:"output"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

// ChannelConfig — один канал телепрограммы: имя + базовый URL страницы.
// Задаётся только через YAML.
type ChannelConfig struct {
	Title string `yaml:"title"`
	Link  string `yaml:"link"`
}

// KinopoiskConfig — доступ к API Кинопоиска.
type KinopoiskConfig struct {
	APIKey  string `yaml:"api_key"  env:"KINOPOISK_API_KEY"`
	BaseURL string `yaml:"base_url" env:"KINOPOISK_BASE_URL" env-default:"https://api.kinopoisk.dev/v1.4"`
}

// FetcherConfig — параметры обхода телепрограммы.
type FetcherConfig struct {
	// MinHour — минимальный час начала передачи (включительно).
	MinHour int `yaml:"min_hour" env:"MIN_HOUR" env-default:"17"`
	// Concurrency — сколько каналов обрабатывается одновременно.
	// Внутри канала передачи всегда обходятся последовательно,
	// чтобы не создавать лишнюю нагрузку на сайт-источник.
	Concurrency int `yaml:"concurrency" env:"FETCH_CONCURRENCY" env-default:"2"`
}

// TimeoutConfig — таймауты исходящих HTTP-запросов.
type TimeoutConfig struct {
	HTTP time.Duration `yaml:"http" env:"HTTP_TIMEOUT" env-default:"15s"`
}

// OutputConfig — итоговый HTML-артефакт.
type OutputConfig struct {
	Path string `yaml:"path" env:"OUTPUT_PATH" env-default:"dist/index.html"`
	// Template — путь к пользовательскому шаблону; пусто — встроенный.
	Template string `yaml:"template" env:"OUTPUT_TEMPLATE"`
}

// TelegramConfig — необязательная отправка текстового дайджеста.
// Дайджест отправляется только при непустом Token.
type TelegramConfig struct {
	Token  string `yaml:"token"   env:"TELEGRAM_BOT_TOKEN"`
	ChatID string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if len(c.Channels) == 0 {
		return fmt.Errorf("channels must contain at least one channel")
	}
	for i, ch := range c.Channels {
		if ch.Title == "" {
			return fmt.Errorf("channels[%d].title is required", i)
		}
		if ch.Link == "" {
			return fmt.Errorf("channels[%d].link is required", i)
		}
	}
	if c.Kinopoisk.APIKey == "" {
		return fmt.Errorf("kinopoisk.api_key is required")
	}
	if c.Fetcher.MinHour < 0 || c.Fetcher.MinHour > 23 {
		return fmt.Errorf("fetcher.min_hour must be within [0, 23]")
	}
	if c.Fetcher.Concurrency <= 0 {
		return fmt.Errorf("fetcher.concurrency must be > 0")
	}
	if c.Timeouts.HTTP <= 0 {
		return fmt.Errorf("timeouts.http must be > 0")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Telegram.Token != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.token is set")
	}
	return nil
}
