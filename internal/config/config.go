package config

import "fmt"

// Word-list source kinds.
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

type Config struct {
	HTTPAddr   string           `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Suggest    SuggestConfig    `yaml:"suggest"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects where the static word list is loaded from.
// Redis serves the same line-per-word list as a set; it is read once at
// startup and never written.
type DictionaryConfig struct {
	Source        string `yaml:"source" env:"DICTIONARY_SOURCE" env-default:"file"`
	Path          string `yaml:"path" env:"DICTIONARY_PATH" env-default:"ar-words.txt"`
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	RedisKey      string `yaml:"redis_key" env:"REDIS_KEY" env-default:"arspell:words"`
}

type SuggestConfig struct {
	Limit        int `yaml:"limit" env:"SUGGEST_LIMIT" env-default:"5"`
	LengthWindow int `yaml:"length_window" env:"SUGGEST_LENGTH_WINDOW" env-default:"0"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

func (c *Config) Validate() error {
	switch c.Dictionary.Source {
	case SourceFile, SourceRedis:
	default:
		return fmt.Errorf("dictionary.source must be %q or %q, got %q",
			SourceFile, SourceRedis, c.Dictionary.Source)
	}
	if c.Dictionary.Source == SourceFile && c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path is required for the file source")
	}
	if c.Suggest.Limit < 0 {
		return fmt.Errorf("suggest.limit must not be negative, got %d", c.Suggest.Limit)
	}
	if c.Suggest.LengthWindow < 0 {
		return fmt.Errorf("suggest.length_window must not be negative, got %d", c.Suggest.LengthWindow)
	}
	return nil
}
