// Package app wires the configured word source, dictionary and checker
// together for the presentation shells (HTTP server and CLI).
package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"arspell/internal/config"
	"arspell/internal/spellcheck"
	"arspell/internal/wordsource"
	"arspell/pkg/options"
)

// BuildChecker constructs the spell checker from configuration. A missing
// or unreadable word source is degraded, not fatal: the checker runs over
// an empty dictionary (everything flagged, no suggestions) and the cause
// is logged as a warning.
func BuildChecker(cfg *config.Config, log *slog.Logger) *spellcheck.Checker {
	records, err := newSource(cfg.Dictionary).Records()
	if err != nil {
		log.Warn("word list unavailable, running with an empty dictionary",
			"source", cfg.Dictionary.Source, "error", err)
	}
	dict := spellcheck.NewDictionary(records)
	log.Info("dictionary loaded", "words", dict.Len())

	return spellcheck.NewChecker(dict,
		options.WithMaxSuggestions(cfg.Suggest.Limit),
		options.WithLengthWindow(cfg.Suggest.LengthWindow),
	)
}

func newSource(cfg config.DictionaryConfig) wordsource.Source {
	if cfg.Source == config.SourceRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return wordsource.NewRedis(client, cfg.RedisKey)
	}
	return wordsource.NewFile(cfg.Path)
}
