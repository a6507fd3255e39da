// Command dictload seeds the Redis word set from a line-oriented word-list
// file, so deployments using the redis dictionary source can provision the
// same static list the file source reads directly.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"arspell/internal/app"
	"arspell/internal/config"
	"arspell/internal/wordsource"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log)

	records, err := wordsource.NewFile(cfg.Dictionary.Path).Records()
	if err != nil {
		log.Error("read word list", "path", cfg.Dictionary.Path, "error", err)
		os.Exit(1)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Dictionary.RedisAddr,
		Password: cfg.Dictionary.RedisPassword,
		DB:       cfg.Dictionary.RedisDB,
	})

	ctx := context.Background()
	loaded := 0
	for _, rec := range records {
		w := strings.TrimSpace(rec)
		if w == "" {
			continue
		}
		if err := client.SAdd(ctx, cfg.Dictionary.RedisKey, w).Err(); err != nil {
			log.Error("sadd failed", "word", w, "error", err)
			os.Exit(1)
		}
		loaded++
	}

	log.Info("word list loaded into redis",
		"key", cfg.Dictionary.RedisKey, "words", loaded)
}
