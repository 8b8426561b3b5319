package main

import (
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"numscore/internal/api"
	"numscore/internal/archive"
	"numscore/internal/config"
	"numscore/internal/scorer"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var arch *archive.Archive
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		arch = archive.New(client, cfg.Redis.Prefix)
		log.Printf("archive: redis %s db=%d prefix=%s", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
	} else {
		log.Printf("archive disabled")
	}

	sc := scorer.NewScorer(cfg.Scorer, arch)

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, api.NewMux(sc)))
}
