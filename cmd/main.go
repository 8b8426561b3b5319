package main

import (
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"numscore/internal/archive"
	"numscore/internal/config"
	"numscore/internal/corpus"
	"numscore/internal/heuristic"
	"numscore/internal/scorer"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <float|byte|short|int|long> <corpus-file>\n", os.Args[0])
		os.Exit(2)
	}
	kind, err := heuristic.ParseKind(os.Args[1])
	if err != nil {
		log.Fatalf("%v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// в пакетном режиме архив включается только явно
	var arch *archive.Archive
	if cfg.Redis.Enabled && os.Getenv("ARCHIVE_ENABLED") != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		arch = archive.New(client, cfg.Redis.Prefix)
	}

	c, err := corpus.Open(os.Args[2], cfg.Corpus.Options()...)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer c.Close()

	sc := scorer.NewScorer(cfg.Scorer, arch)
	res, err := sc.ScoreCorpus(kind, c)
	if err != nil {
		log.Fatalf("scoring error: %v", err)
	}

	for _, r := range res.Results {
		fmt.Printf("%d\t%.6f\t%d\t%s\n", r.Index, r.Score, r.Distance, quote(r.Input))
	}
	fmt.Printf("\n%s: %d entries, %d exact, %d null\n", res.Kind, len(res.Results), res.Exact, res.Absent)
	for i, r := range res.Top {
		fmt.Printf("  #%d line %d score=%.6f %s\n", i+1, r.Index+1, r.Score, quote(r.Input))
	}
}

func quote(s *string) string {
	if s == nil {
		return "<null>"
	}
	return fmt.Sprintf("%q", *s)
}
