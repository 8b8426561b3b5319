package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"numscore/internal/archive"
	"numscore/internal/scorer"
	"numscore/pkg/options"
)

// Config holds everything the binaries need to start.
type Config struct {
	HTTPAddr string              `yaml:"http_addr"`
	Redis    RedisConfig         `yaml:"redis"`
	Scorer   scorer.ScorerConfig `yaml:"scorer"`
	Corpus   CorpusConfig        `yaml:"corpus"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type CorpusConfig struct {
	NullMarker string `yaml:"null_marker"`
	TrimSpace  bool   `yaml:"trim_space"`
	SkipEmpty  bool   `yaml:"skip_empty"`
}

func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Redis: RedisConfig{
			Enabled: true,
			Addr:    "localhost:6379",
			Prefix:  archive.DefaultPrefix,
		},
		Scorer: scorer.DefaultConfig,
		Corpus: CorpusConfig{NullMarker: "<null>"},
	}
}

// Load reads the YAML file at path (if any) over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.Prefix = getenv("ARCHIVE_PREFIX", cfg.Redis.Prefix)
	cfg.Redis.Enabled = getEnvBool("ARCHIVE_ENABLED", cfg.Redis.Enabled)
	cfg.Scorer.TopK = getEnvInt("TOP_K", cfg.Scorer.TopK)
	cfg.Corpus.NullMarker = getenv("NULL_MARKER", cfg.Corpus.NullMarker)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	log.Printf("ignoring %s=%q: not an integer", key, v)
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	log.Printf("ignoring %s=%q: not a boolean", key, v)
	return def
}

// Options converts the corpus section into reader options.
func (c CorpusConfig) Options() []options.Options {
	opts := []options.Options{options.WithNullMarker(c.NullMarker)}
	if c.TrimSpace {
		opts = append(opts, options.WithTrimSpace())
	}
	if c.SkipEmpty {
		opts = append(opts, options.WithSkipEmpty())
	}
	return opts
}
