package scorer

import (
	"numscore/internal/archive"
	"numscore/internal/heuristic"
)

type ScorerConfig struct {
	CacheScores    bool    `yaml:"cache_scores"`
	RecordAttempts bool    `yaml:"record_attempts"`
	MinRecordScore float64 `yaml:"min_record_score"`
	TopK           int     `yaml:"top_k"`
}

// DefaultConfig is used by the binaries when no config file is given.
var DefaultConfig = ScorerConfig{
	CacheScores:    true,
	RecordAttempts: true,
	MinRecordScore: heuristic.BaseScore,
	TopK:           10,
}

type Result struct {
	Kind     string  `json:"kind"`
	Input    *string `json:"input"`
	Score    float64 `json:"score"`
	Distance int64   `json:"distance"`
	Exact    bool    `json:"exact"`
}

type IndexedResult struct {
	Index int `json:"index"`
	Result
}

type BatchResult struct {
	Kind    string          `json:"kind"`
	Results []IndexedResult `json:"results"`
	Top     []IndexedResult `json:"top"`
	Exact   int             `json:"exact"`
	Absent  int             `json:"absent"`
}

type BestResult struct {
	Kind    string          `json:"kind"`
	Entries []archive.Entry `json:"entries"`
}
