package scorer

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"numscore/internal/archive"
	"numscore/internal/corpus"
	"numscore/internal/heuristic"
)

// ErrNoArchive is returned by archive queries on a Scorer built without one.
var ErrNoArchive = errors.New("scorer: archive is not configured")

// Scorer wraps the heuristics with memoization and an optional attempt archive.
// It is safe for concurrent use.
type Scorer struct {
	config  ScorerConfig
	archive *archive.Archive
	cache   sync.Map // map[string]cached, ключ: kind+"\u0000"+input
}

type cached struct {
	score    float64
	distance int64
}

func NewScorer(cfg ScorerConfig, a *archive.Archive) *Scorer {
	if cfg.TopK < 0 {
		cfg.TopK = 0
	}
	return &Scorer{config: cfg, archive: a}
}

func (s *Scorer) Config() ScorerConfig { return s.config }

// Score evaluates in against the grammar of kind.
func (s *Scorer) Score(kind heuristic.Kind, in heuristic.Input) (Result, error) {
	digits := -1
	if kind != heuristic.Float {
		d, ok := kind.MaxDigits()
		if !ok {
			return Result{}, fmt.Errorf("%w: %d", heuristic.ErrUnknownKind, int(kind))
		}
		digits = d
	}
	return s.score(kind.String(), kind, digits, in, true)
}

// ScoreCustom evaluates in against an integer grammar of maxDigits characters.
func (s *Scorer) ScoreCustom(in heuristic.Input, maxDigits int) (Result, error) {
	if maxDigits < 0 {
		return Result{}, heuristic.ErrNegativeDigits
	}
	// в архив попадают только стандартные разрядности
	return s.score("int"+strconv.Itoa(maxDigits), heuristic.Int, maxDigits, in, false)
}

// digits < 0 выбирает грамматику float
func (s *Scorer) score(label string, kind heuristic.Kind, digits int, in heuristic.Input, archived bool) (Result, error) {
	res := Result{Kind: label, Input: in.Ptr()}
	if !in.Present() {
		res.Score = heuristic.UnreachableNullScore
		return res, nil
	}

	key := label + "\u0000" + in.Value()
	var c cached
	hit := false
	if s.config.CacheScores {
		var v interface{}
		if v, hit = s.cache.Load(key); hit {
			c = v.(cached)
		}
	}
	if !hit {
		if digits < 0 {
			c.distance = heuristic.FloatDistance(in)
		} else {
			var err error
			if c.distance, err = heuristic.IntegerDistance(in, digits); err != nil {
				return Result{}, err
			}
		}
		c.score = heuristic.BaseScore
		if in.Value() != "" {
			c.score = heuristic.Normalize(c.distance)
		}
		if s.config.CacheScores {
			s.cache.Store(key, c)
		}
	}

	res.Score, res.Distance, res.Exact = c.score, c.distance, isExact(in, c.distance)
	// запись и при попадании в кэш: архив мог быть сброшен или Redis был недоступен
	if archived {
		s.record(kind, in.Value(), c.score)
	}
	return res, nil
}

// пустая строка не литерал, хотя расстояние у неё нулевое
func isExact(in heuristic.Input, distance int64) bool {
	return in.Present() && in.Value() != "" && distance == 0
}

func (s *Scorer) record(kind heuristic.Kind, input string, score float64) {
	if !s.config.RecordAttempts || s.archive == nil || score < s.config.MinRecordScore {
		return
	}
	if err := s.archive.Record(kind, input, score); err != nil {
		log.Printf("предупреждение: не удалось записать попытку в архив (%s): %v", kind, err)
	}
}

// ScoreCorpus scores every entry of c and ranks the TopK closest ones.
func (s *Scorer) ScoreCorpus(kind heuristic.Kind, c *corpus.Corpus) (BatchResult, error) {
	out := BatchResult{Kind: kind.String()}
	var firstErr error
	c.Each(func(i int, in heuristic.Input) {
		if firstErr != nil {
			return
		}
		r, err := s.Score(kind, in)
		if err != nil {
			firstErr = err
			return
		}
		out.Results = append(out.Results, IndexedResult{Index: i, Result: r})
	})
	if firstErr != nil {
		return BatchResult{}, firstErr
	}
	for _, r := range out.Results {
		if r.Input == nil {
			out.Absent++
		} else if r.Exact {
			out.Exact++
		}
	}
	out.Top = s.rank(out.Results)
	return out, nil
}

// ScoreAll scores inputs in order; used by the batch endpoint.
func (s *Scorer) ScoreAll(kind heuristic.Kind, inputs []heuristic.Input) ([]Result, error) {
	out := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		r, err := s.Score(kind, in)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// сортировка по убыванию score, при равенстве по входу, затем по индексу
func (s *Scorer) rank(results []IndexedResult) []IndexedResult {
	if s.config.TopK == 0 || len(results) == 0 {
		return nil
	}
	ranked := append([]IndexedResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ai, bi := "", ""
		if a.Input != nil {
			ai = *a.Input
		}
		if b.Input != nil {
			bi = *b.Input
		}
		if ai != bi {
			return ai < bi
		}
		return a.Index < b.Index
	})
	if len(ranked) > s.config.TopK {
		ranked = ranked[:s.config.TopK]
	}
	return ranked
}

// Best returns the n best archived attempts for kind.
func (s *Scorer) Best(kind heuristic.Kind, n int) (BestResult, error) {
	if s.archive == nil {
		return BestResult{}, ErrNoArchive
	}
	entries, err := s.archive.Best(kind, n)
	if err != nil {
		return BestResult{}, fmt.Errorf("archive lookup: %w", err)
	}
	return BestResult{Kind: kind.String(), Entries: entries}, nil
}

// ResetArchive drops the archived attempts for kind.
func (s *Scorer) ResetArchive(kind heuristic.Kind) error {
	if s.archive == nil {
		return ErrNoArchive
	}
	return s.archive.Reset(kind)
}
