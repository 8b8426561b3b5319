package archive

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"numscore/internal/heuristic"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "numscore:archive"

// ErrNoClient is returned by an Archive built without a Redis client.
var ErrNoClient = errors.New("archive: redis client is nil")

// Archive keeps the best-scoring parse attempts per numeric kind in Redis
// sorted sets, so a search can reuse them as seeds.
type Archive struct {
	client *redis.Client
	prefix string
}

// Entry is one archived attempt.
type Entry struct {
	Input string  `json:"input"`
	Score float64 `json:"score"`
}

// New creates an Archive on top of the provided Redis client.
func New(client *redis.Client, prefix string) *Archive {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Archive{client: client, prefix: prefix}
}

func (a *Archive) key(kind heuristic.Kind) string {
	return a.prefix + ":" + kind.String()
}

// Record stores input under kind, keeping the highest score seen for it.
func (a *Archive) Record(kind heuristic.Kind, input string, score float64) error {
	if a.client == nil {
		return ErrNoClient
	}
	// GT не опускает уже записанный лучший результат
	return a.client.ZAddGT(context.Background(), a.key(kind), redis.Z{Score: score, Member: input}).Err()
}

// Best returns the n highest-scoring attempts for kind; n <= 0 returns all.
func (a *Archive) Best(kind heuristic.Kind, n int) ([]Entry, error) {
	if a.client == nil {
		return nil, ErrNoClient
	}
	stop := int64(n) - 1
	if n <= 0 {
		stop = -1
	}
	zs, err := a.client.ZRevRangeWithScores(context.Background(), a.key(kind), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		out = append(out, Entry{Input: member, Score: z.Score})
	}
	return out, nil
}

// Remove deletes one attempt from the archive of kind.
func (a *Archive) Remove(kind heuristic.Kind, input string) error {
	if a.client == nil {
		return ErrNoClient
	}
	return a.client.ZRem(context.Background(), a.key(kind), input).Err()
}

// Reset drops every attempt recorded for kind.
func (a *Archive) Reset(kind heuristic.Kind) error {
	if a.client == nil {
		return ErrNoClient
	}
	return a.client.Del(context.Background(), a.key(kind)).Err()
}

// Count returns the number of distinct attempts recorded for kind.
func (a *Archive) Count(kind heuristic.Kind) (int64, error) {
	if a.client == nil {
		return 0, ErrNoClient
	}
	return a.client.ZCard(context.Background(), a.key(kind)).Result()
}
