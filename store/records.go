package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
)

const (
	HighScoreKey   = "pro_juggler_highscore"
	LeaderboardKey = "pro_juggler_leaderboard"
)

// Records is the score persistence adapter. Reads never fail: a missing or
// unreadable value is logged and reported as the default (0 or empty).
type Records struct {
	kv   KV
	size int
}

func NewRecords(kv KV, size int) *Records {
	if kv == nil {
		kv = NewMemoryKV()
	}
	return &Records{kv: kv, size: size}
}

// Open returns records kept under dir. If dir cannot be used the records
// live in memory for this run only.
func Open(dir string, size int) *Records {
	kv, err := NewFileKV(dir)
	if err != nil {
		log.Printf("store: %v; scores will not be saved", err)
		return NewRecords(NewMemoryKV(), size)
	}
	return NewRecords(kv, size)
}

func (r *Records) HighScore() int {
	var score int
	if !r.load(HighScoreKey, &score) || score < 0 {
		return 0
	}
	return score
}

func (r *Records) SetHighScore(score int) error {
	return r.save(HighScoreKey, score)
}

// Leaderboard returns the stored scores, best first, at most size entries.
func (r *Records) Leaderboard() []int {
	var board []int
	if !r.load(LeaderboardKey, &board) {
		return []int{}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(board)))
	if r.size > 0 && len(board) > r.size {
		board = board[:r.size]
	}
	return board
}

func (r *Records) SetLeaderboard(board []int) error {
	if board == nil {
		board = []int{}
	}
	return r.save(LeaderboardKey, board)
}

func (r *Records) load(key string, dst any) bool {
	data, err := r.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("store: %v", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("store: decode %s: %v", key, err)
		return false
	}
	return true
}

func (r *Records) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return r.kv.Put(key, data)
}

// InsertScore returns a new board with score added, sorted best first and
// truncated to size entries.
func InsertScore(board []int, score, size int) []int {
	out := make([]int, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, score)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if size > 0 && len(out) > size {
		out = out[:size]
	}
	return out
}
