package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores solver settings shared by the GUI and CLI.
type UserPreferences struct {
	Seed       int64         `json:"seed"`
	FrameDelay time.Duration `json:"frame_delay"`
	AutoStep   bool          `json:"auto_step"`
	LastScene  string        `json:"last_scene"`
	LastRun    time.Time     `json:"last_run"`
}

// DefaultPreferences returns default solver preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Seed:       0,
		FrameDelay: 10 * time.Millisecond,
		AutoStep:   true,
		LastScene:  "sudoku",
		LastRun:    time.Now(),
	}
}

// RunStats stores solve statistics across runs.
type RunStats struct {
	Runs          int            `json:"runs"`
	Solved        int            `json:"solved"`
	Unsolved      int            `json:"unsolved"`
	RunsByScene   map[string]int `json:"runs_by_scene"`
	SolvedByScene map[string]int `json:"solved_by_scene"`
	TotalTime     time.Duration  `json:"total_time"`
	TotalSteps    uint64         `json:"total_steps"`
	LongestStreak int            `json:"longest_streak"`
	CurrentStreak int            `json:"current_streak"`
}

// NewRunStats returns empty run statistics.
func NewRunStats() *RunStats {
	return &RunStats{
		RunsByScene:   make(map[string]int),
		SolvedByScene: make(map[string]int),
	}
}

// RunResult represents the outcome of one solver run.
type RunResult struct {
	Scene    string
	Solved   bool
	Steps    uint64
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// New opens the storage database in the platform data directory.
func New() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the storage database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves solver preferences.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastRun = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads solver preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves run statistics.
func (s *Storage) SaveStats(stats *RunStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads run statistics, returns empty stats if not found.
func (s *Storage) LoadStats() (*RunStats, error) {
	stats := NewRunStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordRun records a completed solver run and updates statistics.
func (s *Storage) RecordRun(result RunResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Runs++
	stats.TotalTime += result.Duration
	stats.TotalSteps += result.Steps
	stats.RunsByScene[result.Scene]++

	if result.Solved {
		stats.Solved++
		stats.SolvedByScene[result.Scene]++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	} else {
		stats.Unsolved++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// SolveRate returns the fraction of runs that solved, as a percentage.
func (s *RunStats) SolveRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Runs) * 100
}
