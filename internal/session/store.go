package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnavailable = errors.New("session: persistent storage unavailable")

const progressObject = "progress"

// Progress is where a viewer left a catalog.
type Progress struct {
	Catalog  string    `yaml:"catalog"`
	Waypoint int       `yaml:"waypoint"`
	Exhibits int       `yaml:"exhibits"`
	SavedAt  time.Time `yaml:"savedAt"`
}

// Store remembers viewing progress per catalog. With a nil gdata manager it
// keeps progress in memory only and never fails.
type Store struct {
	gdataManager *gdata.Manager
	memory       map[string]Progress
	logger       *log.Logger
}

// Open opens the platform data directory for appName. If that fails the
// returned store is still usable in memory, and the error wraps
// ErrUnavailable.
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil, logger), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return NewStore(m, logger), nil
}

func NewStore(m *gdata.Manager, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{gdataManager: m, memory: make(map[string]Progress), logger: logger}
}

func (s *Store) Persistent() bool {
	return s.gdataManager != nil
}

// Key derives the storage key for a catalog path.
func Key(catalogPath string) string {
	if abs, err := filepath.Abs(catalogPath); err == nil {
		catalogPath = abs
	}
	hash := sha256.Sum256([]byte(catalogPath))
	return hex.EncodeToString(hash[:8])
}

// Load returns the saved progress for catalogPath. ok is false when nothing
// was saved.
func (s *Store) Load(catalogPath string) (p Progress, ok bool, err error) {
	key := Key(catalogPath)
	if p, ok := s.memory[key]; ok {
		return p, true, nil
	}
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(progressObject, key) {
		return Progress{}, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(progressObject, key)
	if err != nil {
		return Progress{}, false, fmt.Errorf("session: load progress: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, false, fmt.Errorf("session: unmarshal progress: %w", err)
	}
	s.memory[key] = p
	return p, true, nil
}

// Save records p for p.Catalog.
func (s *Store) Save(p Progress) error {
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now()
	}
	key := Key(p.Catalog)
	s.memory[key] = p
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("session: marshal progress: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(progressObject, key, data); err != nil {
		return fmt.Errorf("session: save progress: %w", err)
	}
	s.logger.Debug("progress saved", "catalog", p.Catalog, "waypoint", p.Waypoint)
	return nil
}
