package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/game-club/library/pkg/constants"
	"github.com/game-club/library/pkg/errors"
)

// Storage names inside the api directory.
const (
	GameDirName     = "game"
	SummaryFileName = "games.json"
	NewestFileName  = "new.json"
)

// Store reads and writes the persisted catalog: one JSON file per game under
// api/game, plus the summary and newest listing files.
type Store struct {
	apiDir  string
	gameDir string
	logger  zerolog.Logger
}

// NewStore creates a store rooted at the given api directory.
func NewStore(apiDir string, logger zerolog.Logger) *Store {
	return &Store{
		apiDir:  apiDir,
		gameDir: filepath.Join(apiDir, GameDirName),
		logger:  logger,
	}
}

// GameDir returns the per-game file directory.
func (s *Store) GameDir() string {
	return s.gameDir
}

// EnsureDirs creates the api and game directories if missing.
func (s *Store) EnsureDirs() error {
	if err := os.MkdirAll(s.gameDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.gameDir, err)
	}
	return nil
}

// Load reads all persisted game records. Unreadable or invalid files and
// records without an id are skipped and logged; they never fail the load.
func (s *Store) Load() []*Record {
	paths, err := filepath.Glob(filepath.Join(s.gameDir, "*.json"))
	if err != nil {
		s.logger.Error().Err(err).Str("dir", s.gameDir).Msg("Failed to list game files")
		return nil
	}

	var records []*Record
	for _, path := range paths {
		record, err := readRecord(path)
		if err != nil {
			s.logger.Error().Err(err).Str("file", path).Msg("Failed to read game file")
			continue
		}
		if record.ID == "" {
			s.logger.Warn().Str("file", path).Msg("Skipping game file without id")
			continue
		}
		records = append(records, record)
	}
	return records
}

// readRecord reads and decodes one persisted game file.
func readRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &record, nil
}

// Write persists the full output set: the summary listing, the newest slice,
// and one detail file per game.
func (s *Store) Write(records []*Record, summaries, newest []Summary) error {
	if err := s.writeJSON(filepath.Join(s.apiDir, SummaryFileName), summaries); err != nil {
		return err
	}
	if err := s.writeJSON(filepath.Join(s.apiDir, NewestFileName), newest); err != nil {
		return err
	}
	for _, record := range records {
		path := filepath.Join(s.gameDir, record.ID+".json")
		if err := s.writeJSON(path, record); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes a pretty-printed UTF-8 JSON file, preserving non-ASCII
// characters literally.
func (s *Store) writeJSON(path string, value any) error {
	data, err := MarshalRecordJSON(value)
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// MarshalRecordJSON encodes a value the way the catalog files are stored:
// two-space indent, no HTML escaping.
func MarshalRecordJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
