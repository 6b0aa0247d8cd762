package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 2

var (
	keySchemaVersion = []byte("schema_version")
	keyLexiconHash   = []byte("lexicon_hash")
)

// SchemaInfo stores the schema version and the hash of the lexicon the
// stored tables were computed from.
type SchemaInfo struct {
	Version     int    `json:"version"`
	LexiconHash string `json:"lexicon_hash"`
}

func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if b == nil {
			return nil
		}

		if versionData := b.Get(keySchemaVersion); versionData != nil {
			if err := json.Unmarshal(versionData, &info.Version); err != nil {
				info.Version = 1
			}
		}
		if hashData := b.Get(keyLexiconHash); hashData != nil {
			info.LexiconHash = string(hashData)
		}
		return nil
	})
	return &info, err
}

func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}
		return b.Put(keyLexiconHash, []byte(info.LexiconHash))
	})
}

// ComputeLexiconHash hashes everything in the lexicon that affects a
// conjugation. A different hash means the stored tables are stale.
func ComputeLexiconHash(lex port.Lexicon) string {
	relevant := struct {
		Irregular any `json:"irregular"`
		Prefixes  any `json:"prefixes"`
		Concrete  any `json:"concrete"`
	}{
		Irregular: lex.Irregular(),
		Prefixes:  lex.Prefixes(),
		Concrete:  lex.Concrete(),
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	NeedsMigration bool
	NeedsRebuild   bool
	OldVersion     int
	NewVersion     int
	Reason         string
}

// CheckMigration reports whether the schema must be upgraded or the stored
// tables rebuilt for lex.
func (s *BoltStore) CheckMigration(lex port.Lexicon) (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	switch {
	case info.Version == 0:
		result.NeedsMigration = true
		result.Reason = "initializing schema version"
	case info.Version < CurrentSchemaVersion:
		result.NeedsMigration = true
		result.Reason = fmt.Sprintf("schema upgrade from v%d to v%d", info.Version, CurrentSchemaVersion)
	case info.Version > CurrentSchemaVersion:
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("database created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	if info.LexiconHash != "" && info.LexiconHash != ComputeLexiconHash(lex) {
		result.NeedsRebuild = true
		result.Reason = "lexicon changed"
	}

	return result, nil
}

// Migrate upgrades the schema one version at a time and records the lexicon hash.
func (s *BoltStore) Migrate(lex port.Lexicon) error {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return err
	}

	for v := info.Version; v < CurrentSchemaVersion; v++ {
		if err := s.runMigration(v, v+1); err != nil {
			return fmt.Errorf("migration from v%d to v%d failed: %w", v, v+1, err)
		}
		log.Info().Int("from", v).Int("to", v+1).Msg("store schema migrated")
	}

	return s.SetSchemaInfo(&SchemaInfo{
		Version:     CurrentSchemaVersion,
		LexiconHash: ComputeLexiconHash(lex),
	})
}

func (s *BoltStore) runMigration(from, to int) error {
	switch {
	case from == 1 && to == 2:
		// v2 added motion verbs.
		return s.db.Update(func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(bucketConcrete)
			return err
		})
	default:
		return nil
	}
}

// Clear drops the computed tables and file times so they are rebuilt. The
// lexicon and the schema info are kept.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTables, bucketFiles} {
			if err := clearBucket(tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureCurrent migrates the schema and clears stale tables when lex differs
// from the lexicon they were computed with.
func (s *BoltStore) EnsureCurrent(lex port.Lexicon) error {
	result, err := s.CheckMigration(lex)
	if err != nil {
		return err
	}
	if result.NeedsRebuild {
		log.Info().Str("reason", result.Reason).Msg("clearing stored tables")
		if err := s.Clear(); err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
	}
	if result.NeedsMigration || result.NeedsRebuild {
		return s.Migrate(lex)
	}
	return nil
}
