package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("not found")

var (
	bucketIrregular = []byte("irregular")
	bucketPrefixes  = []byte("prefixes")
	bucketConcrete  = []byte("concrete")
	bucketTables    = []byte("tables")
	bucketFiles     = []byte("files")
	bucketMeta      = []byte("meta")
)

var allBuckets = [][]byte{bucketIrregular, bucketPrefixes, bucketConcrete, bucketTables, bucketFiles, bucketMeta}

type BoltStore struct {
	db *bbolt.DB
}

var (
	_ port.LexiconStore = (*BoltStore)(nil)
	_ port.TableStore   = (*BoltStore)(nil)
)

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func indexKey(i int) []byte {
	return []byte(fmt.Sprintf("%06d", i))
}

// PutLexicon replaces the stored lexicon in one transaction.
func (s *BoltStore) PutLexicon(irregular []domain.IrregularEntry, prefixes []string, concrete []domain.ConcreteEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketIrregular, bucketPrefixes, bucketConcrete} {
			if err := clearBucket(tx, name); err != nil {
				return err
			}
		}

		irr := tx.Bucket(bucketIrregular)
		for i, e := range irregular {
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := irr.Put(indexKey(i), data); err != nil {
				return err
			}
		}

		pre := tx.Bucket(bucketPrefixes)
		for i, p := range prefixes {
			if err := pre.Put(indexKey(i), []byte(p)); err != nil {
				return err
			}
		}

		con := tx.Bucket(bucketConcrete)
		for _, c := range concrete {
			if err := con.Put([]byte(c.Infinitive), []byte(c.Prefix)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Irregular() ([]domain.IrregularEntry, error) {
	var entries []domain.IrregularEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketIrregular).ForEach(func(k, v []byte) error {
			var e domain.IrregularEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("irregular entry %s: %w", k, err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func (s *BoltStore) Prefixes() ([]string, error) {
	var prefixes []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPrefixes).ForEach(func(_, v []byte) error {
			prefixes = append(prefixes, string(v))
			return nil
		})
	})
	return prefixes, err
}

// Concrete returns the motion verbs ordered by infinitive, which is bolt's key order.
func (s *BoltStore) Concrete() ([]domain.ConcreteEntry, error) {
	var entries []domain.ConcreteEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConcrete).ForEach(func(k, v []byte) error {
			entries = append(entries, domain.ConcreteEntry{Infinitive: string(k), Prefix: string(v)})
			return nil
		})
	})
	return entries, err
}

func tableKey(word string, flags domain.Flags) []byte {
	return []byte(word + "|" + flags.Key())
}

func (s *BoltStore) PutTable(word string, flags domain.Flags, results []domain.Conjugation) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTables).Put(tableKey(word, flags), data)
	})
}

func (s *BoltStore) GetTable(word string, flags domain.Flags) ([]domain.Conjugation, error) {
	var results []domain.Conjugation
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTables).Get(tableKey(word, flags))
		if data == nil {
			return fmt.Errorf("table %s [%s]: %w", word, flags.Key(), ErrNotFound)
		}
		return json.Unmarshal(data, &results)
	})
	return results, err
}

func (s *BoltStore) ListTables() ([]domain.Conjugation, error) {
	var all []domain.Conjugation
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTables).ForEach(func(k, v []byte) error {
			var results []domain.Conjugation
			if err := json.Unmarshal(v, &results); err != nil {
				return fmt.Errorf("table %s: %w", k, err)
			}
			all = append(all, results...)
			return nil
		})
	})
	return all, err
}

func (s *BoltStore) DeleteTable(word string, flags domain.Flags) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTables).Delete(tableKey(word, flags))
	})
}

// BatchPut stores many tables in a single transaction.
func (s *BoltStore) BatchPut(tables []port.StoredTable) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTables)
		for _, t := range tables {
			data, err := json.Marshal(t.Results)
			if err != nil {
				return err
			}
			if err := b.Put(tableKey(t.Word, t.Flags), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// FileModTime returns the modification time recorded for path, or 0 when
// the file has not been seen.
func (s *BoltStore) FileModTime(path string) (int64, error) {
	var modTime int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return nil
		}
		v, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("mod time of %s: %w", path, err)
		}
		modTime = v
		return nil
	})
	return modTime, err
}

func (s *BoltStore) SetFileModTime(path string, modTime int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Put([]byte(path), []byte(strconv.FormatInt(modTime, 10)))
	})
}

func clearBucket(tx *bbolt.Tx, name []byte) error {
	if tx.Bucket(name) != nil {
		if err := tx.DeleteBucket(name); err != nil {
			return err
		}
	}
	_, err := tx.CreateBucket(name)
	return err
}
