// Package bbolt provides a BBolt-backed site profile repository.
package bbolt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jmcleod/argonpass/storage"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("sites")

const recordType = "profile"

// Store implements storage.Repository backed by a BBolt database.
type Store struct {
	db *bbolt.DB
}

var _ storage.Repository = (*Store)(nil)

// NewRepository returns a Repository backed by the given BBolt database.
func NewRepository(db *bbolt.DB) *Store {
	return &Store{db: db}
}

// NewRepositoryFromFile opens a BBolt database at the given path and returns a new Repository.
func NewRepositoryFromFile(path string, options *bbolt.Options) (*Store, error) {
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	return NewRepository(db), nil
}

// Close closes the underlying BBolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(site string) []byte {
	return []byte(recordType + ":" + site)
}

func (s *Store) Put(profile *storage.SiteProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		data, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		return b.Put(recordKey(profile.Site), data)
	})
}

func (s *Store) Get(site string) (*storage.SiteProfile, error) {
	var profile storage.SiteProfile
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("%s: %w", site, storage.ErrNotFound)
		}
		data := b.Get(recordKey(site))
		if data == nil {
			return fmt.Errorf("%s: %w", site, storage.ErrNotFound)
		}
		return json.Unmarshal(data, &profile)
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) Delete(site string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("%s: %w", site, storage.ErrNotFound)
		}
		key := recordKey(site)
		if b.Get(key) == nil {
			return fmt.Errorf("%s: %w", site, storage.ErrNotFound)
		}
		return b.Delete(key)
	})
}

// List returns stored site names in key order.
func (s *Store) List() ([]string, error) {
	var sites []string
	prefix := []byte(recordType + ":")
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			sites = append(sites, string(k[len(prefix):]))
		}
		return nil
	})
	return sites, err
}
