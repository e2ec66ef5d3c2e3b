// Package cache persists computed availability responses for past dates.
// Past schedules never change once snapshotted, so entries have no TTL.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// AvailabilityBucket bucket с ответами по датам
	AvailabilityBucket = "availability"

	availabilityKeyPrefix = "availability:"

	openTimeout = time.Second
)

// AvailabilityKey ключ записи для даты (YYYY-MM-DD)
func AvailabilityKey(date string) string {
	return availabilityKeyPrefix + date
}

// BoltStore JSON-хранилище поверх bbolt
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore открывает (или создает) файл кэша
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewBoltStore - create dir %s: %v", ErrOpen, filepath.Dir(path), err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: NewBoltStore - open %s: %v", ErrOpen, path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(AvailabilityBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: NewBoltStore - create bucket: %v", ErrOpen, err)
	}

	return &BoltStore{db: db}, nil
}

// Get читает запись в dest. found=false, если ключа нет.
func (s *BoltStore) Get(key string, dest interface{}) (bool, error) {
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(AvailabilityBucket))
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		found = true
		return json.Unmarshal(data, dest)
	})
	if err != nil {
		return false, fmt.Errorf("%w: Get - key %s: %v", ErrRead, key, err)
	}

	return found, nil
}

// Set сохраняет value под ключом, перезаписывая старое значение
func (s *BoltStore) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal key %s: %v", ErrWrite, key, err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(AvailabilityBucket))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrWrite, key, err)
	}

	return nil
}

// Delete удаляет запись; отсутствие ключа не ошибка
func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(AvailabilityBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: Delete - key %s: %v", ErrWrite, key, err)
	}
	return nil
}

// Len количество записей
func (s *BoltStore) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(AvailabilityBucket))
		if bucket == nil {
			return nil
		}
		n = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: Len: %v", ErrRead, err)
	}
	return n, nil
}

// Close закрывает файл кэша
func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
