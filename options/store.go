// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"bytes"
	"time"

	"cogentcore.org/gadget/events"
	bolt "go.etcd.io/bbolt"
)

const bucketOptions = "options"

// Store is an [Options] persisted in a bbolt database. Each gadget
// uses its own bucket inside the options bucket.
type Store struct {
	db      *bolt.DB
	gadget  []byte
	changed events.Signal[string]
}

// OpenStore opens or creates the database at path, using the bucket of
// the given gadget id.
func OpenStore(path, gadget string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, gadget: []byte(gadget)}
	err = db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists([]byte(bucketOptions))
		if err != nil {
			return err
		}
		_, err = root.CreateBucketIfNotExists(s.gadget)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) bucket(tx *bolt.Tx) *bolt.Bucket {
	return tx.Bucket([]byte(bucketOptions)).Bucket(s.gadget)
}

func (s *Store) Get(name string) (string, bool) {
	var v []byte
	s.db.View(func(tx *bolt.Tx) error {
		if b := s.bucket(tx).Get([]byte(name)); b != nil {
			v = bytes.Clone(b)
		}
		return nil
	})
	return string(v), v != nil
}

func (s *Store) Put(name, value string) error {
	changed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := s.bucket(tx)
		if old := b.Get([]byte(name)); old != nil && string(old) == value {
			return nil
		}
		changed = true
		return b.Put([]byte(name), []byte(value))
	})
	if err == nil && changed {
		s.changed.Emit(name)
	}
	return err
}

func (s *Store) Remove(name string) error {
	existed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := s.bucket(tx)
		existed = b.Get([]byte(name)) != nil
		return b.Delete([]byte(name))
	})
	if err == nil && existed {
		s.changed.Emit(name)
	}
	return err
}

func (s *Store) Names() []string {
	var names []string
	s.db.View(func(tx *bolt.Tx) error {
		c := s.bucket(tx).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	return names
}

func (s *Store) OnChanged(fun func(name string)) *events.Connection {
	return s.changed.Connect(fun)
}

func (s *Store) Close() error {
	s.changed.DisconnectAll()
	return s.db.Close()
}
