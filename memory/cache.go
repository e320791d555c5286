// Copyright 2024 The swrlapi-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"

	"github.com/sesuncedu/swrlapi-go/internal/ontology"
)

var axiomBucket = []byte("axioms")

// snapshot is the JSON-serializable form of a Source's asserted axioms,
// keyed by kind.
type snapshot struct {
	ByKind map[ontology.AxiomKind][]ontology.RawAxiom `json:"byKind"`
}

// Cache is an optional bolt-backed persistent cache for a Source's axiom
// set; rules are not part of the stored snapshot. The core engine never
// touches this type; it is purely an external convenience layered on top of
// the in-memory Source.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens (creating if absent) a bolt database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(axiomBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying bolt database.
func (c *Cache) Close() error { return c.db.Close() }

// Store serializes every axiom kind src holds under key.
func (c *Cache) Store(key string, src *Source) error {
	snap := snapshot{ByKind: src.byKind}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(axiomBucket).Put([]byte(key), data)
	})
}

// Load reconstructs a Source from the snapshot stored under key. found is
// false if no snapshot exists for key.
func (c *Cache) Load(key string) (src *Source, found bool, err error) {
	var data []byte
	err = c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(axiomBucket).Get([]byte(key))
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, false, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, err
	}
	s := NewSource()
	s.byKind = snap.ByKind
	return s, true, nil
}
