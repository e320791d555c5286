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

// Package resolver implements C7: the name->entity resolver and the
// argument/literal factories used throughout the rest of the core.
package resolver

import (
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/sesuncedu/swrlapi-go/internal/entity"
)

// Resolver records every entity referenced while processing an ontology,
// keyed by kind and Identifier, and answers lookups. Records are additive
// within a session and cleared only by Reset (mirroring the ontology
// processor's reset-then-rewalk protocol, §4.4).
type Resolver struct {
	mu      sync.RWMutex
	entities map[entity.Kind]map[entity.Identifier]entity.Entity
}

// New returns an empty Resolver.
func New() *Resolver {
	r := &Resolver{}
	r.Reset()
	return r
}

// Reset clears all recorded entities.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = map[entity.Kind]map[entity.Identifier]entity.Entity{
		entity.Class:              {},
		entity.NamedIndividual:    {},
		entity.ObjectProperty:     {},
		entity.DataProperty:       {},
		entity.AnnotationProperty: {},
		entity.Datatype:           {},
	}
}

// Record adds e to the resolver under its kind, idempotently.
func (r *Resolver) Record(e entity.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[e.Kind][e.ID] = e
}

// Resolve looks up an entity of the given kind by Identifier.
func (r *Resolver) Resolve(kind entity.Kind, id entity.Identifier) (entity.Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[kind][id]
	return e, ok
}

// AllOfKind returns every entity recorded under the given kind.
func (r *Resolver) AllOfKind(kind entity.Kind) []entity.Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Entity, 0, len(r.entities[kind]))
	for _, e := range r.entities[kind] {
		out = append(out, e)
	}
	return out
}

// NewAnonymousIndividual mints a synthetic Identifier for a built-in that
// needs to introduce a fresh individual with no source-level name (e.g. a
// SQWRL collection's implicit bookkeeping individual), records it, and
// returns the resulting Entity.
func (r *Resolver) NewAnonymousIndividual() entity.Entity {
	id := entity.NewPrefixedIdentifier("urn:swrlapi:anon", uuid.NewV4().String())
	e := entity.New(entity.NamedIndividual, id)
	r.Record(e)
	return e
}

func (r *Resolver) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, m := range r.entities {
		total += len(m)
	}
	return fmt.Sprintf("resolver(%d entities)", total)
}
