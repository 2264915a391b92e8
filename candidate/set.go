// Copyright 2024 The Depfed Authors
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

/*
Package candidate provides Set, the concurrency-safe deduplicated
accumulator of Source-Tagged Records gather produces.
*/
package candidate

import (
	"sort"
	"sync"

	"depfed.dev/gather/record"
)

// Set is a concurrency-safe set of record.Tagged values, deduplicated by
// record.Tagged.Key (id case-insensitive, version structural, source).
// The zero value is not usable; use New.
type Set struct {
	mu     sync.Mutex
	byKey  map[record.Key]record.Tagged
	idCase map[string]string // canonical (lower) id -> first-seen casing
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		byKey:  make(map[record.Key]record.Tagged),
		idCase: make(map[string]string),
	}
}

// Insert adds t to the set if no equal record (per record.Tagged.Key) is
// already present, and reports whether it was new. Safe for concurrent
// callers.
func (s *Set) Insert(t record.Tagged) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := t.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = t

	canon := t.Record.Identity.CanonicalID()
	if _, ok := s.idCase[canon]; !ok {
		s.idCase[canon] = t.Record.Identity.ID
	}
	return true
}

// Snapshot returns the current contents of the set. Insertion order is
// not observable: the result is sorted for determinism under concurrent,
// possibly reordered insertion, not because the order itself is
// meaningful.
func (s *Set) Snapshot() []record.Tagged {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]record.Tagged, 0, len(s.byKey))
	for _, t := range s.byKey {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].Key(), out[j].Key()
		if ki.CanonicalID != kj.CanonicalID {
			return ki.CanonicalID < kj.CanonicalID
		}
		if ki.Version != kj.Version {
			return ki.Version < kj.Version
		}
		return ki.Source < kj.Source
	})
	return out
}

// KnownIDs returns the union of canonical (lower-cased) identity ids
// across every record currently in the set. Cheap: backed by the same
// map Insert already maintains, so it costs no extra bookkeeping.
func (s *Set) KnownIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.idCase))
	for id := range s.idCase {
		out = append(out, id)
	}
	return out
}

// Len returns the number of distinct records currently in the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}
