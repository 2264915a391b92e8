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
Package ledger provides Ledger, the per-source bookkeeping of which
package ids have already been queried against which repository, plus the
global set of ids discovered anywhere. Together they let the Gather
Driver's fixed-point loop terminate: an id is recorded against a source
the moment a query for it is dispatched there (whether or not that query
ultimately succeeds), so it is never queried twice against the same
source; the global discovered set is what lets an id a source has never
been asked about enter the universe in the first place.

See DESIGN.md for why the "discovered" ids and the per-source "queried"
ids are tracked separately, rather than folding a record's declared
dependency ids directly into the returning source's queried set, which
for mixed-host dependency chains leaves a dependency id's own source
unqueried for it.
*/
package ledger

import (
	"strings"
	"sync"
)

// Ledger tracks, per source, which ids have been queried there, and
// globally, which ids have been discovered at all (queried anywhere, or
// named as a dependency by some inserted record). The zero value is not
// usable; use New. Safe for concurrent use.
type Ledger struct {
	mu         sync.Mutex
	perSrc     map[string]map[string]struct{}
	discovered map[string]struct{}
}

// New returns a Ledger with an empty entry for each of the given source
// names, satisfying the invariant that every configured source has a
// ledger entry from the start of a gather invocation.
func New(sources []string) *Ledger {
	l := &Ledger{
		perSrc:     make(map[string]map[string]struct{}, len(sources)),
		discovered: make(map[string]struct{}),
	}
	for _, s := range sources {
		l.perSrc[s] = make(map[string]struct{})
	}
	return l
}

// MarkQueried records id as queried against source, and reports whether
// it was new there. It also adds id to the globally discovered set.
// Ledger entries only grow: once marked, an (source, id) pair is never
// unmarked.
func (l *Ledger) MarkQueried(source, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	canon := strings.ToLower(id)
	ids, ok := l.perSrc[source]
	if !ok {
		ids = make(map[string]struct{})
		l.perSrc[source] = ids
	}
	l.discovered[canon] = struct{}{}
	if _, seen := ids[canon]; seen {
		return false
	}
	ids[canon] = struct{}{}
	return true
}

// MarkDiscovered adds id to the globally discovered set without marking
// it queried against any particular source. It reports whether id was
// new to the universe. Call this for every dependency id a record
// declares, regardless of which source produced the record: the id
// still needs its own query dispatched, possibly including back against
// the very source that declared it.
func (l *Ledger) MarkDiscovered(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	canon := strings.ToLower(id)
	if _, ok := l.discovered[canon]; ok {
		return false
	}
	l.discovered[canon] = struct{}{}
	return true
}

// Has reports whether id has already been queried against source.
func (l *Ledger) Has(source, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.perSrc[source][strings.ToLower(id)]
	return ok
}

// Missing returns the subset of universe not yet queried against
// source.
func (l *Ledger) Missing(source string, universe []string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	queried := l.perSrc[source]
	out := make([]string, 0, len(universe))
	for _, id := range universe {
		if _, ok := queried[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Universe returns every id discovered so far: queried at some source,
// or named as a dependency by some inserted record.
func (l *Ledger) Universe() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.discovered))
	for id := range l.discovered {
		out = append(out, id)
	}
	return out
}
