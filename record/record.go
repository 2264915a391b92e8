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
Package record provides the Package Dependency Record returned by a
Source Query Capability, and the Source-Tagged Record gather accumulates
into its Candidate Set.
*/
package record

import (
	"fmt"

	"depfed.dev/gather/dep"
	"depfed.dev/gather/identity"
)

// Record is a package's metadata, already narrowed to a single
// DependencyGroup for the caller's target profile. It is immutable once
// constructed.
type Record struct {
	Identity     identity.Identity
	Listed       bool
	Dependencies []dep.PackageDependency
}

// Tagged pairs a Record with a reference to the source that produced it.
// Source is an opaque, comparable handle — gather only needs to compare
// two Tagged records' Source for equality, never to dereference it.
type Tagged struct {
	Record Record
	Source SourceRef
}

// SourceRef identifies the repository that produced a Record. It is
// deliberately a small comparable value (a name), not the capability
// itself, so Tagged records remain comparable and cheap to store in the
// Candidate Set regardless of how heavyweight the underlying repository
// client is.
type SourceRef struct {
	Name string
}

func (s SourceRef) String() string { return s.Name }

// Key is the (id, version, source) triple that defines equality for a
// Tagged record: two Tagged records are equal iff their identities are
// equal and their source references are equal.
type Key struct {
	CanonicalID string
	Version     string
	Source      string
}

// Key computes the dedup key for t.
func (t Tagged) Key() Key {
	return Key{
		CanonicalID: t.Record.Identity.CanonicalID(),
		Version:     t.Record.Identity.Version.CanonicalKey(),
		Source:      t.Source.Name,
	}
}

func (t Tagged) String() string {
	return fmt.Sprintf("%s (from %s)", t.Record.Identity, t.Source)
}
