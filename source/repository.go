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

package source

import "depfed.dev/gather/record"

// Repository is a reference to one configured repository, tagged with
// the capabilities it exposes. A repository catalog may contain entries
// for repositories that don't implement dependency querying at all
// (e.g. a symbol server, or an archive-only mirror); such a Repository
// has a nil Query and is silently excluded from gather. Modeling this as
// an explicit field, rather than a type assertion on an interface{} or
// runtime reflection over the underlying client, keeps the exclusion
// visible at the call site instead of implicit in interface satisfaction.
type Repository struct {
	Name  string
	Query Capability
}

// SupportsQuery reports whether this repository can be used by gather.
func (r Repository) SupportsQuery() bool { return r.Query != nil }

// Ref returns the comparable SourceRef this repository tags its records
// with.
func (r Repository) Ref() record.SourceRef { return record.SourceRef{Name: r.Name} }
