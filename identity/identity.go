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
Package identity provides Identity, the (id, version) pair that uniquely
names a package release across the federated sources gather queries.
*/
package identity

import (
	"fmt"
	"strings"

	"depfed.dev/gather/pkgver"
)

// Identity names a specific release of a package: a case-insensitive id
// paired with a structurally-normalized Version.
type Identity struct {
	ID      string
	Version pkgver.Version
}

// New builds an Identity from an id and a raw version string.
func New(id, version string) Identity {
	return Identity{ID: id, Version: pkgver.Parse(version)}
}

// CanonicalID returns the id lower-cased, the form used for comparison
// and as a map key throughout gather.
func (i Identity) CanonicalID() string { return strings.ToLower(i.ID) }

// Equal reports whether i and o name the same release: ids compared
// case-insensitively, versions compared structurally.
func (i Identity) Equal(o Identity) bool {
	return i.CanonicalID() == o.CanonicalID() && i.Version.Equal(o.Version)
}

func (i Identity) String() string {
	return fmt.Sprintf("%s@%s", i.ID, i.Version)
}
