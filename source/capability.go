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
Package source defines the Source Query Capability: the boundary between
the gather core and transport-specific repository adapters.
*/
package source

import (
	"context"

	"depfed.dev/gather/identity"
	"depfed.dev/gather/profile"
	"depfed.dev/gather/record"
)

// Capability is implemented by anything that can answer dependency
// metadata queries for a single repository. Implementations MUST be safe
// for concurrent use: the Gather Driver reuses one Capability per source
// across every pass of the fixed-point loop and dispatches queries
// against it concurrently.
type Capability interface {
	// ResolveByIdentity returns zero or one Record per requested
	// identity, narrowed to profile. The order of the result is
	// unspecified; callers match by identity. A request for an
	// identity this source has never heard of is not an error: it is
	// simply absent from the result.
	ResolveByIdentity(ctx context.Context, identities []identity.Identity, target profile.Profile, includePrerelease bool) ([]record.Record, error)

	// ResolveByID returns every version of id known to this source,
	// listed or not, each narrowed to profile. Prerelease versions are
	// included only when includePrerelease is true. The result may be
	// empty.
	ResolveByID(ctx context.Context, id string, target profile.Profile, includePrerelease bool) ([]record.Record, error)
}
