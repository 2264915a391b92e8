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

package gather

import "errors"

// ErrNoSourcesAvailable is returned during initialization when none of the
// sources passed to Gather implement the query capability. It is raised
// before any network query is attempted.
var ErrNoSourcesAvailable = errors.New("gather: no configured source implements the query capability")

// Cancellation is reported by returning the context's own error
// (context.Canceled or context.DeadlineExceeded) from Gather, wrapped
// with the realm so it is identifiable in logs; callers should test with
// errors.Is against context.Canceled / context.DeadlineExceeded, not
// against a gather-specific sentinel.
