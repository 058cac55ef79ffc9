// Copyright 2025 Poiesic Systems
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


// Package index owns the in-memory record collections behind a swappable
// snapshot handle.
//
// Readers take the current Snapshot once at call start and use it for the
// duration of the call; a Snapshot is immutable after construction, so reads
// need no synchronization. Reload is the only mutator: it builds a complete
// new snapshot off to the side and publishes it with a single atomic pointer
// swap, so in-flight readers observe either the old or the new generation,
// never a mix. A failed reload keeps serving the last good generation.
package index
