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


// Package storage defines persistence contracts for query history and usage
// stats, plus the MUS binary serialization used for stored values.
//
// The searchable directory index itself is never persisted; it lives in
// memory and is rebuilt wholesale on reload. Storage only records what was
// asked and what it matched, so usage can be inspected after the fact.
package storage
