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


// Package ingest loads directory datasets from YAML data files.
//
// FileSource reads people.yaml, clubs.yaml, and buildings.yaml from a data
// directory. It owns all validation on the way in: records missing the
// required name field are skipped with a warning, duplicate club names are
// filtered (first occurrence wins, compared by canonical key), and building
// codes are uppercased. Optional fields may simply be absent. Any unreadable
// or malformed file fails the whole load, which leaves a reloading index
// serving its previous generation.
package ingest
