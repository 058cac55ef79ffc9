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


package index

import (
	"sort"
	"strings"
	"time"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/match"
)

// Snapshot is one complete, immutable generation of the record index.
// All fields are read-only after construction.
type Snapshot struct {
	People    []*core.Person
	Clubs     []*core.Club
	Buildings map[string]core.BuildingInfo

	// Departments is derived from People: deduplicated by canonical key
	// (first display form wins) and sorted.
	Departments []string

	Generation uint64
	LoadedAt   time.Time
}

// newSnapshot builds a generation from a loaded dataset, deriving the
// department list.
func newSnapshot(generation uint64, ds *core.Dataset) *Snapshot {
	s := &Snapshot{
		Buildings:  map[string]core.BuildingInfo{},
		Generation: generation,
		LoadedAt:   time.Now().UTC(),
	}
	if ds != nil {
		s.People = ds.People
		s.Clubs = ds.Clubs
		for code, info := range ds.Buildings {
			s.Buildings[strings.ToUpper(strings.TrimSpace(code))] = info
		}
	}

	seen := make(map[string]bool)
	for _, p := range s.People {
		key := match.Normalize(p.Department)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		s.Departments = append(s.Departments, p.Department)
	}
	sort.Strings(s.Departments)

	return s
}

// Building looks up a legend entry by its uppercase code.
func (s *Snapshot) Building(code string) (core.BuildingInfo, bool) {
	info, ok := s.Buildings[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// BuildingForOffice resolves an office string like "ENG-214" to the legend
// entry whose code is the longest matching prefix of the uppercased office.
func (s *Snapshot) BuildingForOffice(office string) (core.BuildingInfo, bool) {
	o := strings.ToUpper(strings.TrimSpace(office))
	if o == "" {
		return core.BuildingInfo{}, false
	}

	var best string
	for code := range s.Buildings {
		if code != "" && strings.HasPrefix(o, code) && len(code) > len(best) {
			best = code
		}
	}
	if best == "" {
		return core.BuildingInfo{}, false
	}
	return s.Buildings[best], true
}

// PeopleInDepartment returns the people whose department equals the given
// name under canonical comparison, in load order.
func (s *Snapshot) PeopleInDepartment(department string) []*core.Person {
	key := match.Normalize(department)
	if key == "" {
		return nil
	}

	var out []*core.Person
	for _, p := range s.People {
		if match.Normalize(p.Department) == key {
			out = append(out, p)
		}
	}
	return out
}
