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


package campusdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/poiesic/campusdir/core"
)

const testPeople = `
- name: Omar Khalil
  department: Computer Science
  office: ENG-204
  school: School of Engineering
  email: omar.khalil@example.edu
  office_hours:
    monday: "10:00-12:00"
    wednesday: "14:00-16:00"
- name: Layla Haddad
  department: Computer Science
  office: ENG-210
  school: School of Engineering
  email: layla.haddad@example.edu
- name: Mohammad Al Rashid
  department: Mathematics
  office: SCI-110
  school: School of Science
  email: m.alrashid@example.edu
- name: Sara Nassar
  department: Biology
  office: SCI-305
  school: School of Science
  email: sara.nassar@example.edu
`

const testClubs = `
- name: Chess Club
  category: Games
  email: chess@example.edu
  social: "@chessclub"
  description: Weekly blitz tournaments and casual play.
- name: Robotics Society
  category: Engineering
  email: robotics@example.edu
  social: "@robotics"
  description: Build and compete with autonomous robots.
`

const testBuildings = `
ENG:
  name: Engineering Building
  nickname: The Workshop
  color: blue
SCI:
  name: Science Complex
  nickname: The Labs
  color: green
`

func writeTestData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.yaml"), []byte(testPeople), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clubs.yaml"), []byte(testClubs), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buildings.yaml"), []byte(testBuildings), 0o644))
	return dir
}

func newTestAssistant(t *testing.T, opts ...AssistantOption) *Assistant {
	t.Helper()
	a, err := New(writeTestData(t), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })
	return a
}

func TestNew_RequiresDataDir(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestNew_MissingDataServesEmptyIndex(t *testing.T) {
	a, err := New(t.TempDir())
	require.NoError(t, err)
	defer a.Close()

	require.Empty(t, a.Search("omar"))
	require.Empty(t, a.Departments())
}

func TestSearch(t *testing.T) {
	a := newTestAssistant(t)

	people := a.Search("omar khalil")
	require.NotEmpty(t, people)
	require.Equal(t, "Omar Khalil", people[0].Name)

	// Typos still resolve through the fuzzy tier.
	people = a.Search("mohamad al rashid")
	require.NotEmpty(t, people)
	require.Equal(t, "Mohammad Al Rashid", people[0].Name)

	require.Empty(t, a.Search("x"), "sub-minimum queries return nothing")
	require.Empty(t, a.Search("zzqy"))
}

func TestSearch_SecondaryFields(t *testing.T) {
	a := newTestAssistant(t)

	people := a.Search("computer science")
	require.Len(t, people, 2)
	for _, p := range people {
		require.Equal(t, "Computer Science", p.Department)
	}
}

func TestSearchClubs(t *testing.T) {
	a := newTestAssistant(t)

	clubs := a.SearchClubs("chess")
	require.NotEmpty(t, clubs)
	require.Equal(t, "Chess Club", clubs[0].Name)

	clubs = a.SearchClubs("robotics")
	require.NotEmpty(t, clubs)
	require.Equal(t, "Robotics Society", clubs[0].Name)
}

func TestDepartments(t *testing.T) {
	a := newTestAssistant(t)

	require.Equal(t, []string{"Biology", "Computer Science", "Mathematics"}, a.Departments())
}

func TestSearchByDepartment(t *testing.T) {
	a := newTestAssistant(t)

	people := a.SearchByDepartment("computer science")
	require.Len(t, people, 2)
	require.Equal(t, "Omar Khalil", people[0].Name)
	require.Equal(t, "Layla Haddad", people[1].Name)

	require.Empty(t, a.SearchByDepartment("philosophy"))
}

func TestAsk(t *testing.T) {
	a := newTestAssistant(t)

	result := a.Ask("what are the office hours of omar khalil?")
	require.NotNil(t, result)
	require.Equal(t, core.IntentOfficeHours, result.Intent)
	require.Equal(t, "omar khalil", result.Entity)

	result = a.Ask("something with no question in it")
	require.Nil(t, result)
}

func TestBuildingLookups(t *testing.T) {
	a := newTestAssistant(t)

	info, ok := a.Building("eng")
	require.True(t, ok)
	require.Equal(t, "Engineering Building", info.Name)

	info, ok = a.BuildingForOffice("SCI-110")
	require.True(t, ok)
	require.Equal(t, "Science Complex", info.Name)

	_, ok = a.Building("LIB")
	require.False(t, ok)
}

func TestReload(t *testing.T) {
	dir := writeTestData(t)
	a, err := New(dir)
	require.NoError(t, err)
	defer a.Close()

	require.Len(t, a.Search("omar khalil"), 1)

	extra := testPeople + `
- name: Omar Haddad
  department: Physics
  office: SCI-220
  school: School of Science
  email: omar.haddad@example.edu
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.yaml"), []byte(extra), 0o644))

	res := a.Reload(context.Background())
	require.True(t, res.OK)
	require.Equal(t, 5, res.People)

	require.Len(t, a.Search("omar"), 2)
}

func TestReload_FailureKeepsServing(t *testing.T) {
	dir := writeTestData(t)
	a, err := New(dir)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.yaml"), []byte("{not valid"), 0o644))

	res := a.Reload(context.Background())
	require.False(t, res.OK)
	require.NotEmpty(t, res.Err)

	// The previous generation still answers.
	require.NotEmpty(t, a.Search("omar khalil"))
}

func TestHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history")
	a := newTestAssistant(t, WithHistory(dbPath))

	// Drain between queries so the non-blocking recorder pool never saturates.
	waitForTotal := func(want int) {
		require.Eventually(t, func() bool {
			stats, err := a.Stats(context.Background())
			return err == nil && stats.Total == want
		}, 5*time.Second, 10*time.Millisecond)
	}

	a.Search("omar khalil")
	waitForTotal(1)
	a.SearchClubs("chess")
	waitForTotal(2)
	a.Ask("what are the office hours of sara nassar?")
	waitForTotal(3)

	entries, err := a.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.ByKind[core.QueryKindPeople])
	require.Equal(t, 1, stats.ByKind[core.QueryKindClubs])
	require.Equal(t, 1, stats.ByKind[core.QueryKindQuestion])
	require.Equal(t, 1, stats.ByIntent[core.IntentOfficeHours])
}

func TestHistory_Disabled(t *testing.T) {
	a := newTestAssistant(t)

	a.Search("omar khalil")

	entries, err := a.History(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, entries)

	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	require.Nil(t, stats)
}
