package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T, people, clubs, buildings string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, peopleFile), []byte(people), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, clubsFile), []byte(clubs), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, buildingsFile), []byte(buildings), 0644))
	return dir
}

const validPeople = `
- name: Dr. Omar Khalil
  department: Computer Science
  office: ENG-214
  school: School of Engineering
  email: omar.khalil@example.edu
  office_hours:
    monday: "10:00-12:00"
    wednesday: "14:00-16:00"
- name: Dr. Layla Haddad
  department: Physics
`

const validClubs = `
- name: Chess Society
  category: Games
  email: chess@example.edu
- name: Debate Club
  category: Culture
  description: weekly debate nights
`

const validBuildings = `
eng:
  name: Engineering Building
  nickname: The Hangar
  color: blue
SCI:
  name: Science Complex
  color: green
`

func TestNewFileSource(t *testing.T) {
	t.Run("empty dir rejected", func(t *testing.T) {
		_, err := NewFileSource("")
		assert.Equal(t, ErrDataDirRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		src, err := NewFileSource(t.TempDir())
		require.NoError(t, err)
		assert.NotNil(t, src)
	})
}

func TestLoad(t *testing.T) {
	dir := writeDataDir(t, validPeople, validClubs, validBuildings)
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	ds, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.People, 2)
	omar := ds.People[0]
	assert.Equal(t, "Dr. Omar Khalil", omar.Name)
	assert.Equal(t, "ENG-214", omar.Office)
	assert.Equal(t, "10:00-12:00", omar.OfficeHours["monday"])
	assert.Empty(t, ds.People[1].Email) // optional fields stay empty

	require.Len(t, ds.Clubs, 2)
	assert.Equal(t, "Chess Society", ds.Clubs[0].Name)

	require.Len(t, ds.Buildings, 2)
	info, ok := ds.Buildings["ENG"] // codes uppercased
	require.True(t, ok)
	assert.Equal(t, "The Hangar", info.Nickname)
}

func TestLoad_SkipsInvalidRecords(t *testing.T) {
	people := `
- name: Dr. Omar Khalil
- department: Orphaned Department
- name: "   "
`
	dir := writeDataDir(t, people, validClubs, validBuildings)
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.People, 1)
	assert.Equal(t, "Dr. Omar Khalil", ds.People[0].Name)
}

func TestLoad_FiltersDuplicateClubs(t *testing.T) {
	clubs := `
- name: Chess Society
  category: Games
- name: "chess-society"
  category: Imposters
- name: Debate Club
`
	dir := writeDataDir(t, validPeople, clubs, validBuildings)
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Clubs, 2)
	assert.Equal(t, "Games", ds.Clubs[0].Category) // first occurrence wins
	assert.Equal(t, "Debate Club", ds.Clubs[1].Name)
}

func TestLoad_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, peopleFile), []byte(validPeople), 0644))

	src, err := NewFileSource(dir)
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := writeDataDir(t, "{not valid yaml", validClubs, validBuildings)
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedData)
}
