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


package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/index"
	"github.com/poiesic/campusdir/match"
)

const (
	peopleFile    = "people.yaml"
	clubsFile     = "clubs.yaml"
	buildingsFile = "buildings.yaml"
)

// personDoc is the YAML shape of one person record.
type personDoc struct {
	Name        string            `yaml:"name"`
	Department  string            `yaml:"department"`
	Office      string            `yaml:"office"`
	School      string            `yaml:"school"`
	Email       string            `yaml:"email"`
	OfficeHours map[string]string `yaml:"office_hours"`
}

// clubDoc is the YAML shape of one club record.
type clubDoc struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Email       string `yaml:"email"`
	Social      string `yaml:"social"`
	Description string `yaml:"description"`
}

// buildingDoc is the YAML shape of one building legend entry.
type buildingDoc struct {
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname"`
	Color    string `yaml:"color"`
}

// FileSource loads datasets from a directory of YAML files.
type FileSource struct {
	dir    string
	logger *slog.Logger
}

var _ index.Source = (*FileSource)(nil)

// Option configures a FileSource.
type Option func(*FileSource) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *FileSource) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewFileSource creates a source reading from the given data directory.
func NewFileSource(dir string, opts ...Option) (*FileSource, error) {
	if dir == "" {
		return nil, ErrDataDirRequired
	}

	s := &FileSource{
		dir:    dir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load reads and validates all three data files into one dataset. Any
// unreadable or malformed file fails the whole load.
func (s *FileSource) Load(_ context.Context) (*core.Dataset, error) {
	var peopleDocs []personDoc
	if err := s.readFile(peopleFile, &peopleDocs); err != nil {
		return nil, err
	}

	var clubDocs []clubDoc
	if err := s.readFile(clubsFile, &clubDocs); err != nil {
		return nil, err
	}

	buildingDocs := map[string]buildingDoc{}
	if err := s.readFile(buildingsFile, &buildingDocs); err != nil {
		return nil, err
	}

	ds := &core.Dataset{Buildings: make(map[string]core.BuildingInfo, len(buildingDocs))}

	for i, doc := range peopleDocs {
		person := &core.Person{
			Name:        doc.Name,
			Department:  doc.Department,
			Office:      doc.Office,
			School:      doc.School,
			Email:       doc.Email,
			OfficeHours: doc.OfficeHours,
		}
		if err := core.ValidatePerson(person); err != nil {
			s.logger.Warn("skipping invalid person record", "file", peopleFile, "entry", i, "err", err)
			continue
		}
		ds.People = append(ds.People, person)
	}

	// Duplicate club names are a data-entry hazard; the first occurrence wins.
	seen := make(map[string]bool, len(clubDocs))
	for i, doc := range clubDocs {
		club := &core.Club{
			Name:        doc.Name,
			Category:    doc.Category,
			Email:       doc.Email,
			Social:      doc.Social,
			Description: doc.Description,
		}
		if err := core.ValidateClub(club); err != nil {
			s.logger.Warn("skipping invalid club record", "file", clubsFile, "entry", i, "err", err)
			continue
		}
		key := match.Normalize(club.Name)
		if seen[key] {
			s.logger.Warn("skipping duplicate club record", "file", clubsFile, "entry", i, "name", club.Name)
			continue
		}
		seen[key] = true
		ds.Clubs = append(ds.Clubs, club)
	}

	for code, doc := range buildingDocs {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			s.logger.Warn("skipping building entry with empty code", "file", buildingsFile)
			continue
		}
		ds.Buildings[code] = core.BuildingInfo{
			Name:     doc.Name,
			Nickname: doc.Nickname,
			Color:    doc.Color,
		}
	}

	s.logger.Debug("dataset loaded", "dir", s.dir,
		"people", len(ds.People), "clubs", len(ds.Clubs), "buildings", len(ds.Buildings))
	return ds, nil
}

// readFile unmarshals one YAML data file into out.
func (s *FileSource) readFile(name string, out any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedData, path, err)
	}
	return nil
}
