package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type person struct {
	Name        string            `yaml:"name"`
	Department  string            `yaml:"department"`
	Office      string            `yaml:"office"`
	School      string            `yaml:"school"`
	Email       string            `yaml:"email"`
	OfficeHours map[string]string `yaml:"office_hours,omitempty"`
}

type club struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Email       string `yaml:"email"`
	Social      string `yaml:"social,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type building struct {
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname,omitempty"`
	Color    string `yaml:"color,omitempty"`
}

var people = []person{
	{
		Name: "Dr. Mohammad Al Rashid", Department: "Computer Science",
		Office: "ENG-204", School: "School of Engineering",
		Email: "m.alrashid@example.edu",
		OfficeHours: map[string]string{
			"sunday":  "10:00-12:00",
			"tuesday": "14:00-16:00",
		},
	},
	{
		Name: "Dr. Layla Haddad", Department: "Computer Science",
		Office: "ENG-210", School: "School of Engineering",
		Email: "layla.haddad@example.edu",
		OfficeHours: map[string]string{
			"monday":    "09:00-11:00",
			"wednesday": "13:00-15:00",
		},
	},
	{
		Name: "Dr. Omar Khalil", Department: "Electrical Engineering",
		Office: "ENG-115", School: "School of Engineering",
		Email: "omar.khalil@example.edu",
		OfficeHours: map[string]string{
			"thursday": "11:00-13:00",
		},
	},
	{
		Name: "Dr. Sara Nassar", Department: "Mathematics",
		Office: "SCI-110", School: "School of Science",
		Email: "sara.nassar@example.edu",
	},
	{
		Name: "Dr. Rania Aoun", Department: "Biology",
		Office: "SCI-305", School: "School of Science",
		Email: "rania.aoun@example.edu",
		OfficeHours: map[string]string{
			"monday": "10:00-12:00",
			"friday": "10:00-12:00",
		},
	},
	{
		Name: "Dr. Hassan Mansour", Department: "Chemistry",
		Office: "SCI-212", School: "School of Science",
		Email: "hassan.mansour@example.edu",
	},
	{
		Name: "Dr. Nadia Saleh", Department: "Business Administration",
		Office: "BUS-101", School: "School of Business",
		Email: "nadia.saleh@example.edu",
		OfficeHours: map[string]string{
			"tuesday":  "13:00-15:00",
			"thursday": "13:00-15:00",
		},
	},
	{
		Name: "Dr. Karim Sabbagh", Department: "Economics",
		Office: "BUS-215", School: "School of Business",
		Email: "karim.sabbagh@example.edu",
	},
	{
		Name: "Dr. Dina Farah", Department: "English Literature",
		Office: "HUM-120", School: "School of Humanities",
		Email: "dina.farah@example.edu",
		OfficeHours: map[string]string{
			"wednesday": "10:00-12:00",
		},
	},
	{
		Name: "Dr. Ziad Barakat", Department: "History",
		Office: "HUM-204", School: "School of Humanities",
		Email: "ziad.barakat@example.edu",
	},
}

var clubs = []club{
	{
		Name: "Chess Club", Category: "Games",
		Email: "chess@example.edu", Social: "@chessclub",
		Description: "Weekly blitz tournaments and casual play.",
	},
	{
		Name: "Robotics Society", Category: "Engineering",
		Email: "robotics@example.edu", Social: "@robotics",
		Description: "Build and compete with autonomous robots.",
	},
	{
		Name: "Debate Club", Category: "Academic",
		Email: "debate@example.edu", Social: "@debateclub",
		Description: "Parliamentary debate practice and regional tournaments.",
	},
	{
		Name: "Photography Club", Category: "Arts",
		Email: "photo@example.edu", Social: "@campusphoto",
		Description: "Photo walks, darkroom sessions, and an annual exhibit.",
	},
	{
		Name: "Volunteer Corps", Category: "Community",
		Email: "volunteer@example.edu",
		Description: "Community service projects on and off campus.",
	},
	{
		Name: "Astronomy Society", Category: "Science",
		Email: "astro@example.edu", Social: "@stargazers",
		Description: "Telescope nights on the science complex roof.",
	},
}

var buildings = map[string]building{
	"ENG": {Name: "Engineering Building", Nickname: "The Workshop", Color: "blue"},
	"SCI": {Name: "Science Complex", Nickname: "The Labs", Color: "green"},
	"BUS": {Name: "Business School", Nickname: "The Tower", Color: "gray"},
	"HUM": {Name: "Humanities Hall", Nickname: "Old Main", Color: "red"},
	"LIB": {Name: "Central Library", Color: "brown"},
	"ADM": {Name: "Administration Building", Color: "white"},
}

var outDir = flag.String("out", "./data", "directory to write the sample data files into")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func writeYAML(dir, name string, v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		panic(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		panic(err)
	}
	slog.Info("wrote data file", "path", path)
}

func main() {
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	writeYAML(*outDir, "people.yaml", people)
	writeYAML(*outDir, "clubs.yaml", clubs)
	writeYAML(*outDir, "buildings.yaml", buildings)
}
