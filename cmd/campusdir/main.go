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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/campusdir"
	"github.com/poiesic/campusdir/core"
)

func main() {
	app := &cli.App{
		Name:  "campusdir",
		Usage: "Campus directory lookup assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to the data directory (people.yaml, clubs.yaml, buildings.yaml)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the BadgerDB history directory (history disabled when empty)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum results per search",
				Value: 10,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search people by name, department, office, school, or email",
				ArgsUsage: "<query>",
				Action:    searchCommand,
			},
			{
				Name:      "clubs",
				Usage:     "Search student clubs",
				ArgsUsage: "<query>",
				Action:    clubsCommand,
			},
			{
				Name:   "departments",
				Usage:  "List all departments",
				Action: departmentsCommand,
			},
			{
				Name:      "dept",
				Usage:     "List the people of one department",
				ArgsUsage: "<department>",
				Action:    deptCommand,
			},
			{
				Name:      "ask",
				Usage:     "Parse a natural-language question into an intent",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "history",
				Usage:  "Show recent queries and usage stats",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "recent",
						Usage: "Number of recent queries to show",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openAssistant builds an assistant from the global flags.
func openAssistant(c *cli.Context) (*campusdir.Assistant, error) {
	opts := []campusdir.AssistantOption{
		campusdir.WithResultLimit(c.Int("limit")),
	}
	if dbPath := c.String("db"); dbPath != "" {
		opts = append(opts, campusdir.WithHistory(dbPath))
	}
	return campusdir.New(c.String("data"), opts...)
}

func queryArg(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("missing query argument")
	}
	return query, nil
}

func searchCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	people := assistant.Search(query)
	if len(people) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, p := range people {
		fmt.Printf("%s\t%s\t%s\t%s\n", p.Name, p.Department, formatOffice(assistant, p.Office), p.Email)
	}
	return nil
}

func clubsCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	clubs := assistant.SearchClubs(query)
	if len(clubs) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, club := range clubs {
		fmt.Printf("%s\t%s\t%s\t%s\n", club.Name, club.Category, club.Email, club.Social)
	}
	return nil
}

func departmentsCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	for _, dept := range assistant.Departments() {
		fmt.Println(dept)
	}
	return nil
}

func deptCommand(c *cli.Context) error {
	name, err := queryArg(c)
	if err != nil {
		return err
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	people := assistant.SearchByDepartment(name)
	if len(people) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, p := range people {
		fmt.Printf("%s\t%s\t%s\n", p.Name, formatOffice(assistant, p.Office), p.Email)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	result := assistant.Ask(query)
	if result == nil {
		fmt.Println("Not a recognized question; try the search command.")
		return nil
	}

	fmt.Printf("intent: %s (confidence %.2f)\n", result.Intent, result.Confidence)
	if result.Entity != "" {
		fmt.Printf("entity: %s\n", result.Entity)
	}

	// For person-targeted intents, resolve the entity right away.
	switch result.Intent {
	case core.IntentOfficeHours, core.IntentContactInfo, core.IntentOfficeLocation,
		core.IntentDepartment, core.IntentWhoIs:
		if result.Entity == "" {
			return nil
		}
		for _, p := range assistant.Search(result.Entity) {
			fmt.Printf("  %s\t%s\t%s\t%s\n", p.Name, p.Department, formatOffice(assistant, p.Office), p.Email)
		}
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	if c.String("db") == "" {
		return fmt.Errorf("history requires the --db flag")
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	entries, err := assistant.History(ctx, c.Int("recent"))
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%q\thits=%d\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"), kindLabel(e.Kind), e.Query, e.Hits)
	}

	stats, err := assistant.Stats(ctx)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	fmt.Printf("\ntotal queries: %d\n", stats.Total)
	for kind, n := range stats.ByKind {
		fmt.Printf("  %s: %d\n", kindLabel(kind), n)
	}
	for intent, n := range stats.ByIntent {
		fmt.Printf("  intent %s: %d\n", intent, n)
	}
	return nil
}

// formatOffice annotates an office code with its building name when the
// legend knows the building.
func formatOffice(assistant *campusdir.Assistant, office string) string {
	if office == "" {
		return ""
	}
	if info, ok := assistant.BuildingForOffice(office); ok {
		return fmt.Sprintf("%s (%s)", office, info.Name)
	}
	return office
}

func kindLabel(kind core.QueryKind) string {
	switch kind {
	case core.QueryKindPeople:
		return "people"
	case core.QueryKindClubs:
		return "clubs"
	case core.QueryKindDepartment:
		return "department"
	case core.QueryKindQuestion:
		return "question"
	default:
		return "unknown"
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
