package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FieldClass groups secondary search fields by ranking weight.
// Department carries the highest secondary weight, Contact the lowest.
type FieldClass int

const (
	// FieldClassDepartment covers a person's department or a club's category.
	FieldClassDepartment FieldClass = iota + 1
	// FieldClassLocation covers offices and room codes.
	FieldClassLocation
	// FieldClassSchool covers schools and faculties.
	FieldClassSchool
	// FieldClassContact covers emails, links, and free-text descriptions.
	FieldClassContact
)

// SearchField is one secondary candidate field of a record, tagged with the
// weight class the ranker applies to it.
type SearchField struct {
	Tag   string
	Class FieldClass
	Value string
}

// Person is a directory record for a staff or faculty member.
// Optional fields may be empty; only Name is required.
type Person struct {
	Name        string
	Department  string
	Office      string
	School      string
	Email       string
	OfficeHours map[string]string // day -> hours, e.g. "monday" -> "10:00-12:00"
}

// SearchName returns the record's canonical name field.
func (p *Person) SearchName() string { return p.Name }

// SearchFields returns the secondary fields ranked alongside the name.
func (p *Person) SearchFields() []SearchField {
	return []SearchField{
		{Tag: "department", Class: FieldClassDepartment, Value: p.Department},
		{Tag: "office", Class: FieldClassLocation, Value: p.Office},
		{Tag: "school", Class: FieldClassSchool, Value: p.School},
		{Tag: "email", Class: FieldClassContact, Value: p.Email},
	}
}

// Club is a directory record for a student club or society.
// Optional fields may be empty; only Name is required.
type Club struct {
	Name        string
	Category    string
	Email       string
	Social      string
	Description string
}

// SearchName returns the record's canonical name field.
func (c *Club) SearchName() string { return c.Name }

// SearchFields returns the secondary fields ranked alongside the name.
func (c *Club) SearchFields() []SearchField {
	return []SearchField{
		{Tag: "category", Class: FieldClassDepartment, Value: c.Category},
		{Tag: "email", Class: FieldClassContact, Value: c.Email},
		{Tag: "description", Class: FieldClassContact, Value: c.Description},
	}
}

// BuildingInfo describes one entry of the building legend, keyed by an
// uppercase building-code prefix.
type BuildingInfo struct {
	Name     string
	Nickname string
	Color    string
}

// Dataset is one complete load of the directory collections, as produced by
// an external loader. It is never mutated after construction.
type Dataset struct {
	People    []*Person
	Clubs     []*Club
	Buildings map[string]BuildingInfo
}

// Intent is a closed category of recognized question shapes, used to route a
// free-text question to a response template.
type Intent string

const (
	IntentOfficeHours    Intent = "office_hours"
	IntentContactInfo    Intent = "contact_info"
	IntentOfficeLocation Intent = "office_location"
	IntentDepartment     Intent = "department"
	IntentWhoIs          Intent = "who_is"
	IntentAdmission      Intent = "admission"
	IntentRegistrar      Intent = "registrar"
	IntentDean           Intent = "dean"
	// IntentQuestion is the generic fallback for queries that contain an
	// interrogative token but match no specific pattern.
	IntentQuestion Intent = "question"
)

// IntentResult is the outcome of parsing a natural-language question.
// Entity may be empty for intents that target a fixed office.
type IntentResult struct {
	Intent     Intent
	Entity     string
	Confidence float64
}

// QueryKind identifies which lookup surface served a query.
type QueryKind int

const (
	// QueryKindPeople is a ranked search over the people collection.
	QueryKindPeople QueryKind = iota + 1
	// QueryKindClubs is a ranked search over the clubs collection.
	QueryKindClubs
	// QueryKindDepartment is a department listing or filter.
	QueryKindDepartment
	// QueryKindQuestion is a natural-language question routed by intent.
	QueryKindQuestion
)

// HistoryEntry records one served query for usage history and stats.
type HistoryEntry struct {
	Id        ID
	Kind      QueryKind
	Query     string
	Intent    Intent // empty unless Kind is QueryKindQuestion
	Hits      int
	Timestamp time.Time
}

// HashKey returns the deterministic content string hashed into the entry ID.
func (e *HistoryEntry) HashKey() string {
	return "(" + e.Timestamp.UTC().Format(time.RFC3339Nano) + "," + e.Query + ")"
}
