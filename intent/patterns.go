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


package intent

import (
	"regexp"

	"github.com/poiesic/campusdir/core"
)

// rule is one (intent, pattern, confidence) tuple of the dispatch table.
type rule struct {
	intent     core.Intent
	pattern    *regexp.Regexp
	confidence float64
}

// rules is evaluated strictly in order; the first matching pattern wins.
// Do not reorder without revisiting every downstream answer template: a
// multi-clause question resolves to whichever rule appears first here.
var rules = []rule{
	// office hours
	{core.IntentOfficeHours, regexp.MustCompile(`(?:office|work(?:ing)?)\s+hours\s+(?:of|for)\s+(.+)`), 0.9},
	{core.IntentOfficeHours, regexp.MustCompile(`when\s+(?:is|are)\s+(.+?)\s+(?:available|free|in(?:\s+the)?\s+office)\b`), 0.85},
	{core.IntentOfficeHours, regexp.MustCompile(`\bhours\s+of\s+(.+)`), 0.75},

	// contact info
	{core.IntentContactInfo, regexp.MustCompile(`(?:contact|email|phone)(?:\s+(?:info|information|details|address|number))?\s+(?:of|for)\s+(.+)`), 0.9},
	{core.IntentContactInfo, regexp.MustCompile(`how\s+(?:do|can)\s+i\s+(?:contact|reach|email)\s+(.+)`), 0.85},
	{core.IntentContactInfo, regexp.MustCompile(`what(?:\s+is|'s)\s+the\s+(?:email|phone)(?:\s+(?:address|number))?\s+(?:of|for)\s+(.+)`), 0.85},

	// office location
	{core.IntentOfficeLocation, regexp.MustCompile(`where\s+is\s+the\s+office\s+of\s+(.+)`), 0.9},
	{core.IntentOfficeLocation, regexp.MustCompile(`where\s+is\s+(.+?)(?:'s)?\s+office\b`), 0.85},
	{core.IntentOfficeLocation, regexp.MustCompile(`(?:office|room)\s+(?:location|number)\s+(?:of|for)\s+(.+)`), 0.8},

	// department
	{core.IntentDepartment, regexp.MustCompile(`(?:which|what)\s+department\s+(?:is|does)\s+(.+?)\s+(?:in|work(?:ing)?\s+in|belong\s+to)\b`), 0.85},
	{core.IntentDepartment, regexp.MustCompile(`department\s+of\s+(.+)`), 0.8},
	{core.IntentDepartment, regexp.MustCompile(`(?:list|show|what\s+are)\s+(?:all\s+)?(?:the\s+)?departments`), 0.8},

	// who is
	{core.IntentWhoIs, regexp.MustCompile(`who\s+is\s+(.+)`), 0.85},
	{core.IntentWhoIs, regexp.MustCompile(`tell\s+me\s+about\s+(.+)`), 0.8},

	// admission office
	{core.IntentAdmission, regexp.MustCompile(`\badmissions?\s+(?:office|info(?:rmation)?|requirements?)\b`), 0.8},
	{core.IntentAdmission, regexp.MustCompile(`how\s+(?:do|can)\s+i\s+(?:apply|enroll|get\s+admitted)\b`), 0.8},
	{core.IntentAdmission, regexp.MustCompile(`\badmissions?\b`), 0.6},

	// registrar
	{core.IntentRegistrar, regexp.MustCompile(`\bregistrar\b`), 0.7},
	{core.IntentRegistrar, regexp.MustCompile(`\b(?:transcripts?|enrollment\s+(?:letter|certificate|verification))\b`), 0.7},

	// dean
	{core.IntentDean, regexp.MustCompile(`\bdean(?:'s)?\s+office\b`), 0.8},
	{core.IntentDean, regexp.MustCompile(`\bdean\s+of\s+(.+)`), 0.8},
	{core.IntentDean, regexp.MustCompile(`\bdean\b`), 0.6},
}

// interrogative detects a generic question when no specific rule matched.
var interrogative = regexp.MustCompile(`(?:^|\s)(?:what|who|where|when|how)\b`)

// leadingInterrogative strips the opening interrogative-plus-verb phrase
// ("what is", "how does", ...) off a generic question.
var leadingInterrogative = regexp.MustCompile(`^(?:what|who|where|when|how)(?:\s+(?:is|are|was|were|do|does|did|can|could|will|would|should))?\s+`)
