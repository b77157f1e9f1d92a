// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lighthouse

import (
	"bytes"
	"encoding/json"
	"time"
)

// DefaultPageSize is the number of tickets the hosted API returns per search page.
const DefaultPageSize = 30

// Project is the subset of a Lighthouse project the extractor uses.
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Ticket represents a Lighthouse ticket. Search results leave Versions empty;
// a ticket loaded on its own carries the full history.
type Ticket struct {
	Number           int       `json:"number"`
	Title            string    `json:"title"`
	Tag              string    `json:"tag"`
	AssignedUserName string    `json:"assigned_user_name"`
	State            string    `json:"state"`
	URL              string    `json:"url"`
	Versions         []Version `json:"versions"`
}

// Tags returns the ticket's tag list in the order Lighthouse stores it.
func (t *Ticket) Tags() []string {
	return ParseTags(t.Tag)
}

// Description returns the body of the first version, or "" when the ticket
// has no history.
func (t *Ticket) Description() string {
	if len(t.Versions) == 0 {
		return ""
	}
	return t.Versions[0].Body
}

// Comments returns the bodies of every version after the first, oldest first.
func (t *Ticket) Comments() []string {
	if len(t.Versions) < 2 {
		return nil
	}
	comments := make([]string, 0, len(t.Versions)-1)
	for _, v := range t.Versions[1:] {
		comments = append(comments, v.Body)
	}
	return comments
}

// Version is one revision of a ticket.
type Version struct {
	Body      string     `json:"body"`
	UserName  string     `json:"user_name,omitempty"`
	State     string     `json:"state,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UnmarshalJSON accepts both a bare version object and one wrapped in a
// {"version": {...}} envelope; the API has served both shapes. A bare
// version may itself carry a numeric "version" field, which is ignored.
func (v *Version) UnmarshalJSON(data []byte) error {
	type plain Version

	var wrapped struct {
		Version json.RawMessage `json:"version"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if raw := bytes.TrimSpace(wrapped.Version); len(raw) > 0 && raw[0] == '{' {
		var p plain
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		*v = Version(p)
		return nil
	}

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = Version(p)
	return nil
}

type projectEnvelope struct {
	Project *Project `json:"project"`
}

type ticketEnvelope struct {
	Ticket *Ticket `json:"ticket"`
}

type ticketListEnvelope struct {
	Tickets []ticketEnvelope `json:"tickets"`
}
