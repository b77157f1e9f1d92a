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

package testutil

import (
	"fmt"
	"time"
)

// TicketBuilder provides a fluent API for creating test tickets
type TicketBuilder struct {
	number    int
	title     string
	tag       string
	assignee  string
	state     string
	url       string
	versions  []string
	createdAt time.Time
}

// NewTicketBuilder creates a new ticket builder with defaults
func NewTicketBuilder(number int) *TicketBuilder {
	return &TicketBuilder{
		number:    number,
		title:     fmt.Sprintf("Ticket %d", number),
		state:     "new",
		url:       fmt.Sprintf("http://acme.lighthouseapp.com/projects/1/tickets/%d", number),
		versions:  []string{fmt.Sprintf("Description of ticket %d", number)},
		createdAt: time.Date(2009, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WithTitle sets the ticket title
func (b *TicketBuilder) WithTitle(title string) *TicketBuilder {
	b.title = title
	return b
}

// WithTag sets the raw space-separated tag string
func (b *TicketBuilder) WithTag(tag string) *TicketBuilder {
	b.tag = tag
	return b
}

// WithAssignee sets assigned_user_name
func (b *TicketBuilder) WithAssignee(name string) *TicketBuilder {
	b.assignee = name
	return b
}

// WithState sets the lifecycle state (new, open, resolved, ...)
func (b *TicketBuilder) WithState(state string) *TicketBuilder {
	b.state = state
	return b
}

// WithURL sets the ticket URL
func (b *TicketBuilder) WithURL(url string) *TicketBuilder {
	b.url = url
	return b
}

// WithDescription replaces the body of the first version
func (b *TicketBuilder) WithDescription(body string) *TicketBuilder {
	b.versions[0] = body
	return b
}

// WithComments appends one version per comment body
func (b *TicketBuilder) WithComments(bodies ...string) *TicketBuilder {
	b.versions = append(b.versions, bodies...)
	return b
}

// Number returns the ticket number
func (b *TicketBuilder) Number() int {
	return b.number
}

// Summary builds the ticket as the search endpoint returns it, without versions
func (b *TicketBuilder) Summary() map[string]interface{} {
	t := map[string]interface{}{
		"number":     b.number,
		"title":      b.title,
		"tag":        b.tag,
		"state":      b.state,
		"url":        b.url,
		"created_at": b.createdAt.Format(time.RFC3339),
	}
	if b.assignee != "" {
		t["assigned_user_name"] = b.assignee
	} else {
		t["assigned_user_name"] = nil
	}
	return t
}

// Detail builds the ticket as the single-ticket endpoint returns it, with
// each version wrapped in a {"version": ...} envelope
func (b *TicketBuilder) Detail() map[string]interface{} {
	t := b.Summary()
	versions := make([]map[string]interface{}, len(b.versions))
	for i, body := range b.versions {
		versions[i] = map[string]interface{}{
			"version": map[string]interface{}{
				"body":       body,
				"state":      b.state,
				"created_at": b.createdAt.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			},
		}
	}
	t["versions"] = versions
	return t
}
