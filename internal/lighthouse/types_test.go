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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bare", `{"body": "hello"}`, "hello"},
		{"wrapped", `{"version": {"body": "hello", "user_name": "rick"}}`, "hello"},
		{"bare with numeric version", `{"version": 3, "body": "hello"}`, "hello"},
		{"null body", `{"body": null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Version
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			assert.Equal(t, tt.want, v.Body)
		})
	}
}

func TestTicket_DecodeDetail(t *testing.T) {
	data := `{"ticket": {
		"number": 12,
		"title": "Fix bug",
		"tag": "bug urgent",
		"assigned_user_name": null,
		"state": "open",
		"url": "http://acme.lighthouseapp.com/projects/1/tickets/12",
		"versions": [
			{"version": {"body": "desc-A"}},
			{"version": {"body": "first note"}}
		]
	}}`

	var env ticketEnvelope
	require.NoError(t, json.Unmarshal([]byte(data), &env))
	require.NotNil(t, env.Ticket)

	ticket := env.Ticket
	assert.Equal(t, 12, ticket.Number)
	assert.Equal(t, []string{"bug", "urgent"}, ticket.Tags())
	assert.Empty(t, ticket.AssignedUserName)
	assert.Equal(t, "desc-A", ticket.Description())
	assert.Equal(t, []string{"first note"}, ticket.Comments())
}

func TestTicket_NoVersions(t *testing.T) {
	ticket := &Ticket{Number: 1}
	assert.Equal(t, "", ticket.Description())
	assert.Nil(t, ticket.Comments())
	assert.Empty(t, ticket.Tags())
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single", "bug", []string{"bug"}},
		{"space separated", "bug urgent", []string{"bug", "urgent"}},
		{"extra spaces", "  bug   urgent ", []string{"bug", "urgent"}},
		{"quoted first", `bug "needs review" ui`, []string{"needs review", "bug", "ui"}},
		{"duplicates", "bug bug ui", []string{"bug", "ui"}},
		{"empty quotes", `"" bug`, []string{"bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestMilestoneQuery(t *testing.T) {
	tests := []struct {
		milestone string
		want      string
	}{
		{"Iteration 7", `milestone:"Iteration 7"`},
		{"v1.0", `milestone:"v1.0"`},
		{"", `milestone:""`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MilestoneQuery(tt.milestone))
	}
}
