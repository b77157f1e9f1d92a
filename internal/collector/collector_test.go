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

package collector

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
	"github.com/sirseerhq/lh-extract/internal/lighthouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticket(number int, title, tag, assignee, state string, bodies ...string) lighthouse.Ticket {
	t := lighthouse.Ticket{
		Number:           number,
		Title:            title,
		Tag:              tag,
		AssignedUserName: assignee,
		State:            state,
		URL:              "https://acme.lighthouseapp.com/projects/1/tickets/" + strconv.Itoa(number),
	}
	for _, b := range bodies {
		t.Versions = append(t.Versions, lighthouse.Version{Body: b})
	}
	return t
}

func numbered(n int) []lighthouse.Ticket {
	out := make([]lighthouse.Ticket, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, ticket(i, "T", "", "", "open", "d"))
	}
	return out
}

func TestCollect_SinglePage(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(
		ticket(1, "Fix bug", "bug urgent", "", "open", "desc-A", "first note"),
		ticket(2, "Add feature", "", "Sam", "resolved", "desc-B"),
	))

	result, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "Iteration 7")
	require.NoError(t, err)

	assert.Equal(t, 1, result.MaxComments)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, Row{"Fix bug", "bug,urgent", "", "open", "desc-A", client.Details[1].URL, "first note"}, result.Rows[0])
	assert.Equal(t, Row{"Add feature", "", "Sam", "resolved", "desc-B", client.Details[2].URL}, result.Rows[1])

	assert.Equal(t, []int{1}, client.SearchPages)
	assert.Equal(t, []int{1, 2}, client.TicketCalls)
	assert.Equal(t, `milestone:"Iteration 7"`, client.LastQuery)
}

func TestCollect_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		pageSize  int
		tickets   int
		wantPages []int
	}{
		{"no tickets", 30, 0, []int{1}},
		{"short first page", 30, 3, []int{1}},
		{"exactly one page", 30, 30, []int{1, 2}},
		{"one past a page", 30, 31, []int{1, 2}},
		{"small pages", 2, 5, []int{1, 2, 3}},
		{"two exact small pages", 2, 4, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := lighthouse.NewMockClientWithOptions(
				lighthouse.WithPageSize(tt.pageSize),
				lighthouse.WithTickets(numbered(tt.tickets)...),
			)

			result, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "M")
			require.NoError(t, err)

			assert.Len(t, result.Rows, tt.tickets)
			assert.Equal(t, tt.wantPages, client.SearchPages)
			assert.Len(t, client.TicketCalls, tt.tickets)
			assert.Equal(t, 0, result.MaxComments)
		})
	}
}

func TestCollect_SearchOrderPreserved(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(
		lighthouse.WithPageSize(2),
		lighthouse.WithTickets(
			ticket(9, "nine", "", "", "open", "a"),
			ticket(3, "three", "", "", "open", "b"),
			ticket(7, "seven", "", "", "open", "c"),
		),
	)

	result, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "M")
	require.NoError(t, err)

	titles := make([]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		titles = append(titles, r[0])
	}
	assert.Equal(t, []string{"nine", "three", "seven"}, titles)
	assert.Equal(t, []int{9, 3, 7}, client.TicketCalls)
}

func TestCollect_MaxComments(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(
		ticket(1, "a", "", "", "open", "d", "c1"),
		ticket(2, "b", "", "", "open", "d", "c1", "c2", "c3"),
		ticket(3, "c", "", "", "open"),
	))

	result, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "M")
	require.NoError(t, err)

	assert.Equal(t, 3, result.MaxComments)
	assert.Len(t, result.Rows[0], 7)
	assert.Len(t, result.Rows[1], 9)
	assert.Len(t, result.Rows[2], 6, "rows are not padded to the widest ticket")
	assert.Equal(t, "", result.Rows[2][4], "no history means an empty description")
}

func TestCollect_StateFromDetail(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(
		ticket(1, "search title", "", "", "new", "d"),
	))
	client.Pages[0][0].State = "stale"
	client.Details[1].Title = "detail title"

	result, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "M")
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "search title", result.Rows[0][0])
	assert.Equal(t, "new", result.Rows[0][3])
}

func TestCollect_Failures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		client  func() *lighthouse.MockClient
		wantErr error
	}{
		{
			name: "project not found",
			client: func() *lighthouse.MockClient {
				return lighthouse.NewMockClientWithOptions(lighthouse.WithProjectNotFound())
			},
			wantErr: lherrors.ErrProjectNotFound,
		},
		{
			name: "nil project",
			client: func() *lighthouse.MockClient {
				m := lighthouse.NewMockClient()
				m.ProjectRecord = nil
				return m
			},
			wantErr: lherrors.ErrProjectNotFound,
		},
		{
			name: "auth failure",
			client: func() *lighthouse.MockClient {
				return lighthouse.NewMockClientWithOptions(lighthouse.WithAuthFailure())
			},
			wantErr: lherrors.ErrInvalidToken,
		},
		{
			name: "ticket detail failure",
			client: func() *lighthouse.MockClient {
				m := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(numbered(3)...))
				m.FailTicket = 2
				return m
			},
			wantErr: lherrors.ErrTicketNotFound,
		},
		{
			name: "generic error",
			client: func() *lighthouse.MockClient {
				return lighthouse.NewMockClientWithOptions(lighthouse.WithError(boom))
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(tt.client(), zerolog.Nop()).Collect(context.Background(), 1, "M")
			require.Error(t, err)
			assert.Nil(t, result, "no partial result on failure")
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestCollect_StopsAtFirstFailedTicket(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(numbered(4)...))
	client.FailTicket = 2

	_, err := New(client, zerolog.Nop()).Collect(context.Background(), 1, "M")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket #2")
	assert.Equal(t, []int{1, 2}, client.TicketCalls)
}

func TestCollect_Cancelled(t *testing.T) {
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(numbered(2)...))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(client, zerolog.Nop()).Collect(ctx, 1, "M")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCollect_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	client := lighthouse.NewMockClientWithOptions(lighthouse.WithTickets(numbered(1)...))

	_, err := New(client, log).Collect(context.Background(), 1, "Iteration 7")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"fetched search page"`)
	assert.Contains(t, out, `"ticket":1`)
	assert.Contains(t, out, `"tickets":1`)
	assert.Contains(t, out, `collected milestone \"Iteration 7\"`)
}

func TestBuildRow(t *testing.T) {
	summary := ticket(4, "Title, with comma", `"needs review" ui`, "Ann", "ignored")
	detail := ticket(4, "ignored", "ignored", "ignored", "hold", "body", "n1", "n2")

	row := BuildRow(&summary, &detail)
	assert.Equal(t, Row{"Title, with comma", "needs review,ui", "Ann", "hold", "body", summary.URL, "n1", "n2"}, row)
}
