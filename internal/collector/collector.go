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

// Package collector gathers every ticket in a milestone into flat CSV rows.
//
// Collection is a single sequential pass: resolve the project, walk the
// search pages until one comes back short, and load each hit's full record
// to read its description and comments. Nothing is returned until the last
// page has been processed, so a failure anywhere leaves the caller with no
// rows at all.
package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
	"github.com/sirseerhq/lh-extract/internal/lighthouse"
)

// Row is one ticket flattened for CSV: title, labels, owner, state,
// description, url, then one field per comment.
type Row []string

// fixedColumns is the number of fields every Row starts with.
const fixedColumns = 6

// Result holds the rows of a run and the largest number of comments on
// any one ticket, which sizes the CSV header.
type Result struct {
	Rows        []Row
	MaxComments int
}

// Collector walks a milestone's tickets through a lighthouse.Client.
type Collector struct {
	client lighthouse.Client
	log    zerolog.Logger
}

// New returns a Collector reading from client and logging to log.
func New(client lighthouse.Client, log zerolog.Logger) *Collector {
	return &Collector{client: client, log: log}
}

// Collect returns one Row per ticket in milestone, in search order.
func (c *Collector) Collect(ctx context.Context, projectID int, milestone string) (*Result, error) {
	start := time.Now()

	project, err := c.client.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("no such project for %d: %w", projectID, lherrors.ErrProjectNotFound)
	}
	c.log.Debug().Int("project", projectID).Str("name", project.Name).Msg("resolved project")

	query := lighthouse.MilestoneQuery(milestone)
	pageSize := c.client.PageSize()
	result := &Result{}

	for page := 1; ; page++ {
		tickets, err := c.client.SearchTickets(ctx, projectID, query, page)
		if err != nil {
			return nil, fmt.Errorf("failed to search page %d: %w", page, err)
		}
		c.log.Debug().Int("page", page).Int("tickets", len(tickets)).Msg("fetched search page")

		for i := range tickets {
			summary := &tickets[i]
			detail, err := c.client.Ticket(ctx, projectID, summary.Number)
			if err != nil {
				return nil, fmt.Errorf("failed to load ticket #%d: %w", summary.Number, err)
			}

			row := BuildRow(summary, detail)
			if extra := len(row) - fixedColumns; extra > result.MaxComments {
				result.MaxComments = extra
			}
			result.Rows = append(result.Rows, row)
			c.log.Debug().Int("ticket", summary.Number).Int("comments", len(row)-fixedColumns).Msg("collected ticket")
		}

		// A full page means there may be more, even if the next one is empty.
		if len(tickets) < pageSize {
			break
		}
	}

	c.log.Info().
		Int("tickets", len(result.Rows)).
		Int("max_comments", result.MaxComments).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msgf("collected milestone %q", milestone)

	return result, nil
}

// BuildRow flattens a ticket. Title, tags, assignee and url come from the
// search hit; state and history come from the full record.
func BuildRow(summary, detail *lighthouse.Ticket) Row {
	comments := detail.Comments()
	row := make(Row, 0, fixedColumns+len(comments))
	row = append(row,
		summary.Title,
		strings.Join(summary.Tags(), ","),
		summary.AssignedUserName,
		detail.State,
		detail.Description(),
		summary.URL,
	)
	return append(row, comments...)
}
