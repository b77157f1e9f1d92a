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
	"context"
	"fmt"

	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
)

// MockClient is a mock implementation of the Lighthouse Client interface for testing.
// Search results are served from Pages (page n is Pages[n-1], anything past the
// end is empty) and details from Details keyed by ticket number.
type MockClient struct {
	ProjectRecord *Project
	Pages         [][]Ticket
	Details       map[int]*Ticket
	Size          int

	// Error to return from every call
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool
	FailTicket         int

	// Track calls for verification
	ProjectCalls int
	SearchPages  []int
	LastQuery    string
	TicketCalls  []int
}

// NewMockClient creates a mock client for project 1 with no tickets.
func NewMockClient() *MockClient {
	return &MockClient{
		ProjectRecord: &Project{ID: 1, Name: "Test Project"},
		Details:       make(map[int]*Ticket),
		Size:          DefaultPageSize,
	}
}

func (m *MockClient) fail(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", lherrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", lherrors.ErrNetworkFailure)
	}
	return m.Error
}

// Project implements the Client interface
func (m *MockClient) Project(ctx context.Context, projectID int) (*Project, error) {
	m.ProjectCalls++
	if err := m.fail(ctx); err != nil {
		return nil, err
	}
	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("no such project for %d: %w", projectID, lherrors.ErrProjectNotFound)
	}
	return m.ProjectRecord, nil
}

// SearchTickets implements the Client interface
func (m *MockClient) SearchTickets(ctx context.Context, projectID int, query string, page int) ([]Ticket, error) {
	m.SearchPages = append(m.SearchPages, page)
	m.LastQuery = query
	if err := m.fail(ctx); err != nil {
		return nil, err
	}
	if page < 1 || page > len(m.Pages) {
		return nil, nil
	}
	return m.Pages[page-1], nil
}

// Ticket implements the Client interface
func (m *MockClient) Ticket(ctx context.Context, projectID, number int) (*Ticket, error) {
	m.TicketCalls = append(m.TicketCalls, number)
	if err := m.fail(ctx); err != nil {
		return nil, err
	}
	detail, ok := m.Details[number]
	if !ok || (m.FailTicket != 0 && number == m.FailTicket) {
		return nil, fmt.Errorf("ticket #%d in project %d: %w", number, projectID, lherrors.ErrTicketNotFound)
	}
	return detail, nil
}

// PageSize implements the Client interface
func (m *MockClient) PageSize() int {
	return m.Size
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithTickets registers tickets as both search hits and details, split into
// pages of the mock's page size. Apply WithPageSize first to change the split.
func WithTickets(tickets ...Ticket) MockClientOption {
	return func(m *MockClient) {
		size := m.Size
		if size <= 0 {
			size = DefaultPageSize
		}
		m.Pages = nil
		for start := 0; start < len(tickets); start += size {
			end := start + size
			if end > len(tickets) {
				end = len(tickets)
			}
			page := make([]Ticket, 0, end-start)
			for _, t := range tickets[start:end] {
				summary := t
				summary.Versions = nil
				page = append(page, summary)

				detail := t
				m.Details[t.Number] = &detail
			}
			m.Pages = append(m.Pages, page)
		}
	}
}

// WithPageSize sets the page size the mock reports.
func WithPageSize(size int) MockClientOption {
	return func(m *MockClient) {
		m.Size = size
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithProjectNotFound makes project lookups fail
func WithProjectNotFound() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNotFound = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
