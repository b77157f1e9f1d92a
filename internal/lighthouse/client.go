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

import "context"

// Client defines the interface for reading tickets from Lighthouse.
// It abstracts the underlying API so the collector can be tested against a mock.
type Client interface {
	// Project looks up a project by id.
	Project(ctx context.Context, projectID int) (*Project, error)

	// SearchTickets returns one page of tickets in the project matching query.
	// Pages are numbered from 1. A page shorter than PageSize is the last one.
	SearchTickets(ctx context.Context, projectID int, query string, page int) ([]Ticket, error)

	// Ticket loads a single ticket, including its version history.
	Ticket(ctx context.Context, projectID, number int) (*Ticket, error)

	// PageSize is the number of results a full search page holds.
	PageSize() int
}
