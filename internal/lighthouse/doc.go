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

// Package lighthouse provides a client for the Lighthouse issue tracker's
// REST API, limited to what ticket extraction needs: looking up a project,
// searching its tickets page by page, and loading a single ticket with its
// full version history.
//
// The search endpoint returns summary records only. The description and the
// comment bodies live in the ticket's versions, which are present only when a
// ticket is fetched on its own, so callers follow every search hit with a
// Ticket call.
//
// Example usage:
//
//	client := lighthouse.NewRESTClient(lighthouse.Options{
//		BaseURL:  "https://acme.lighthouseapp.com",
//		Account:  "acme",
//		Token:    token,
//		Timeout:  10 * time.Second,
//		PageSize: lighthouse.DefaultPageSize,
//	})
//	defer client.Close()
//
//	tickets, err := client.SearchTickets(ctx, 42, lighthouse.MilestoneQuery("Iteration 7"), 1)
package lighthouse
