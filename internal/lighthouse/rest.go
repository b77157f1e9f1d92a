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
	"strconv"
	"time"

	"github.com/sirseerhq/lh-extract/internal/apierror"
	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
	"resty.dev/v3"
)

// UserAgentVersion is reported in the User-Agent header. Set from main.
var UserAgentVersion = "dev"

// Options configures a RESTClient.
type Options struct {
	// BaseURL is the account's API root, e.g. https://acme.lighthouseapp.com.
	BaseURL string

	// Account is the subdomain; used only in error messages.
	Account string

	// Token is sent in the X-LighthouseToken header on every request.
	Token string

	// Timeout bounds each request. Requests are never retried.
	Timeout time.Duration

	// PageSize is the server's search page size. Defaults to DefaultPageSize.
	PageSize int
}

// RESTClient implements Client against the Lighthouse JSON API.
type RESTClient struct {
	client    *resty.Client
	account   string
	pageSize  int
	inspector apierror.Inspector
}

// NewRESTClient creates a client for one account. The caller must Close it.
func NewRESTClient(opts Options) *RESTClient {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("X-LighthouseToken", opts.Token).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "lh-extract/"+UserAgentVersion)

	return &RESTClient{
		client:    client,
		account:   opts.Account,
		pageSize:  pageSize,
		inspector: apierror.NewErrorChainInspector(apierror.NewInspector()),
	}
}

// Close releases the underlying HTTP client.
func (c *RESTClient) Close() error {
	return c.client.Close()
}

// PageSize implements Client.
func (c *RESTClient) PageSize() int {
	return c.pageSize
}

// Project implements Client.
func (c *RESTClient) Project(ctx context.Context, projectID int) (*Project, error) {
	var env projectEnvelope
	path := fmt.Sprintf("/projects/%d.json", projectID)
	if err := c.get(ctx, path, nil, &env); err != nil {
		if c.inspector.IsNotFoundError(err) {
			return nil, fmt.Errorf("no such project for %d in %s: %w", projectID, c.account, lherrors.ErrProjectNotFound)
		}
		return nil, c.mapError(err)
	}
	return env.Project, nil
}

// SearchTickets implements Client.
func (c *RESTClient) SearchTickets(ctx context.Context, projectID int, query string, page int) ([]Ticket, error) {
	var env ticketListEnvelope
	path := fmt.Sprintf("/projects/%d/tickets.json", projectID)
	params := map[string]string{
		"q":    query,
		"page": strconv.Itoa(page),
	}
	if err := c.get(ctx, path, params, &env); err != nil {
		if c.inspector.IsNotFoundError(err) {
			return nil, fmt.Errorf("no such project for %d in %s: %w", projectID, c.account, lherrors.ErrProjectNotFound)
		}
		return nil, c.mapError(err)
	}

	tickets := make([]Ticket, 0, len(env.Tickets))
	for _, t := range env.Tickets {
		if t.Ticket != nil {
			tickets = append(tickets, *t.Ticket)
		}
	}
	return tickets, nil
}

// Ticket implements Client.
func (c *RESTClient) Ticket(ctx context.Context, projectID, number int) (*Ticket, error) {
	var env ticketEnvelope
	path := fmt.Sprintf("/projects/%d/tickets/%d.json", projectID, number)
	if err := c.get(ctx, path, nil, &env); err != nil {
		if c.inspector.IsNotFoundError(err) {
			return nil, fmt.Errorf("ticket #%d in project %d: %w", number, projectID, lherrors.ErrTicketNotFound)
		}
		return nil, c.mapError(err)
	}
	if env.Ticket == nil {
		return nil, fmt.Errorf("ticket #%d in project %d: empty response: %w", number, projectID, lherrors.ErrTicketNotFound)
	}
	return env.Ticket, nil
}

func (c *RESTClient) get(ctx context.Context, path string, params map[string]string, result any) error {
	req := c.client.R().
		SetContext(ctx).
		SetResult(result)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &apierror.StatusError{
			Method: "GET",
			URL:    path,
			Code:   resp.StatusCode(),
			Body:   resp.String(),
		}
	}
	return nil
}

// mapError maps transport and HTTP errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	if c.inspector.IsTimeoutError(err) {
		return fmt.Errorf("request to Lighthouse timed out (%v): %w", err, lherrors.ErrTimeout)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to Lighthouse (%v). Please check your internet connection and try again: %w", err, lherrors.ErrNetworkFailure)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("Lighthouse rejected the API token for account %q. Check --token and --account: %w", c.account, lherrors.ErrInvalidToken)
	}

	return fmt.Errorf("lighthouse request failed: %w", err)
}
