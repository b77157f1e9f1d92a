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

// Package testutil provides common test helpers for lh-extract
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestToken is the token LighthouseServer accepts by default.
const TestToken = "test-token"

var (
	projectPath = regexp.MustCompile(`^/projects/(\d+)\.json$`)
	searchPath  = regexp.MustCompile(`^/projects/(\d+)/tickets\.json$`)
	ticketPath  = regexp.MustCompile(`^/projects/(\d+)/tickets/(\d+)\.json$`)
)

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// RequestCount returns how many requests the server has received.
func (m *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&m.requestCount))
}

// NewMockServer creates a basic mock server around handler
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&m.requestCount, 1)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// NewTimeoutServer creates a mock server that stalls every request for delay
func NewTimeoutServer(t *testing.T, delay time.Duration) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
		}
	})
}

// LighthouseServer serves one project's tickets the way the hosted API does:
// token check, project lookup, paged search and single-ticket detail.
type LighthouseServer struct {
	*MockServer

	ProjectID int
	Token     string
	PageSize  int

	mu          sync.Mutex
	tickets     []*TicketBuilder
	searchPages []int
	queries     []string
	detailCalls []int
}

// NewLighthouseServer starts a server for projectID holding tickets.
func NewLighthouseServer(t *testing.T, projectID int, tickets ...*TicketBuilder) *LighthouseServer {
	t.Helper()
	s := &LighthouseServer{
		ProjectID: projectID,
		Token:     TestToken,
		PageSize:  30,
		tickets:   tickets,
	}
	s.MockServer = NewMockServer(t, s.handle)
	return s
}

// SearchPages returns the page numbers requested from the search endpoint, in order.
func (s *LighthouseServer) SearchPages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.searchPages...)
}

// Queries returns the q parameters received by the search endpoint.
func (s *LighthouseServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// DetailCalls returns the ticket numbers requested from the detail endpoint.
func (s *LighthouseServer) DetailCalls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.detailCalls...)
}

func (s *LighthouseServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("X-LighthouseToken") != s.Token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Access denied"))
		return
	}

	if m := projectPath.FindStringSubmatch(r.URL.Path); m != nil {
		if !s.knownProject(m[1]) {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]interface{}{
			"project": map[string]interface{}{"id": s.ProjectID, "name": fmt.Sprintf("Project %d", s.ProjectID)},
		})
		return
	}

	if m := searchPath.FindStringSubmatch(r.URL.Path); m != nil {
		if !s.knownProject(m[1]) {
			http.NotFound(w, r)
			return
		}
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		s.mu.Lock()
		s.searchPages = append(s.searchPages, page)
		s.queries = append(s.queries, r.URL.Query().Get("q"))
		s.mu.Unlock()

		writeJSON(w, map[string]interface{}{"tickets": s.page(page)})
		return
	}

	if m := ticketPath.FindStringSubmatch(r.URL.Path); m != nil {
		number, _ := strconv.Atoi(m[2])

		s.mu.Lock()
		s.detailCalls = append(s.detailCalls, number)
		s.mu.Unlock()

		if !s.knownProject(m[1]) {
			http.NotFound(w, r)
			return
		}
		for _, b := range s.tickets {
			if b.Number() == number {
				writeJSON(w, map[string]interface{}{"ticket": b.Detail()})
				return
			}
		}
		http.NotFound(w, r)
		return
	}

	http.NotFound(w, r)
}

func (s *LighthouseServer) knownProject(id string) bool {
	return id == strconv.Itoa(s.ProjectID)
}

func (s *LighthouseServer) page(page int) []map[string]interface{} {
	start := (page - 1) * s.PageSize
	out := make([]map[string]interface{}, 0, s.PageSize)
	for i := start; i < len(s.tickets) && i < start+s.PageSize; i++ {
		out = append(out, map[string]interface{}{"ticket": s.tickets[i].Summary()})
	}
	return out
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
