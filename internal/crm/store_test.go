package crm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"leadcrm/internal/api"
	"leadcrm/internal/types"
)

// stubServer is an in-memory CRM backend. It computes achieved figures from
// its own lead state so target re-fetches return genuine server truth.
type stubServer struct {
	mu       sync.Mutex
	calls    []string
	leads    []stubLead
	targets  map[string][2]float64 // userID → salesTarget, invoiceTarget
	failWith map[string]int        // "METHOD /path" → status
}

type stubLead struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePaid     float64 `json:"pricePaid"`
	InvoiceBilled float64 `json:"invoiceBilled"`
	Status        string  `json:"status"`
	AssignedTo    *string `json:"assignedTo"`
}

func newStubServer() *stubServer {
	return &stubServer{
		targets:  make(map[string][2]float64),
		failWith: make(map[string]int),
	}
}

func (s *stubServer) fail(methodPath string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith[methodPath] = status
}

func (s *stubServer) called(methodPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == methodPath {
			return true
		}
	}
	return false
}

func (s *stubServer) calledPrefix(prefix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (s *stubServer) achieved(userID string) (sales, invoice float64) {
	for _, l := range s.leads {
		if l.AssignedTo != nil && *l.AssignedTo == userID {
			sales += l.PricePaid
			invoice += l.InvoiceBilled
		}
	}
	return sales, invoice
}

func (s *stubServer) targetRecord(userID string) map[string]any {
	sales, invoice := s.achieved(userID)
	goals := s.targets[userID]
	return map[string]any{
		"userId":          userID,
		"salesTarget":     goals[0],
		"invoiceTarget":   goals[1],
		"salesAchieved":   sales,
		"invoiceAchieved": invoice,
		"period":          "monthly",
	}
}

func ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func (s *stubServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	key := r.Method + " " + r.URL.Path
	s.calls = append(s.calls, key)
	if status, bad := s.failWith[key]; bad {
		s.mu.Unlock()
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "stub failure"})
		return
	}
	defer s.mu.Unlock()

	switch {
	case key == "POST /auth/login":
		ok(w, map[string]any{
			"access_token": "t1",
			"user":         map[string]any{"id": "1", "role": "admin", "name": "Admin"},
		})
	case key == "GET /leads":
		ok(w, s.leads)
	case key == "POST /leads":
		var l stubLead
		_ = json.NewDecoder(r.Body).Decode(&l)
		l.ID = fmt.Sprintf("L%d", len(s.leads)+1)
		s.leads = append(s.leads, l)
		ok(w, l)
	case key == "POST /leads/bulk-delete":
		var body struct {
			IDs []string `json:"ids"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		keep := s.leads[:0]
		for _, l := range s.leads {
			drop := false
			for _, id := range body.IDs {
				if l.ID == id {
					drop = true
				}
			}
			if !drop {
				keep = append(keep, l)
			}
		}
		s.leads = keep
		ok(w, nil)
	case key == "POST /leads/bulk-assign":
		var body struct {
			IDs        []string `json:"ids"`
			AssignedTo string   `json:"assignedTo"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for i := range s.leads {
			for _, id := range body.IDs {
				if s.leads[i].ID == id {
					assigned := body.AssignedTo
					s.leads[i].AssignedTo = &assigned
				}
			}
		}
		ok(w, nil)
	case strings.HasPrefix(r.URL.Path, "/leads/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(r.URL.Path, "/leads/")
		var l stubLead
		_ = json.NewDecoder(r.Body).Decode(&l)
		l.ID = id
		for i := range s.leads {
			if s.leads[i].ID == id {
				s.leads[i] = l
			}
		}
		ok(w, l)
	case strings.HasPrefix(r.URL.Path, "/leads/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/leads/")
		keep := s.leads[:0]
		for _, l := range s.leads {
			if l.ID != id {
				keep = append(keep, l)
			}
		}
		s.leads = keep
		ok(w, nil)
	case key == "GET /targets":
		var all []map[string]any
		for userID := range s.targets {
			all = append(all, s.targetRecord(userID))
		}
		ok(w, all)
	case strings.HasPrefix(r.URL.Path, "/targets/") && r.Method == http.MethodGet:
		ok(w, s.targetRecord(strings.TrimPrefix(r.URL.Path, "/targets/")))
	case strings.HasPrefix(r.URL.Path, "/targets/") && r.Method == http.MethodPut:
		userID := strings.TrimPrefix(r.URL.Path, "/targets/")
		var body struct {
			SalesTarget   float64 `json:"salesTarget"`
			InvoiceTarget float64 `json:"invoiceTarget"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.targets[userID] = [2]float64{body.SalesTarget, body.InvoiceTarget}
		ok(w, s.targetRecord(userID))
	case key == "GET /users":
		ok(w, []map[string]any{
			{"id": "1", "role": "admin", "name": "Admin"},
			{"id": "u1", "role": "sales", "name": "Sales One"},
			{"id": "u2", "role": "sales", "name": "Sales Two"},
		})
	case key == "GET /salespeople":
		ok(w, []map[string]any{
			{"id": "u1", "role": "sales", "name": "Sales One"},
			{"id": "u2", "role": "sales", "name": "Sales Two"},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "no route: " + key})
	}
}

func newTestStore(t *testing.T, stub *stubServer, user types.User) (*Store, *api.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(stub)
	client := api.NewClient(srv.URL, &api.MemoryTokenStore{}, nil)
	store := NewStore(client, user, nil, nil)
	return store, client, srv.Close
}

func adminUser() types.User { return types.User{ID: "1", Role: types.RoleAdmin, Name: "Admin"} }
func salesUser() types.User { return types.User{ID: "u1", Role: types.RoleSales, Name: "Sales One"} }

func assigned(id string) *string { return &id }
