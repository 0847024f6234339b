// Package ipfabrictest provides an in-memory IP Fabric interfaces table for tests.
package ipfabrictest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"intf-report/internal/model"
)

// Server serves a fixed set of interface records with the table API pagination
type Server struct {
	*httptest.Server

	Token   string
	Records []model.InterfaceRecord

	mu       sync.Mutex
	requests int
}

// NewServer starts a Server answering requests that carry token
func NewServer(token string, records []model.InterfaceRecord) *Server {
	s := &Server{Token: token, Records: records}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// Requests returns the number of table requests served
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/tables/inventory/interfaces") {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("X-API-Token") != s.Token {
		http.Error(w, `{"code":"API_UNAUTHORIZED","message":"invalid token"}`, http.StatusUnauthorized)
		return
	}

	var req struct {
		Pagination struct {
			Start int `json:"start"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	start := min(req.Pagination.Start, len(s.Records))
	end := min(start+req.Pagination.Limit, len(s.Records))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": s.Records[start:end],
		"_meta": map[string]int{
			"count": len(s.Records),
			"limit": req.Pagination.Limit,
			"start": req.Pagination.Start,
		},
	})
}

// SampleRecords returns a small fleet: two devices with every link state,
// plus logical interfaces the default exclusion pattern leaves out.
func SampleRecords() []model.InterfaceRecord {
	mtu := 1500.0
	return []model.InterfaceRecord{
		{Hostname: "core-1", SN: "SN1", SiteName: "LAB", IntName: "Gi0/1", L1: "up", L2: "up", MTU: &mtu},
		{Hostname: "core-1", SN: "SN1", SiteName: "LAB", IntName: "Gi0/2", L1: "down", L2: "down", Reason: "admin-down"},
		{Hostname: "core-1", SN: "SN1", SiteName: "LAB", IntName: "Gi0/3", L1: "up", L2: "down"},
		{Hostname: "core-1", SN: "SN1", SiteName: "LAB", IntName: "Vlan10", L1: "up", L2: "up"},
		{Hostname: "core-1", SN: "SN1", SiteName: "LAB", IntName: "Lo0", L1: "up", L2: "up"},
		{Hostname: "edge-2", SN: "SN2", SiteName: "HQ", IntName: "Gi0/1", L1: "down", L2: "down", Reason: "err-disabled"},
		{Hostname: "edge-2", SN: "SN2", SiteName: "HQ", IntName: "Gi0/2", L1: "", L2: ""},
		{Hostname: "edge-2", SN: "SN2", SiteName: "HQ", IntName: "Gi0/2.100", L1: "up", L2: "up"},
		{Hostname: "edge-2", SN: "SN2", SiteName: "HQ", IntName: "Te1/1", L1: "up", L2: "up"},
	}
}
