// Package sdktest provides an in-memory clientes resource for tests, in the
// spirit of net/http/httptest. It is not a backend.
package sdktest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/aussiebroadwan/salario/pkg/clientesdk"
	"github.com/aussiebroadwan/salario/pkg/httpx"
	"github.com/aussiebroadwan/salario/pkg/idx"
)

// ResourcePath is where the fake mounts the resource.
const ResourcePath = "/api/clientes"

// Failure makes the next matching request fail with Status and an
// {"error": Message} body. Method "" matches any method.
type Failure struct {
	Method  string
	Status  int
	Message string
}

// Server is an httptest.Server holding client records in memory.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	records  []clientesdk.Cliente
	failures []Failure
	requests int
	formula  func(salary, tenure float64) float64
}

// NewServer starts a fake seeded with records. Records without an id get one.
func NewServer(seed ...clientesdk.Cliente) *Server {
	s := &Server{}
	for _, c := range seed {
		if c.ID == "" {
			c.ID = idx.New().String()
		}
		s.records = append(s.records, c)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ResourcePath+"/{$}", s.list)
	mux.HandleFunc("POST "+ResourcePath+"/{$}", s.create)
	mux.HandleFunc("GET "+ResourcePath+"/{id}", s.get)
	mux.HandleFunc("PUT "+ResourcePath+"/{id}", s.update)
	mux.HandleFunc("DELETE "+ResourcePath+"/{id}", s.delete)

	s.Server = httptest.NewServer(s.intercept(mux))
	return s
}

// BaseURL is the resource root to hand to clientesdk.NewSDKClient.
func (s *Server) BaseURL() string {
	return s.URL + ResourcePath
}

// Fail queues a failure for a later request.
func (s *Server) Fail(f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, f)
}

// SetBonusFormula makes the fake replace the bonus on create and update the way
// a service-side formula would. nil echoes the request's bonus.
func (s *Server) SetBonusFormula(fn func(salary, tenure float64) float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formula = fn
}

// Records returns a copy of the stored records.
func (s *Server) Records() []clientesdk.Cliente {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]clientesdk.Cliente{}, s.records...)
}

// Requests counts every request received, failed ones included.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		for i, f := range s.failures {
			if f.Method == "" || f.Method == r.Method {
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				s.mu.Unlock()
				httpx.WriteError(w, f.Status, f.Message)
				return
			}
		}
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.Records())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.records {
		if c.ID == r.PathValue("id") {
			httpx.WriteJSON(w, http.StatusOK, c)
			return
		}
	}
	notFound(w)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.toRecord(idx.New().String(), req)
	s.records = append(s.records, c)
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.records {
		if c.ID == r.PathValue("id") {
			s.records[i] = s.toRecord(c.ID, req)
			httpx.WriteJSON(w, http.StatusOK, s.records[i])
			return
		}
	}
	notFound(w)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.records {
		if c.ID == r.PathValue("id") {
			s.records = append(s.records[:i], s.records[i+1:]...)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "cliente eliminado"})
			return
		}
	}
	notFound(w)
}

func (s *Server) toRecord(id string, req clientesdk.ClienteRequest) clientesdk.Cliente {
	b := req.Bonus
	if s.formula != nil {
		b = s.formula(req.Salary, req.TenureYears)
	}
	return clientesdk.Cliente{
		ID:          id,
		Name:        req.Name,
		Salary:      clientesdk.Amount(req.Salary),
		TenureYears: clientesdk.Amount(req.TenureYears),
		Bonus:       clientesdk.Amount(b),
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (clientesdk.ClienteRequest, bool) {
	var req clientesdk.ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return req, false
	}
	return req, true
}

func notFound(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusNotFound, "cliente no encontrado")
}
