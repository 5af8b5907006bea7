// Package store keeps the locally known client records and the form draft in
// step with the remote clientes resource.
//
// All state lives in one Store and changes only through its operations. Each
// network-backed operation performs at most one request without holding the
// lock, then applies the outcome in a single critical section, so readers of
// Snapshot never observe a half-applied result. A failed operation leaves the
// collection untouched and records a status message instead of returning an
// error.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

// API is the subset of the clientes SDK the store needs.
type API interface {
	ListClients(ctx context.Context) ([]clientesdk.Cliente, error)
	GetClient(ctx context.Context, id string) (*clientesdk.Cliente, error)
	CreateClient(ctx context.Context, req clientesdk.ClienteRequest) (*clientesdk.Cliente, error)
	UpdateClient(ctx context.Context, id string, req clientesdk.ClienteRequest) (*clientesdk.Cliente, error)
	DeleteClient(ctx context.Context, id string) error
}

type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the last outcome shown to the user.
type Status struct {
	Kind    StatusKind
	Message string
}

// Snapshot is a read-only copy of the store's state.
type Snapshot struct {
	Clientes []domain.Cliente
	Form     domain.FormState
	Status   Status
}

type Store struct {
	api API

	mu       sync.Mutex
	clientes []domain.Cliente
	form     domain.FormState
	status   Status
}

func New(api API) *Store {
	return &Store{
		api:      api,
		clientes: []domain.Cliente{},
		form:     domain.EmptyForm(),
	}
}

// Snapshot returns a copy of the current state, safe to keep and render.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Clientes: slices.Clone(s.clientes),
		Form:     s.form,
		Status:   s.status,
	}
}

// SetField applies a field change to the form. Salary and tenure changes
// recompute the bonus immediately.
func (s *Store) SetField(field domain.Field, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = s.form.Set(field, raw)
}

// BeginEdit loads the record with the given id into the form.
func (s *Store) BeginEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := domain.IndexOf(s.clientes, id)
	if i < 0 {
		s.fail(opEdit, domain.ErrClientNotFound)
		return
	}
	s.form = domain.EditForm(s.clientes[i])
	s.status = Status{}
}

// Cancel discards the draft and returns the form to creating mode.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = domain.EmptyForm()
	s.status = Status{}
}

// fail records an error status. Callers hold s.mu.
func (s *Store) fail(op string, err error) {
	s.status = Status{Kind: StatusError, Message: failureMessage(op, err)}
}

// succeed records an info status. Callers hold s.mu.
func (s *Store) succeed(msg string) {
	s.status = Status{Kind: StatusInfo, Message: msg}
}
