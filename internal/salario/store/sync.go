package store

import (
	"context"

	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/pkg/slogx"
)

// LoadAll replaces the collection with the service's list, in service order.
func (s *Store) LoadAll(ctx context.Context) {
	l := slogx.FromContext(ctx)

	list, err := s.api.ListClients(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.Warn("failed to load clients", "error", err)
		s.fail(opLoad, err)
		return
	}

	clientes := make([]domain.Cliente, 0, len(list))
	for _, c := range list {
		clientes = append(clientes, fromWire(c))
	}
	s.clientes = clientes
	s.succeed(loadedMessage(len(clientes)))

	l.Info("clients loaded", "count", len(clientes))
}

// Submit sends form, the draft as it was when the user submitted it: create in
// creating mode, update in editing mode. On success the store's form is reset
// to empty/creating unless it has changed since form was taken.
func (s *Store) Submit(ctx context.Context, form domain.FormState) {
	l := slogx.FromContext(ctx)

	op := opCreate
	if form.Mode == domain.FormEditing {
		op = opUpdate
	}

	in := form.Input()
	if err := in.Validate(); err != nil {
		s.mu.Lock()
		s.fail(op, err)
		s.mu.Unlock()
		return
	}

	if form.Mode == domain.FormEditing {
		s.update(ctx, form, in)
		return
	}

	created, err := s.api.CreateClient(ctx, toRequest(in))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.Warn("failed to create client", "error", err)
		s.fail(opCreate, err)
		return
	}

	s.clientes = append(s.clientes, fromWire(*created))
	s.resetForm(form)
	s.succeed(msgCreated)

	l.Info("client created", "client_id", created.ID)
}

func (s *Store) update(ctx context.Context, form domain.FormState, in domain.ClienteInput) {
	l := slogx.FromContext(ctx)
	id := form.TargetID

	updated, err := s.api.UpdateClient(ctx, id, toRequest(in))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.Warn("failed to update client", "error", err, "client_id", id)
		s.fail(opUpdate, err)
		return
	}

	if i := domain.IndexOf(s.clientes, id); i >= 0 {
		s.clientes[i] = fromWire(*updated)
	} else {
		l.Warn("updated client is no longer in the local list", "client_id", id)
	}
	s.resetForm(form)
	s.succeed(msgUpdated)

	l.Info("client updated", "client_id", id)
}

// Remove deletes a record. Asking the user first is the caller's job.
func (s *Store) Remove(ctx context.Context, id string) {
	l := slogx.FromContext(ctx)

	err := s.api.DeleteClient(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.Warn("failed to delete client", "error", err, "client_id", id)
		s.fail(opDelete, err)
		return
	}

	if i := domain.IndexOf(s.clientes, id); i >= 0 {
		s.clientes = append(s.clientes[:i:i], s.clientes[i+1:]...)
	}
	if s.form.Mode == domain.FormEditing && s.form.TargetID == id {
		s.form = domain.EmptyForm()
	}
	s.succeed(msgDeleted)

	l.Info("client deleted", "client_id", id)
}

// Refresh re-reads one record from the service and replaces it in place.
func (s *Store) Refresh(ctx context.Context, id string) {
	l := slogx.FromContext(ctx)

	c, err := s.api.GetClient(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.Warn("failed to refresh client", "error", err, "client_id", id)
		s.fail(opRefresh, err)
		return
	}

	i := domain.IndexOf(s.clientes, id)
	if i < 0 {
		s.fail(opRefresh, domain.ErrClientNotFound)
		return
	}
	s.clientes[i] = fromWire(*c)
	s.status = Status{}
}

// resetForm clears the form if it still holds the submitted draft. Callers
// hold s.mu.
func (s *Store) resetForm(submitted domain.FormState) {
	if s.form == submitted {
		s.form = domain.EmptyForm()
	}
}
