package store_test

import (
	"context"
	"errors"
	"sync"

	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

var errUnreachable = &clientesdk.TransportError{Op: "send request", Err: errors.New("connection refused")}

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	list    []clientesdk.Cliente
	listErr error

	get    *clientesdk.Cliente
	getErr error

	createErr error
	lastReq   clientesdk.ClienteRequest
	nextID    string

	updateErr error
	deleteErr error
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) ListClients(context.Context) ([]clientesdk.Cliente, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]clientesdk.Cliente(nil), f.list...), nil
}

func (f *fakeAPI) GetClient(_ context.Context, id string) (*clientesdk.Cliente, error) {
	f.record("get " + id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.get, nil
}

func (f *fakeAPI) CreateClient(_ context.Context, req clientesdk.ClienteRequest) (*clientesdk.Cliente, error) {
	f.record("create")
	f.lastReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &clientesdk.Cliente{
		ID:          f.nextID,
		Name:        req.Name,
		Salary:      clientesdk.Amount(req.Salary),
		TenureYears: clientesdk.Amount(req.TenureYears),
		Bonus:       clientesdk.Amount(req.Bonus),
	}, nil
}

func (f *fakeAPI) UpdateClient(_ context.Context, id string, req clientesdk.ClienteRequest) (*clientesdk.Cliente, error) {
	f.record("update " + id)
	f.lastReq = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &clientesdk.Cliente{
		ID:          id,
		Name:        req.Name,
		Salary:      clientesdk.Amount(req.Salary),
		TenureYears: clientesdk.Amount(req.TenureYears),
		Bonus:       clientesdk.Amount(req.Bonus),
	}, nil
}

func (f *fakeAPI) DeleteClient(_ context.Context, id string) error {
	f.record("delete " + id)
	return f.deleteErr
}
