package clientesdk

import (
	"context"
	"net/http"
)

// ListClients returns every record in service order.
func (c *SDKClient) ListClients(ctx context.Context) ([]Cliente, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	var list []Cliente
	if err := decodeJSON(resp, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Cliente{}
	}
	return list, nil
}

// GetClient fetches one record. A missing record is a ServiceError for which
// IsNotFound is true.
func (c *SDKClient) GetClient(ctx context.Context, id string) (*Cliente, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	resp, err := c.doRequest(ctx, http.MethodGet, idPath(id), nil)
	if err != nil {
		return nil, err
	}

	var cliente Cliente
	if err := decodeJSON(resp, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// CreateClient creates a record and returns it with its service-assigned id.
func (c *SDKClient) CreateClient(ctx context.Context, req ClienteRequest) (*Cliente, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/", req)
	if err != nil {
		return nil, err
	}

	var cliente Cliente
	if err := decodeJSON(resp, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// UpdateClient replaces the record's fields and returns the stored record.
func (c *SDKClient) UpdateClient(ctx context.Context, id string, req ClienteRequest) (*Cliente, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	resp, err := c.doRequest(ctx, http.MethodPut, idPath(id), req)
	if err != nil {
		return nil, err
	}

	var cliente Cliente
	if err := decodeJSON(resp, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// DeleteClient removes a record. Any 2xx response counts as success.
func (c *SDKClient) DeleteClient(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, idPath(id), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}
