package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")

// Cliente is a client record as known to the remote service.
type Cliente struct {
	ID          string
	Name        string
	Salary      float64
	TenureYears float64
	Bonus       float64
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf(clientes []Cliente, id string) int {
	for i, c := range clientes {
		if c.ID == id {
			return i
		}
	}
	return -1
}
