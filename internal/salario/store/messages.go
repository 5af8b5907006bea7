package store

import (
	"fmt"

	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

const (
	opLoad    = "load clients"
	opCreate  = "create client"
	opUpdate  = "update client"
	opDelete  = "delete client"
	opRefresh = "refresh client"
	opEdit    = "edit client"
)

const (
	msgCreated = "Client created successfully"
	msgUpdated = "Client updated successfully"
	msgDeleted = "Client deleted successfully"
)

// failureMessage combines the operation with the service's explanation when
// there is one, otherwise with the transport error.
func failureMessage(op string, err error) string {
	return fmt.Sprintf("Failed to %s: %s", op, clientesdk.Detail(err))
}

func loadedMessage(n int) string {
	if n == 1 {
		return "1 client loaded"
	}
	return fmt.Sprintf("%d clients loaded", n)
}
