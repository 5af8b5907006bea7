/*
Package clientesdk provides a client for the client-record ("clientes") REST
resource.

# Overview

The SDK wraps one resource rooted at a configured base URL, by default
http://localhost:4000/api/clientes. Every operation is relative to it:

	GET    /       list every record
	GET    /{id}   fetch one record
	POST   /       create a record, the service assigns the id
	PUT    /{id}   update a record
	DELETE /{id}   delete a record

Usage:

	client := clientesdk.NewSDKClient("https://api.example.com/api/clientes")

	list, err := client.ListClients(ctx)

	created, err := client.CreateClient(ctx, clientesdk.ClienteRequest{
		Name:        "Ana",
		Salary:      1500,
		TenureYears: 3,
		Bonus:       300,
	})

# Error Handling

Failures come back as one of two typed errors:

  - TransportError: the request never got a usable response (network
    unreachable, timeout, unreadable or undecodable body).
  - ServiceError: the service answered with a non-2xx status. Message holds the
    service's own explanation when the body carried one.

Validation failures reported by the service are ServiceErrors with status 400
or 422; use IsValidation and IsNotFound to classify them. Detail extracts the
most useful human-readable text from any error:

	if _, err := client.GetClient(ctx, id); err != nil {
		if clientesdk.IsNotFound(err) {
			// gone
		}
		fmt.Println(clientesdk.Detail(err))
	}

# Logging and Request IDs

The default HTTP client uses slogx.Transport, so every request carries an
X-Request-ID header and is logged through the logger found in the request
context.

# Throttling

SetRateLimit caps outgoing requests per second. It is off by default.
*/
package clientesdk
