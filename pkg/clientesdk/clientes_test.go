package clientesdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/salario/pkg/clientesdk"
	"github.com/aussiebroadwan/salario/pkg/clientesdk/sdktest"
	"github.com/stretchr/testify/require"
)

func seed() []clientesdk.Cliente {
	return []clientesdk.Cliente{
		{ID: "c1", Name: "Ana", Salary: 1500, TenureYears: 3, Bonus: 300},
		{ID: "c2", Name: "Luis", Salary: 900, TenureYears: 0, Bonus: 225},
	}
}

func TestCRUDRoundTrip(t *testing.T) {
	t.Parallel()

	srv := sdktest.NewServer(seed()...)
	defer srv.Close()

	client := clientesdk.NewSDKClient(srv.BaseURL())
	ctx := context.Background()

	t.Run("list preserves order", func(t *testing.T) {
		list, err := client.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "c1", list[0].ID)
		require.Equal(t, "c2", list[1].ID)
	})

	t.Run("get", func(t *testing.T) {
		c, err := client.GetClient(ctx, "c2")
		require.NoError(t, err)
		require.Equal(t, "Luis", c.Name)
		require.Equal(t, 225.0, c.Bonus.Float64())
	})

	var createdID string
	t.Run("create assigns id", func(t *testing.T) {
		c, err := client.CreateClient(ctx, clientesdk.ClienteRequest{Name: "Eva", Salary: 4000, TenureYears: 6, Bonus: 1200})
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		require.Equal(t, 1200.0, c.Bonus.Float64())
		createdID = c.ID
	})

	t.Run("update", func(t *testing.T) {
		c, err := client.UpdateClient(ctx, createdID, clientesdk.ClienteRequest{Name: "Eva M", Salary: 4000, TenureYears: 6, Bonus: 1200})
		require.NoError(t, err)
		require.Equal(t, createdID, c.ID)
		require.Equal(t, "Eva M", c.Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteClient(ctx, "c1"))
		require.Len(t, srv.Records(), 2)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	srv := sdktest.NewServer(seed()...)
	defer srv.Close()

	client := clientesdk.NewSDKClient(srv.BaseURL())
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetClient(ctx, "missing")
		require.Error(t, err)
		require.True(t, clientesdk.IsNotFound(err))
		require.Equal(t, "cliente no encontrado", clientesdk.Detail(err))
	})

	t.Run("validation echoed verbatim", func(t *testing.T) {
		_, err := client.CreateClient(ctx, clientesdk.ClienteRequest{Salary: 10})
		require.Error(t, err)
		require.True(t, clientesdk.IsValidation(err))
		require.Equal(t, "el nombre es obligatorio", clientesdk.Detail(err))
	})

	t.Run("service error", func(t *testing.T) {
		srv.Fail(sdktest.Failure{Method: http.MethodDelete, Status: http.StatusInternalServerError, Message: "db down"})
		err := client.DeleteClient(ctx, "c1")

		var se *clientesdk.ServiceError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusInternalServerError, se.StatusCode)
		require.Equal(t, "HTTP 500: db down", se.Error())
		require.Len(t, srv.Records(), 2)
	})

	t.Run("missing id never hits the wire", func(t *testing.T) {
		before := srv.Requests()
		err := client.DeleteClient(ctx, "")
		require.ErrorIs(t, err, clientesdk.ErrMissingID)
		require.Equal(t, before, srv.Requests())
	})
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := clientesdk.NewSDKClient(baseURL)
	_, err := client.ListClients(context.Background())
	require.Error(t, err)
	require.True(t, clientesdk.IsTransport(err))
	require.False(t, clientesdk.IsNotFound(err))
	require.Contains(t, clientesdk.Detail(err), "send request")
}

func TestNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := clientesdk.NewSDKClient(srv.URL).ListClients(context.Background())

	var se *clientesdk.ServiceError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadGateway, se.StatusCode)
	require.Equal(t, "upstream unavailable", se.Message)
}

func TestTolerantNumbers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"x","nombre":"Ana","sueldo":"1500","antiguedad":3,"bono":null},
			{"_id":"y","nombre":"Luis","sueldo":"abc","antiguedad":" 2.5 ","bono":"225"}]`))
	}))
	defer srv.Close()

	list, err := clientesdk.NewSDKClient(srv.URL).ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, 1500.0, list[0].Salary.Float64())
	require.Equal(t, 3.0, list[0].TenureYears.Float64())
	require.Equal(t, 0.0, list[0].Bonus.Float64())

	require.Equal(t, 0.0, list[1].Salary.Float64())
	require.Equal(t, 2.5, list[1].TenureYears.Float64())
	require.Equal(t, 225.0, list[1].Bonus.Float64())
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	srv := sdktest.NewServer()
	defer srv.Close()

	client := clientesdk.NewSDKClient(srv.BaseURL())
	client.SetRateLimit(20)
	require.NotNil(t, client.Limiter)

	start := time.Now()
	for range 3 {
		_, err := client.ListClients(context.Background())
		require.NoError(t, err)
	}
	// burst of one: the 2nd and 3rd calls each wait ~50ms
	require.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)

	client.SetRateLimit(0)
	require.Nil(t, client.Limiter)
}

func TestRateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	srv := sdktest.NewServer()
	defer srv.Close()

	client := clientesdk.NewSDKClient(srv.BaseURL())
	client.SetRateLimit(0.001)

	_, err := client.ListClients(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.ListClients(ctx)
	require.True(t, clientesdk.IsTransport(err))
}

func TestEmptyListIsNotNil(t *testing.T) {
	t.Parallel()

	srv := sdktest.NewServer()
	defer srv.Close()

	list, err := clientesdk.NewSDKClient(srv.BaseURL() + "/").ListClients(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestEmptySuccessBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("null"))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := clientesdk.NewSDKClient(srv.URL)
	ctx := context.Background()
	req := clientesdk.ClienteRequest{Name: "Ana", Salary: 1500, TenureYears: 3, Bonus: 300}

	t.Run("create", func(t *testing.T) {
		c, err := client.CreateClient(ctx, req)
		require.Nil(t, c)
		require.True(t, clientesdk.IsTransport(err))
		require.ErrorIs(t, err, clientesdk.ErrEmptyResponse)
	})

	t.Run("update", func(t *testing.T) {
		c, err := client.UpdateClient(ctx, "c1", req)
		require.Nil(t, c)
		require.ErrorIs(t, err, clientesdk.ErrEmptyResponse)
	})

	t.Run("null record", func(t *testing.T) {
		c, err := client.GetClient(ctx, "c1")
		require.Nil(t, c)
		require.ErrorIs(t, err, clientesdk.ErrEmptyResponse)
	})

	t.Run("delete needs no body", func(t *testing.T) {
		require.NoError(t, client.DeleteClient(ctx, "c1"))
	})
}
