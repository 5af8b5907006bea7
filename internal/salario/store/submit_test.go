package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/internal/salario/store"
	"github.com/aussiebroadwan/salario/pkg/clientesdk"
	"github.com/stretchr/testify/require"
)

func TestSubmitSendsTheDraftItWasGiven(t *testing.T) {
	t.Parallel()

	t.Run("create ignores later form changes", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{nextID: "new"}
		s := loadedStore(t, api)

		fillForm(s, "Marta", "1500", "3")
		draft := s.Snapshot().Form

		// user starts editing another record before the create runs
		s.BeginEdit("b")
		s.Submit(context.Background(), draft)

		snap := s.Snapshot()
		require.Equal(t, []string{"list", "create"}, api.Calls())
		require.Equal(t, "Marta", api.lastReq.Name)
		require.Equal(t, "Marta", snap.Clientes[3].Name)

		// the newer draft is not thrown away
		require.Equal(t, domain.FormEditing, snap.Form.Mode)
		require.Equal(t, "b", snap.Form.TargetID)
	})

	t.Run("update ignores later form changes", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{}
		s := loadedStore(t, api)

		s.BeginEdit("a")
		s.SetField(domain.FieldName, "Ana María")
		draft := s.Snapshot().Form

		s.SetField(domain.FieldName, "Ana Lucía")
		s.Submit(context.Background(), draft)

		snap := s.Snapshot()
		require.Contains(t, api.Calls(), "update a")
		require.Equal(t, "Ana María", snap.Clientes[0].Name)
		require.Equal(t, "Ana Lucía", snap.Form.Name)
	})
}

func TestSubmitTrimsName(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{nextID: "new"}
	s := loadedStore(t, api)

	fillForm(s, "  Bob  ", "900", "0")
	s.Submit(context.Background(), s.Snapshot().Form)

	require.Equal(t, "Bob", api.lastReq.Name)
}

func TestEmptyServiceReplyKeepsCollection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"_id":"a","nombre":"Ana","sueldo":1500,"antiguedad":3,"bono":300}]`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := store.New(clientesdk.NewSDKClient(srv.URL))
	ctx := context.Background()

	s.LoadAll(ctx)
	before := s.Snapshot().Clientes
	require.Len(t, before, 1)

	t.Run("create", func(t *testing.T) {
		fillForm(s, "Marta", "1500", "3")
		s.Submit(ctx, s.Snapshot().Form)

		snap := s.Snapshot()
		require.Equal(t, before, snap.Clientes)
		require.Equal(t, store.StatusError, snap.Status.Kind)
		require.Contains(t, snap.Status.Message, "Failed to create client")
		require.Equal(t, "Marta", snap.Form.Name)
	})

	t.Run("update", func(t *testing.T) {
		s.BeginEdit("a")
		s.SetField(domain.FieldSalary, "4000")
		s.Submit(ctx, s.Snapshot().Form)

		snap := s.Snapshot()
		require.Equal(t, before, snap.Clientes)
		require.Contains(t, snap.Status.Message, "Failed to update client")
		require.Equal(t, domain.FormEditing, snap.Form.Mode)
	})
}
