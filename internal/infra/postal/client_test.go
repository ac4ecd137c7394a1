package postal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pincode/620001", r.URL.Path)
		_, _ = w.Write([]byte(`[{"Status":"Success","PostOffice":[{"District":"Tiruchirappalli","State":"Tamil Nadu"}]}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	place, err := client.Lookup(context.Background(), "620001")
	require.NoError(t, err)
	require.Equal(t, "Tiruchirappalli", place.City)
	require.Equal(t, "Tamil Nadu", place.State)
}

func TestLookup_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"Status":"Error","PostOffice":null}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Lookup(context.Background(), "000000")
	require.ErrorIs(t, err, ErrLookupFailed)
}

func TestLookup_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Lookup(context.Background(), "620001")
	require.ErrorIs(t, err, ErrLookupFailed)
}
