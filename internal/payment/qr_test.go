package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRClient_FetchImage(t *testing.T) {
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "upi://pay?am=10.00", r.URL.Query().Get("data"))
			assert.Equal(t, "256x256", r.URL.Query().Get("size"))
			w.Write(png)
		}))
		defer srv.Close()

		client := NewQRClient(NewLinkBuilder("shop@upi", "Kirana Store", srv.URL))

		img, err := client.FetchImage(ctx, "upi://pay?am=10.00", 256)
		require.NoError(t, err)
		assert.Equal(t, png, img)
	})

	t.Run("ServiceError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewQRClient(NewLinkBuilder("shop@upi", "Kirana Store", srv.URL))

		_, err := client.FetchImage(ctx, "upi://pay", 256)
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("ServiceUnreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewQRClient(NewLinkBuilder("shop@upi", "Kirana Store", srv.URL))

		_, err := client.FetchImage(ctx, "upi://pay", 256)
		assert.Error(t, err)
	})
}
