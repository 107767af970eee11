package payment

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkBuilder_BuildURI(t *testing.T) {
	b := NewLinkBuilder("shop@upi", "Kirana Store", "https://qr.example/render")

	t.Run("AllFields", func(t *testing.T) {
		uri := b.BuildURI(decimal.RequireFromString("120"), "groceries", "ORD-1")

		require.True(t, strings.HasPrefix(uri, "upi://pay?"))

		parsed, err := url.Parse(uri)
		require.NoError(t, err)
		q := parsed.Query()

		assert.Equal(t, "shop@upi", q.Get("pa"))
		assert.Equal(t, "Kirana Store", q.Get("pn"))
		assert.Equal(t, "120.00", q.Get("am"))
		assert.Equal(t, "INR", q.Get("cu"))
		assert.Equal(t, "groceries", q.Get("tn"))
		assert.Equal(t, "ORD-1", q.Get("tr"))
	})

	t.Run("OmitsEmptyNoteAndReference", func(t *testing.T) {
		uri := b.BuildURI(decimal.RequireFromString("50.5"), "", "")

		parsed, err := url.Parse(uri)
		require.NoError(t, err)
		q := parsed.Query()

		assert.Equal(t, "50.50", q.Get("am"))
		assert.False(t, q.Has("tn"))
		assert.False(t, q.Has("tr"))
	})

	t.Run("EscapesNote", func(t *testing.T) {
		uri := b.BuildURI(decimal.NewFromInt(10), "rice & dal", "")

		parsed, err := url.Parse(uri)
		require.NoError(t, err)
		assert.Equal(t, "rice & dal", parsed.Query().Get("tn"))
		assert.NotContains(t, uri, " ")
	})
}

func TestLinkBuilder_QRImageURL(t *testing.T) {
	b := NewLinkBuilder("shop@upi", "Kirana Store", "https://qr.example/render")

	t.Run("EncodesURIAndSize", func(t *testing.T) {
		imageURL := b.QRImageURL("upi://pay?pa=shop%40upi", 300)

		parsed, err := url.Parse(imageURL)
		require.NoError(t, err)
		assert.Equal(t, "qr.example", parsed.Host)
		assert.Equal(t, "upi://pay?pa=shop%40upi", parsed.Query().Get("data"))
		assert.Equal(t, "300x300", parsed.Query().Get("size"))
	})

	t.Run("DefaultsSize", func(t *testing.T) {
		imageURL := b.QRImageURL("upi://pay", 0)

		parsed, err := url.Parse(imageURL)
		require.NoError(t, err)
		assert.Equal(t, "256x256", parsed.Query().Get("size"))
	})
}

func TestLinkBuilder_BuildLink(t *testing.T) {
	b := NewLinkBuilder("shop@upi", "Kirana Store", "https://qr.example/render")

	link := b.BuildLink(decimal.RequireFromString("120.005"), "groceries", "ORD-1")

	assert.Contains(t, link.URI, "upi://pay?")
	assert.Contains(t, link.QRImageURL, "https://qr.example/render?")
	assert.Equal(t, "120.01", link.Amount.StringFixed(2))
	assert.Equal(t, "groceries", link.Note)
	assert.Equal(t, "ORD-1", link.Reference)
}
