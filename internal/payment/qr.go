package payment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"kirana-be/internal/logger"

	"go.uber.org/zap"
)

// QRClient fetches rendered QR images from the external service for
// clients that cannot render locally. A failure here never affects
// order correctness; callers fall back to the raw URI.
type QRClient struct {
	builder    *LinkBuilder
	httpClient *http.Client
}

func NewQRClient(builder *LinkBuilder) *QRClient {
	return &QRClient{
		builder: builder,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchImage downloads the QR PNG for the given upi://pay URI.
func (c *QRClient) FetchImage(ctx context.Context, uri string, size int) ([]byte, error) {
	imageURL := c.builder.QRImageURL(uri, size)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Warn("qr image fetch failed",
			zap.String("url", imageURL),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qr service returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
