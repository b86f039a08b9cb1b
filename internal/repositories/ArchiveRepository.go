package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-report/internal/models"
)

// RequestTimeout bounds a whole archive request, body included.
const RequestTimeout = 10 * time.Second

type ArchiveRepository interface {
	Name() string
	FetchDaily(ctx context.Context, coord models.Coordinate, dr models.DateRange) (models.DailySeries, error)
}

// HTTPClient is the subset of *http.Client the repositories need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: RequestTimeout}
}
