package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const (
	OpenMeteoArchiveBaseURL = "https://archive-api.open-meteo.com/v1/archive"

	dailyVariables = "temperature_2m_max,temperature_2m_min"
)

type OpenMeteoArchiveRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

// NewOpenMeteoArchiveRepository returns a repository using httpClient, or a client
// with RequestTimeout when httpClient is nil.
func NewOpenMeteoArchiveRepository(l *logger.Logger, httpClient HTTPClient) *OpenMeteoArchiveRepository {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}

	return &OpenMeteoArchiveRepository{
		baseURL:    OpenMeteoArchiveBaseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoArchiveRepository) Name() string {
	return "open-meteo-archive"
}

// RequestURL builds the archive query for coord over dr.
func (o *OpenMeteoArchiveRepository) RequestURL(coord models.Coordinate, dr models.DateRange) string {
	return fmt.Sprintf("%s?latitude=%s&longitude=%s&start_date=%s&end_date=%s&daily=%s",
		o.baseURL,
		coord.QueryLatitude(),
		coord.QueryLongitude(),
		dr.StartDate(),
		dr.EndDate(),
		dailyVariables,
	)
}

type archiveResponse struct {
	Daily models.DailySeries `json:"daily"`
}

// FetchDaily issues a single GET for the daily temperature extremes. Every error
// returned is a *FetchError.
func (o *OpenMeteoArchiveRepository) FetchDaily(ctx context.Context, coord models.Coordinate, dr models.DateRange) (models.DailySeries, error) {
	url := o.RequestURL(coord, dr)

	fields := dr.RequestParams()
	fields["repository"] = o.Name()
	fields["location"] = coord.String()
	fields["url"] = url
	o.l.Info("making open-meteo archive request", fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.DailySeries{}, &FetchError{Kind: KindRequest, Err: errors.Wrap(err, "failed to create request")}
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return models.DailySeries{}, transportError(err)
	}
	defer resp.Body.Close()

	o.l.Info("received open-meteo archive response", map[string]any{
		"repository": o.Name(),
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.DailySeries{}, transportError(errors.Wrap(err, "failed to read response body"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.DailySeries{}, o.statusError(resp, url, body)
	}

	if !json.Valid(body) {
		return models.DailySeries{}, &FetchError{
			Kind: KindRequest,
			Err:  errors.Errorf("invalid JSON in response body from %s", url),
		}
	}

	var response archiveResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.DailySeries{}, &FetchError{
			Kind: KindUnexpected,
			Err:  errors.Wrap(err, "failed to parse archive response"),
		}
	}

	o.l.Info("parsed open-meteo archive response", map[string]any{
		"repository": o.Name(),
		"days":       len(response.Daily.Time),
		"rows":       response.Daily.Len(),
	})

	if n := response.Daily.Len(); n != len(response.Daily.Time) ||
		n != len(response.Daily.Temperature2mMax) || n != len(response.Daily.Temperature2mMin) {
		o.l.Warning("daily sequences differ in length", map[string]any{
			"repository": o.Name(),
			"timeLength": len(response.Daily.Time),
			"maxLength":  len(response.Daily.Temperature2mMax),
			"minLength":  len(response.Daily.Temperature2mMin),
		})
	}

	return response.Daily, nil
}

func (o *OpenMeteoArchiveRepository) statusError(resp *http.Response, url string, body []byte) *FetchError {
	fe := &FetchError{
		Kind:       KindHTTPStatus,
		StatusCode: resp.StatusCode,
		Err:        errors.New(statusMessage(resp, url)),
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		fe.Body = json.RawMessage(trimmed)
	}

	fields := map[string]any{
		"repository": o.Name(),
		"statusCode": resp.StatusCode,
	}
	var errorResp models.OpenMeteoErrorResponse
	if fe.HasJSONBody() && json.Unmarshal(fe.Body, &errorResp) == nil && errorResp.Error {
		fields["reason"] = errorResp.Reason
	}
	o.l.Warning("archive returned an error status", fields)

	return fe
}

// statusMessage follows the "<code> Client Error: <reason> for url: <url>" form.
func statusMessage(resp *http.Response, url string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Sprintf("%d Client Error: %s for url: %s", resp.StatusCode, reason, url)
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return fmt.Sprintf("%d Server Error: %s for url: %s", resp.StatusCode, reason, url)
	default:
		return fmt.Sprintf("unexpected status %d %s for url: %s", resp.StatusCode, reason, url)
	}
}
