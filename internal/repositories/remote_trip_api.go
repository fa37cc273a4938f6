package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// RemoteTripAPI fetches trip-detail payloads from the upstream HTTP endpoint.
type RemoteTripAPI struct {
	BaseURL string
	Client  *http.Client
}

func (r RemoteTripAPI) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (r RemoteTripAPI) FetchTrip(ctx context.Context, tripID string) (*models.TripPayload, error) {
	base := strings.TrimRight(r.BaseURL, "/")
	if base == "" {
		return nil, domain.InternalError{Msg: "trip API base URL not configured"}
	}

	endpoint := base + "/trips/" + url.PathEscape(tripID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to build trip request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client().Do(req)
	if err != nil {
		return nil, domain.InternalError{Msg: "trip API request failed", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NotFoundError{Resource: "trip"}
	case resp.StatusCode != http.StatusOK:
		return nil, domain.InternalError{Msg: fmt.Sprintf("trip API returned status %d", resp.StatusCode)}
	}

	var payload models.TripPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.InternalError{Msg: "trip API returned invalid JSON", Err: err}
	}
	return &payload, nil
}
