// Package usgs queries the USGS fdsnws event API, the secondary seismic-event
// source used when the PHIVOLCS bulletin is unreachable.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/relief-analyzer-service/internal/config"
	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
)

// fallbackLocation labels events the API returns without a place string.
const fallbackLocation = "Philippine region"

// Client queries the USGS earthquake catalog.
// It implements fetch.Source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	centerLat  float64
	centerLon  float64
	radiusKm   float64
	minMag     float64
	windowDays int
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewClient creates a USGS catalog client from config. Pass a fake clock in
// tests to pin the query window.
func NewClient(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.USGSTimeout},
		baseURL:    cfg.USGSURL,
		centerLat:  cfg.SearchCenterLat,
		centerLon:  cfg.SearchCenterLon,
		radiusKm:   cfg.SearchRadiusKm,
		minMag:     cfg.SearchMinMag,
		windowDays: cfg.SearchWindowDays,
		clock:      clock,
		logger:     logger,
	}
}

// Name returns the source identifier.
func (c *Client) Name() string { return domain.SourceUSGS }

// FetchEvents queries the catalog for events around the configured center
// within the trailing window. The API's radius and magnitude parameters do
// the region filtering; no further filtering happens client-side.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.SeismicEvent, error) {
	start := c.clock.Now().UTC().AddDate(0, 0, -c.windowDays)

	params := url.Values{
		"format":       {"geojson"},
		"latitude":     {strconv.FormatFloat(c.centerLat, 'f', 4, 64)},
		"longitude":    {strconv.FormatFloat(c.centerLon, 'f', 4, 64)},
		"maxradiuskm":  {strconv.FormatFloat(c.radiusKm, 'f', 0, 64)},
		"minmagnitude": {strconv.FormatFloat(c.minMag, 'f', 1, 64)},
		"starttime":    {start.Format("2006-01-02")},
		"orderby":      {"time"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("usgs: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs: query catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("usgs: catalog returned status %d: %s", resp.StatusCode, body)
	}

	var feed featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("usgs: decode response: %w", err)
	}

	events := make([]domain.SeismicEvent, 0, len(feed.Features))
	for _, f := range feed.Features {
		if len(f.Geometry.Coordinates) < 3 {
			continue
		}

		location := f.Properties.Place
		if location == "" {
			location = fallbackLocation
		}
		var magnitude float64
		if f.Properties.Mag != nil {
			magnitude = *f.Properties.Mag
		}
		occurredAt := time.UnixMilli(f.Properties.Time).UTC()

		events = append(events, domain.SeismicEvent{
			OccurredAtRaw: occurredAt.Format(time.RFC3339),
			OccurredAt:    occurredAt,
			Latitude:      f.Geometry.Coordinates[1],
			Longitude:     f.Geometry.Coordinates[0],
			Depth:         fmt.Sprintf("%.0f km", f.Geometry.Coordinates[2]),
			Magnitude:     magnitude,
			Location:      location,
			Source:        domain.SourceUSGS,
		})
	}

	c.logger.Debug("usgs catalog queried", "events", len(events))
	return events, nil
}

// USGS GeoJSON response types.

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties properties `json:"properties"`
	Geometry   geometry   `json:"geometry"`
}

type properties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  int64    `json:"time"` // epoch milliseconds
}

type geometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth_km]
}
