// Package phivolcs scrapes the PHIVOLCS earthquake information bulletin,
// the primary seismic-event source. The bulletin is an HTML page whose
// layout shifts between redesigns, so the event table is located by header
// text rather than position.
package phivolcs

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/couchcryptid/relief-analyzer-service/internal/config"
	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
	"github.com/couchcryptid/relief-analyzer-service/internal/observability"
)

// ErrNoBulletinTable indicates the page was fetched but no table with the
// expected header columns was found. Fatal for this source; the orchestrator
// falls back to the secondary.
var ErrNoBulletinTable = errors.New("phivolcs: no bulletin table found")

// browserUserAgent is sent on every request; the bulletin site rejects
// requests that look like automation.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches and parses the PHIVOLCS bulletin.
// It implements fetch.Source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keyword    string
	bounds     config.BoundingBox
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a bulletin scraper from config. TLS verification is
// relaxed: the bulletin host has a history of certificate chain problems and
// the data is public.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // see above
	}
	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.PhivolcsTimeout,
		},
		baseURL: cfg.PhivolcsURL,
		keyword: cfg.RegionKeyword,
		bounds:  cfg.RegionBounds,
		logger:  logger,
		metrics: metrics,
	}
}

// Name returns the source identifier.
func (c *Client) Name() string { return domain.SourcePHIVOLCS }

// FetchEvents downloads the bulletin page and extracts events matching the
// configured region filter. Individual malformed rows are skipped; a missing
// bulletin table fails the whole fetch.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.SeismicEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("phivolcs: create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("phivolcs: fetch bulletin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("phivolcs: bulletin returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("phivolcs: parse bulletin html: %w", err)
	}

	table := findBulletinTable(doc)
	if table == nil {
		return nil, ErrNoBulletinTable
	}

	events := c.parseRows(table)
	c.logger.Debug("bulletin scraped", "events", len(events))
	return events, nil
}

// findBulletinTable locates the event table by its header row: the table
// whose headers mention both a date and a magnitude column, case-insensitive.
// Positional selectors are deliberately avoided.
func findBulletinTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := strings.ToLower(table.Find("tr").First().Text())
		if strings.Contains(header, "date") && strings.Contains(header, "magnitude") {
			found = table
			return false
		}
		return true
	})
	return found
}

// parseRows extracts events from the bulletin table's data rows. Rows with
// fewer than six cells, unparsable numbers, or outside the region filter are
// skipped without failing the fetch.
func (c *Client) parseRows(table *goquery.Selection) []domain.SeismicEvent {
	var events []domain.SeismicEvent

	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := tr.Find("td")
		if cells.Length() < 6 {
			return
		}

		rawDate := cellText(cells, 0)
		lat, errLat := strconv.ParseFloat(cellText(cells, 1), 64)
		lon, errLon := strconv.ParseFloat(cellText(cells, 2), 64)
		depth := cellText(cells, 3)
		magnitude, errMag := strconv.ParseFloat(cellText(cells, 4), 64)
		location := cellText(cells, 5)

		if errLat != nil || errLon != nil || errMag != nil {
			c.logger.Debug("skipping malformed bulletin row", "row", i)
			return
		}
		if !c.matchesRegion(location, lat, lon) {
			return
		}

		occurredAt, parsed := domain.ParseBulletinTime(rawDate)
		if !parsed {
			c.metrics.TimestampFallbacks.Inc()
			c.logger.Warn("bulletin timestamp unparsable, estimating", "raw", rawDate, "location", location)
		}

		events = append(events, domain.SeismicEvent{
			OccurredAtRaw: rawDate,
			OccurredAt:    occurredAt,
			TimeEstimated: !parsed,
			Latitude:      lat,
			Longitude:     lon,
			Depth:         depth,
			Magnitude:     magnitude,
			Location:      location,
			Source:        domain.SourcePHIVOLCS,
		})
	})

	return events
}

// matchesRegion keeps rows whose location text contains the configured
// keyword or whose epicenter falls inside the configured bounding box.
func (c *Client) matchesRegion(location string, lat, lon float64) bool {
	if c.keyword != "" && strings.Contains(strings.ToLower(location), strings.ToLower(c.keyword)) {
		return true
	}
	return c.bounds.Contains(lat, lon)
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.Join(strings.Fields(cells.Eq(i).Text()), " ")
}
