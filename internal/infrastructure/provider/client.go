package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-directory/config"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/observability/metrics"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const maxErrorBodyLen = 300

// Client fetches the raw provider list from the external directory feed
type Client struct {
	url        string
	httpClient *http.Client
	log        *logrus.Logger
	metrics    *metrics.DirectoryMetrics
}

func NewClient(cfg config.ProviderConfig, log *logrus.Logger, m *metrics.DirectoryMetrics) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}
	// hand the final response back so the status code reaches the caller
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		url:        cfg.URL,
		httpClient: retryClient.StandardClient(),
		log:        log,
		metrics:    m,
	}
}

// FetchProviders issues one GET against the feed. Any failure is returned as *entity.FetchError.
func (c *Client) FetchProviders(ctx context.Context) ([]entity.ProviderRecord, error) {
	start := time.Now()

	records, outcome, err := c.fetch(ctx)
	c.metrics.ObserveFetch(outcome, time.Since(start).Seconds())
	if err != nil {
		c.log.Warnf("Failed to fetch providers from %s: %+v", c.url, err)
		return nil, err
	}

	c.log.Infof("Fetched %d providers in %s", len(records), time.Since(start))
	return records, nil
}

func (c *Client) fetch(ctx context.Context) ([]entity.ProviderRecord, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, "transport_error", &entity.FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "transport_error", &entity.FetchError{Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "transport_error", &entity.FetchError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(body)
		if len(msg) > maxErrorBodyLen {
			msg = msg[:maxErrorBodyLen]
		}
		return nil, "http_error", &entity.FetchError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(msg),
		}
	}

	var records []entity.ProviderRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, "decode_error", &entity.FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if records == nil {
		records = []entity.ProviderRecord{}
	}

	return records, "success", nil
}
