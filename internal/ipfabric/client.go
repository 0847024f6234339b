package ipfabric

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"intf-report/internal/logger"
	"intf-report/internal/model"
)

// InterfacesTable is the Inventory > Interfaces table endpoint
const InterfacesTable = "tables/inventory/interfaces"

const (
	defaultAPIVersion = "v6.8"
	defaultSnapshot   = "$last"
	defaultPageSize   = 1000
	defaultTimeout    = 60 * time.Second

	// maxErrorBody caps how much of an error response ends up in the error message
	maxErrorBody = 512
)

// ProgressFunc is called after each page with the rows fetched so far and the table size
type ProgressFunc func(fetched, total int)

// Options configures a Client
type Options struct {
	BaseURL    string
	Token      string
	APIVersion string
	Snapshot   string
	Verify     bool
	Timeout    time.Duration
	PageSize   int

	// HTTPClient overrides the client built from Verify and Timeout
	HTTPClient *http.Client
}

// Client reads tables from the IP Fabric REST API
type Client struct {
	endpoint   string
	token      string
	snapshot   string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a Client, filling unset options with defaults
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid IP Fabric URL %q", model.ErrConfiguration, opts.BaseURL)
	}
	if opts.Token == "" {
		return nil, fmt.Errorf("%w: IP Fabric API token is empty", model.ErrConfiguration)
	}

	version := opts.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	snapshot := opts.Snapshot
	if snapshot == "" {
		snapshot = defaultSnapshot
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !opts.Verify}
		httpClient = &http.Client{Transport: transport, Timeout: timeout}
	}

	return &Client{
		endpoint:   strings.TrimRight(base.String(), "/") + "/api/" + strings.Trim(version, "/") + "/",
		token:      opts.Token,
		snapshot:   snapshot,
		pageSize:   pageSize,
		httpClient: httpClient,
	}, nil
}

type tableRequest struct {
	Columns    []string   `json:"columns"`
	Snapshot   string     `json:"snapshot"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Start int `json:"start"`
	Limit int `json:"limit"`
}

type tableResponse struct {
	Data []model.InterfaceRecord `json:"data"`
	Meta struct {
		Count int `json:"count"`
		Limit int `json:"limit"`
		Start int `json:"start"`
	} `json:"_meta"`
}

// Count returns the number of rows of the interfaces table in the snapshot
func (c *Client) Count(ctx context.Context) (int, error) {
	resp, err := c.page(ctx, 0, 1)
	if err != nil {
		return 0, err
	}
	return resp.Meta.Count, nil
}

// Interfaces reads the whole interfaces table, one page at a time.
// progress may be nil.
func (c *Client) Interfaces(ctx context.Context, progress ProgressFunc) ([]model.InterfaceRecord, error) {
	var records []model.InterfaceRecord

	for start := 0; ; start += c.pageSize {
		resp, err := c.page(ctx, start, c.pageSize)
		if err != nil {
			return nil, err
		}
		records = append(records, resp.Data...)

		logger.WithFields(logger.Fields{
			"table": InterfacesTable,
			"start": start,
			"rows":  len(resp.Data),
			"count": resp.Meta.Count,
		}).Debug("Fetched interfaces page")

		if progress != nil {
			progress(len(records), resp.Meta.Count)
		}

		// A short page is the last one. When the table size is known, stop at it
		if len(resp.Data) < c.pageSize || (resp.Meta.Count > 0 && len(records) >= resp.Meta.Count) {
			break
		}
	}

	return records, nil
}

func (c *Client) page(ctx context.Context, start, limit int) (*tableResponse, error) {
	body, err := json.Marshal(tableRequest{
		Columns:    model.RecordColumns,
		Snapshot:   c.snapshot,
		Pagination: pagination{Start: start, Limit: limit},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode table request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+InterfacesTable, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Token", c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", InterfacesTable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: res.StatusCode,
			Table:      InterfacesTable,
			Body:       strings.TrimSpace(string(excerpt)),
		}
	}

	var out tableResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %v", model.ErrData, InterfacesTable, err)
	}

	return &out, nil
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Table      string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Table, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Table, e.StatusCode, e.Body)
}
