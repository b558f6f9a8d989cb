// Package api implements the read-only client for the remote timetable
// source. Nothing is ever written back; fetch failures leave local state
// untouched and the caller decides how to surface them.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

const (
	// DefaultBaseURL is the public timetable service.
	DefaultBaseURL = "https://timetable-api-9xsz.onrender.com"

	defaultTimeout = 15 * time.Second

	timetablePath = "/api/timetable"
)

// ErrNoData marks a response that parsed but contained no batches.
var ErrNoData = errors.New("remote source returned no timetable data")

// Client fetches timetable snapshots from the remote source.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL. An empty URL selects the
// public service; a zero timeout selects the 15 second default.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchTimetable retrieves every batch's timetable. The remote wire shape is
// an array holding one object whose numeric keys map to batch payloads; the
// keys are flattened away in key order.
func (c *Client) FetchTimetable(ctx context.Context) ([]*codec.TimetableData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+timetablePath, nil)
	if err != nil {
		return nil, fmt.Errorf("building timetable request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching timetable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetching timetable: %s: %s", resp.Status, remoteError(body))
	}

	var envelope []map[string]*codec.TimetableData
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("parsing timetable response: %w", err)
	}
	if len(envelope) == 0 || len(envelope[0]) == 0 {
		return nil, ErrNoData
	}

	keys := make([]string, 0, len(envelope[0]))
	for k := range envelope[0] {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr != nil || berr != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	batches := make([]*codec.TimetableData, 0, len(keys))
	for _, k := range keys {
		if data := envelope[0][k]; data != nil {
			batches = append(batches, data)
		}
	}
	if len(batches) == 0 {
		return nil, ErrNoData
	}
	return batches, nil
}

// FetchBatch retrieves the timetable for one batch, falling back to the
// first batch the source knows when the requested one is absent.
func (c *Client) FetchBatch(ctx context.Context, batch timetable.Batch) (*codec.TimetableData, error) {
	batches, err := c.FetchTimetable(ctx)
	if err != nil {
		return nil, err
	}
	for _, data := range batches {
		if data.Batch == batch {
			return data, nil
		}
	}
	return batches[0], nil
}

// CheckHealth reports whether the remote source answers at all. Any failure
// degrades to false; local editing never depends on it.
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+timetablePath, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.StatusCode == http.StatusOK
}

// remoteError extracts the service's error message from a failure body, or
// returns the raw body when it is not the documented shape.
func remoteError(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}
