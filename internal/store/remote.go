package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Entity describes how a server-backed module maps onto the API
// service.
type Entity struct {
	Path    string // collection path, e.g. "/sales"
	IDField string // identity field name, e.g. "order_no"
}

// The three server-backed collections.
var (
	EntitySales   = Entity{Path: "/sales", IDField: "order_no"}
	EntityClients = Entity{Path: "/clients", IDField: "dealer_id"}
	EntityUsers   = Entity{Path: "/api/users", IDField: "user_id"}
)

// Remote is the API-backed RecordStore implementation.
type Remote struct {
	baseURL string
	entity  Entity
	client  *http.Client
}

func NewRemote(baseURL string, entity Entity) *Remote {
	return &Remote{
		baseURL: baseURL,
		entity:  entity,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the {error} body every failing endpoint returns.
type apiError struct {
	Error string `json:"error"`
}

func (r *Remote) do(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("store: encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("store: %s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("store: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("store: decode response: %w", err)
		}
	}
	return nil
}

func (r *Remote) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.do(ctx, http.MethodGet, r.entity.Path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Remote) Add(ctx context.Context, fields Record) (Record, error) {
	var record Record
	if err := r.do(ctx, http.MethodPost, r.entity.Path, fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Remote) itemPath(id string) string {
	return r.entity.Path + "/" + url.PathEscape(id)
}

func (r *Remote) Edit(ctx context.Context, id string, fields Record) (Record, error) {
	var record Record
	if err := r.do(ctx, http.MethodPut, r.itemPath(id), fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete returns the deleted record, unwrapping the API's
// {message, <entity>} confirmation envelope.
func (r *Remote) Delete(ctx context.Context, id string) (Record, error) {
	var envelope map[string]json.RawMessage
	if err := r.do(ctx, http.MethodDelete, r.itemPath(id), nil, &envelope); err != nil {
		return nil, err
	}

	for key, raw := range envelope {
		if key == "message" {
			continue
		}
		var record Record
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("store: decode deleted record: %w", err)
		}
		return record, nil
	}
	return nil, fmt.Errorf("store: delete response missing record")
}
