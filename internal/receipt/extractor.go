package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrExtractorUnavailable is returned when no extraction service is configured.
	ErrExtractorUnavailable = errors.New("receipt extraction service not configured")

	// ErrEmptyImage is returned when an image import carries no bytes.
	ErrEmptyImage = errors.New("receipt image is empty")

	// ErrExtractionFailed wraps transport and protocol failures of the
	// extraction service.
	ErrExtractionFailed = errors.New("receipt extraction failed")
)

// maxResponseBytes caps the size of an extraction response.
const maxResponseBytes = 1 << 20

// Extractor turns a receipt image into candidate items.
// Implementations only read receipts; they never compute totals.
type Extractor interface {
	Extract(ctx context.Context, image []byte, contentType string) ([]Candidate, error)
}

// HTTPExtractor calls an external extraction endpoint that accepts the raw
// image as the request body and answers {"items":[{name,unitPrice,quantity}]}.
type HTTPExtractor struct {
	endpoint string
	client   *http.Client
}

// NewHTTPExtractor creates an extractor for the given endpoint.
func NewHTTPExtractor(endpoint string, timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type extractResponse struct {
	Items []json.RawMessage `json:"items"`
}

// extractedItem is the loosest shape an item may arrive in. Fields are
// checked one candidate at a time by toCandidate.
type extractedItem struct {
	Name      string           `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Quantity  json.Number      `json:"quantity"`
}

// toCandidate converts one raw item. A malformed item becomes a candidate
// marked Invalid so that Import rejects it without affecting the others.
func toCandidate(raw json.RawMessage) Candidate {
	var item extractedItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return Candidate{Invalid: fmt.Sprintf("malformed item: %v", err)}
	}
	c := Candidate{Name: item.Name}
	if item.UnitPrice == nil {
		c.Invalid = "unit price is missing"
		return c
	}
	c.UnitPrice = *item.UnitPrice
	if item.Quantity == "" {
		c.Invalid = "quantity is missing"
		return c
	}
	quantity, err := strconv.Atoi(item.Quantity.String())
	if err != nil {
		c.Invalid = fmt.Sprintf("quantity %s is not a whole number", item.Quantity)
		return c
	}
	c.Quantity = quantity
	return c
}

// Extract posts the image and decodes the proposed items.
func (e *HTTPExtractor) Extract(ctx context.Context, image []byte, contentType string) ([]Candidate, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: service returned %d: %s", ErrExtractionFailed, resp.StatusCode, bytes.TrimSpace(body))
	}

	var out extractResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrExtractionFailed, err)
	}

	candidates := make([]Candidate, len(out.Items))
	for i, raw := range out.Items {
		candidates[i] = toCandidate(raw)
	}
	return candidates, nil
}
