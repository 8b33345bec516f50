package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/log"
	"github.com/zjrosen/leifetch/internal/tracing"
)

// DefaultBaseURL is the public GLEIF API.
const DefaultBaseURL = "https://api.gleif.org/api/v1"

const mediaTypeJSONAPI = "application/vnd.api+json"

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

// GLEIFClient looks up LEI records from the GLEIF JSON:API.
type GLEIFClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// GLEIFOption configures a GLEIFClient.
type GLEIFOption func(*GLEIFClient)

// WithHTTPClient replaces the default http.Client. A nil hc is ignored.
func WithHTTPClient(hc *http.Client) GLEIFOption {
	return func(c *GLEIFClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets an overall request timeout. Zero means none. The client
// is copied first, so a shared client such as http.DefaultClient keeps its
// own timeout.
func WithTimeout(d time.Duration) GLEIFOption {
	return func(c *GLEIFClient) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) GLEIFOption {
	return func(c *GLEIFClient) {
		c.userAgent = ua
	}
}

// NewGLEIFClient creates a client for baseURL (DefaultBaseURL when empty).
func NewGLEIFClient(baseURL string, opts ...GLEIFOption) *GLEIFClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &GLEIFClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "leifetch",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup implements Client.
func (c *GLEIFClient) Lookup(ctx context.Context, lei string) (entity.Record, error) {
	endpoint := c.baseURL + "/lei-records/" + url.PathEscape(lei)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.Record{}, fmt.Errorf("building lei record request: %w", err)
	}
	req.Header.Set("Accept", mediaTypeJSONAPI)
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug(log.CatLookup, "requesting lei record", "url", endpoint, "request_id", tracing.RequestIDFromContext(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Record{}, fmt.Errorf("requesting lei record: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Record{}, decodeFailure(resp)
	}

	var doc recordDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return entity.Record{}, fmt.Errorf("decoding lei record: %w", err)
	}
	return doc.Data.Attributes.toRecord(), nil
}

// decodeFailure maps a non-2xx response to *Error. The first JSON:API error
// object supplies the structured message (detail preferred over title).
func decodeFailure(resp *http.Response) error {
	failure := &Error{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return failure
	}

	var doc errorDocument
	if err := json.Unmarshal(data, &doc); err != nil || len(doc.Errors) == 0 {
		return failure
	}

	first := doc.Errors[0]
	msg := first.Detail
	if msg == "" {
		msg = first.Title
	}
	if msg != "" {
		failure.Body = &ErrorBody{Message: msg}
	}
	return failure
}

// JSON:API documents returned by GLEIF. Only mapped fields are declared.

type recordDocument struct {
	Data struct {
		ID         string           `json:"id"`
		Attributes recordAttributes `json:"attributes"`
	} `json:"data"`
}

type recordAttributes struct {
	LEI    string `json:"lei"`
	Entity struct {
		LegalName struct {
			Name string `json:"name"`
		} `json:"legalName"`
		LegalAddress struct {
			AddressLines []string `json:"addressLines"`
			City         string   `json:"city"`
			PostalCode   string   `json:"postalCode"`
			Country      string   `json:"country"`
		} `json:"legalAddress"`
		Jurisdiction string `json:"jurisdiction"`
		Category     string `json:"category"`
		Status       string `json:"status"`
	} `json:"entity"`
	Registration struct {
		InitialRegistrationDate string `json:"initialRegistrationDate"`
		LastUpdateDate          string `json:"lastUpdateDate"`
		Status                  string `json:"status"`
		NextRenewalDate         string `json:"nextRenewalDate"`
	} `json:"registration"`
}

func (a recordAttributes) toRecord() entity.Record {
	return entity.Record{
		LegalName:               a.Entity.LegalName.Name,
		LEI:                     a.LEI,
		Status:                  a.Entity.Status,
		RegistrationStatus:      a.Registration.Status,
		Category:                a.Entity.Category,
		InitialRegistrationDate: a.Registration.InitialRegistrationDate,
		LastUpdateDate:          a.Registration.LastUpdateDate,
		NextRenewalDate:         a.Registration.NextRenewalDate,
		LegalAddress:            strings.Join(a.Entity.LegalAddress.AddressLines, ", "),
		LegalCity:               a.Entity.LegalAddress.City,
		LegalPostalCode:         a.Entity.LegalAddress.PostalCode,
		LegalCountry:            a.Entity.LegalAddress.Country,
		Jurisdiction:            a.Entity.Jurisdiction,
	}
}

type errorDocument struct {
	Errors []struct {
		Status string `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
