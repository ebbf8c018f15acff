// Package client is a typed HTTP client for the Quran Explorer API.
package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"quran-explorer/internal/handlers"
	"quran-explorer/internal/storage"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// BookmarkSource answers which verse ids the user has bookmarked.
type BookmarkSource interface {
	Contains(ctx context.Context, id string) bool
	List(ctx context.Context) []string
}

// Client calls the read API.
type Client struct {
	http      *resty.Client
	bookmarks BookmarkSource
	intN      func(n int) int
}

// Option configures a Client.
type Option func(*Client)

// WithBookmarks enables the bookmark fallbacks of GetVerseByID and LoadBookmarkedVerses.
func WithBookmarks(b BookmarkSource) Option {
	return func(c *Client) {
		c.bookmarks = b
	}
}

// WithRandom replaces the random source used by RandomVerse. intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(c *Client) {
		c.intN = intN
	}
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:5000/api.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		intN: rand.Intn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET and decodes the body into result.
func (c *Client) get(ctx context.Context, path string, pathParams, query map[string]string, result any) error {
	var apiErr handlers.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(query).
		SetResult(result).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

func pageQuery(page, limit int) map[string]string {
	q := make(map[string]string, 2)
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	return q
}

func (c *Client) ListSuras(ctx context.Context) ([]storage.Sura, error) {
	var suras []storage.Sura
	if err := c.get(ctx, "/suras", nil, nil, &suras); err != nil {
		return nil, err
	}
	return suras, nil
}

func (c *Client) ListSurasByRevelationOrder(ctx context.Context) ([]storage.Sura, error) {
	var suras []storage.Sura
	if err := c.get(ctx, "/suras/revelation-order", nil, nil, &suras); err != nil {
		return nil, err
	}
	return suras, nil
}

func (c *Client) ListSurasByRevelationPlace(ctx context.Context, place string) ([]storage.Sura, error) {
	var suras []storage.Sura
	err := c.get(ctx, "/suras/revelation-place/{place}", map[string]string{"place": place}, nil, &suras)
	if err != nil {
		return nil, err
	}
	return suras, nil
}

func (c *Client) GetSura(ctx context.Context, number int) (*storage.Sura, error) {
	var sura storage.Sura
	err := c.get(ctx, "/suras/{number}", map[string]string{"number": strconv.Itoa(number)}, nil, &sura)
	if err != nil {
		return nil, err
	}
	return &sura, nil
}

func (c *Client) ListVerses(ctx context.Context, page, limit int) (*handlers.VerseListResponse, error) {
	var resp handlers.VerseListResponse
	if err := c.get(ctx, "/verses", nil, pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListVersesBySura(ctx context.Context, sura int) ([]storage.Verse, error) {
	var verses []storage.Verse
	err := c.get(ctx, "/verses/sura/{sura}", map[string]string{"sura": strconv.Itoa(sura)}, nil, &verses)
	if err != nil {
		return nil, err
	}
	return verses, nil
}

func (c *Client) GetVerse(ctx context.Context, sura, aya int) (*storage.Verse, error) {
	var verse storage.Verse
	params := map[string]string{"sura": strconv.Itoa(sura), "aya": strconv.Itoa(aya)}
	if err := c.get(ctx, "/verses/sura/{sura}/aya/{aya}", params, nil, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

// SearchParams are the query parameters of a verse search.
type SearchParams struct {
	Query    string
	Language string
	Page     int
	Limit    int
}

func (c *Client) SearchVerses(ctx context.Context, p SearchParams) (*handlers.VerseSearchResponse, error) {
	query := pageQuery(p.Page, p.Limit)
	query["query"] = p.Query
	if p.Language != "" {
		query["language"] = p.Language
	}

	var resp handlers.VerseSearchResponse
	if err := c.get(ctx, "/verses/search", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListWords(ctx context.Context, page, limit int) (*handlers.WordListResponse, error) {
	var resp handlers.WordListResponse
	if err := c.get(ctx, "/words", nil, pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListWordsByRoot(ctx context.Context, root string, page, limit int) (*handlers.WordRootResponse, error) {
	var resp handlers.WordRootResponse
	err := c.get(ctx, "/words/root/{root}", map[string]string{"root": root}, pageQuery(page, limit), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RootOccurrences(ctx context.Context, root string, page, limit int) (*handlers.OccurrenceResponse, error) {
	var resp handlers.OccurrenceResponse
	err := c.get(ctx, "/words/root/{root}/context", map[string]string{"root": root}, pageQuery(page, limit), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
