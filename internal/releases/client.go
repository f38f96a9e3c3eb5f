package releases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/justtnz/devdock-site/internal/metrics"
)

const (
	DefaultAPIURL  = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20

	endpointList   = "list"
	endpointLatest = "latest"
)

// Options configures a Client. Zero values select sane defaults, except
// Repo which is required ("owner/name").
type Options struct {
	APIURL            string
	Repo              string
	Token             string
	UserAgent         string
	Timeout           time.Duration
	CacheTTL          time.Duration // 0 disables caching
	RequestsPerMinute int           // <= 0 means unlimited
	Metrics           *metrics.Metrics
}

type cacheEntry struct {
	list    []Release
	latest  *Release
	err     error
	expires time.Time
}

// Client fetches releases for one repository. It is safe for concurrent
// use; concurrent misses for the same endpoint share a single request.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	ttl       time.Duration
	metrics   *metrics.Metrics

	do      func(*http.Request) (*http.Response, error)
	now     func() time.Time
	limiter *rate.Limiter
	group   singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewClient returns a client for opts.Repo.
func NewClient(opts Options) (*Client, error) {
	repo := strings.Trim(strings.TrimSpace(opts.Repo), "/")
	if owner, name, ok := strings.Cut(repo, "/"); !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("releases: repo %q must be owner/name", opts.Repo)
	}
	api := strings.TrimRight(strings.TrimSpace(opts.APIURL), "/")
	if api == "" {
		api = DefaultAPIURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "devdock-site"
	}
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}
	hc := &http.Client{Timeout: timeout}
	return &Client{
		baseURL:   api + "/repos/" + repo,
		token:     opts.Token,
		userAgent: ua,
		ttl:       opts.CacheTTL,
		metrics:   opts.Metrics,
		do:        hc.Do,
		now:       time.Now,
		limiter:   rate.NewLimiter(limit, 1),
		cache:     make(map[string]cacheEntry),
	}, nil
}

// List returns published releases, newest first. A repository without
// releases yields an empty slice and no error.
func (c *Client) List(ctx context.Context) ([]Release, error) {
	e, err := c.cached(ctx, endpointList, func(ctx context.Context) (cacheEntry, error) {
		var list []Release
		if err := c.get(ctx, endpointList, "/releases", &list); err != nil {
			return cacheEntry{}, err
		}
		if list == nil {
			list = []Release{}
		}
		return cacheEntry{list: list}, nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]Release, len(e.list))
	copy(out, e.list)
	return out, nil
}

// Latest returns the newest non-draft, non-prerelease release, or
// ErrNoReleases when there is none.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	e, err := c.cached(ctx, endpointLatest, func(ctx context.Context) (cacheEntry, error) {
		var r Release
		err := c.get(ctx, endpointLatest, "/releases/latest", &r)
		if errors.Is(err, ErrNoReleases) {
			// absence is cached like a hit so a bare repo is not re-polled
			return cacheEntry{err: err}, nil
		}
		if err != nil {
			return cacheEntry{}, err
		}
		return cacheEntry{latest: &r}, nil
	})
	if err != nil {
		return nil, err
	}
	if e.err != nil {
		return nil, e.err
	}
	r := *e.latest
	return &r, nil
}

// Invalidate drops every cached answer.
func (c *Client) Invalidate() {
	c.mu.Lock()
	clear(c.cache)
	c.mu.Unlock()
}

func (c *Client) cached(ctx context.Context, key string, fetch func(context.Context) (cacheEntry, error)) (cacheEntry, error) {
	if e, ok := c.lookup(key); ok {
		c.metrics.ReleaseCacheHit(key)
		return e, nil
	}
	if err := ctx.Err(); err != nil {
		return cacheEntry{}, err
	}
	// The shared fetch outlives any one caller; each caller waits on its own
	// context. The http.Client timeout still bounds the request.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if e, ok := c.lookup(key); ok {
			return e, nil
		}
		e, err := fetch(fetchCtx)
		if err != nil {
			return cacheEntry{}, err
		}
		if c.ttl > 0 {
			e.expires = c.now().Add(c.ttl)
			c.mu.Lock()
			c.cache[key] = e
			c.mu.Unlock()
		}
		return e, nil
	})
	select {
	case <-ctx.Done():
		return cacheEntry{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return cacheEntry{}, res.Err
		}
		return res.Val.(cacheEntry), nil
	}
}

func (c *Client) lookup(key string) (cacheEntry, bool) {
	if c.ttl <= 0 {
		return cacheEntry{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.cache[key]
	if !ok || !c.now().Before(e.expires) {
		return cacheEntry{}, false
	}
	return e, true
}

func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	start := c.now()
	result := "ok"
	defer func() {
		c.metrics.ReleaseFetch(endpoint, result, c.now().Sub(start))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		result = "error"
		return fmt.Errorf("releases: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		result = "error"
		return fmt.Errorf("releases: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.do(req)
	if err != nil {
		result = "error"
		return fmt.Errorf("releases: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		result = "error"
		return fmt.Errorf("releases: reading %s: %w", path, err)
	}
	if resp.StatusCode == http.StatusNotFound && endpoint == endpointLatest {
		result = "not_found"
		return ErrNoReleases
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result = "error"
		return fmt.Errorf("%w: GET %s returned %d: %s", ErrUpstream, path, resp.StatusCode, upstreamMessage(raw))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		result = "error"
		return fmt.Errorf("releases: decoding %s: %w", path, err)
	}
	return nil
}

// upstreamMessage extracts GitHub's {"message": ...} or falls back to the
// trimmed body.
func upstreamMessage(raw []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &m) == nil && m.Message != "" {
		return m.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
