package router

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// staticListHook is the NVRAM query for the reservation list.
const staticListHook = "nvram_get(dhcp_staticlist)"

// Client is the transport boundary to one router. Implementations perform
// no parsing of the list beyond locating the raw NVRAM string; decoding and
// reconciliation belong to core/staticlist.
type Client interface {
	// Check verifies that the router is reachable and the credentials work.
	Check(ctx context.Context) error
	// GetStaticList fetches the raw dhcp_staticlist value. An empty string
	// with a nil error means the router reports no reservations.
	GetStaticList(ctx context.Context) (string, error)
	// ApplyStaticList writes the raw value back and restarts the DHCP
	// service so the change takes effect.
	ApplyStaticList(ctx context.Context, raw string) error
}

// Factory builds a Client for the given connection settings. The dhcp
// service takes one of these so tests can substitute mocks; credentials
// arrive per request, matching how the router UI plugins supply them.
type Factory func(cfg Config) (Client, error)

type asusClient struct {
	cfg  Config
	rest *resty.Client

	mu    sync.Mutex
	token string
}

// NewClient creates a Client for the stock ASUSWRT web API.
func NewClient(cfg Config) (Client, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("incomplete router credentials for host %q", cfg.Host)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	scheme := "http"
	rc := resty.New().
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("User-Agent", "asusrouter--DUTUtil-")
	if cfg.UseSSL {
		scheme = "https"
		// Stock firmware serves a self-signed certificate.
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	rc.SetBaseURL(fmt.Sprintf("%s://%s", scheme, cfg.Host))

	return &asusClient{cfg: cfg, rest: rc}, nil
}

func (c *asusClient) Check(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.login(ctx)
}

func (c *asusClient) GetStaticList(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, err := c.authorized(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetFormData(map[string]string{"hook": staticListHook}).Post("/appGet.cgi")
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch dhcp_staticlist: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("unexpected appGet response: %w", err)
	}

	raw, found := ExtractStaticList(data)
	if !found {
		return "", fmt.Errorf("dhcp_staticlist not present in appGet response")
	}
	return raw, nil
}

func (c *asusClient) ApplyStaticList(ctx context.Context, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.authorized(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetFormData(map[string]string{
			"action_mode":     "apply",
			"rc_service":      "restart_dhcpd",
			"dhcp_staticlist": raw,
		}).Post("/applyapp.cgi")
	})
	if err != nil {
		return fmt.Errorf("failed to apply dhcp_staticlist: %w", err)
	}
	return nil
}

// authorized runs one API call with a valid session token, logging in
// first if needed and retrying once after a re-login when the token has
// expired. Callers hold c.mu.
func (c *asusClient) authorized(ctx context.Context, do func(*resty.Request) (*resty.Response, error)) ([]byte, error) {
	if c.token == "" {
		if err := c.login(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := do(c.request(ctx))
	if err != nil {
		return nil, err
	}
	if sessionExpired(resp) {
		c.token = ""
		if err := c.login(ctx); err != nil {
			return nil, err
		}
		resp, err = do(c.request(ctx))
		if err != nil {
			return nil, err
		}
	}
	if resp.IsError() {
		return nil, fmt.Errorf("router returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func (c *asusClient) request(ctx context.Context) *resty.Request {
	r := c.rest.R().SetContext(ctx)
	if c.token != "" {
		r.SetCookie(&http.Cookie{Name: "asus_token", Value: c.token})
	}
	return r
}

// login performs the login.cgi handshake and stores the session token.
func (c *asusClient) login(ctx context.Context) error {
	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.Username + ":" + c.cfg.Password))

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(map[string]string{"login_authorization": auth}).
		Post("/login.cgi")
	if err != nil {
		return fmt.Errorf("failed to reach router %s: %w", c.cfg.Host, err)
	}
	if resp.IsError() {
		return fmt.Errorf("login rejected with status %d", resp.StatusCode())
	}

	var payload struct {
		Token string `json:"asus_token"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || payload.Token == "" {
		return fmt.Errorf("login response carried no session token")
	}

	c.token = payload.Token
	return nil
}

// sessionExpired detects the firmware's "please log in again" responses.
func sessionExpired(resp *resty.Response) bool {
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return true
	}
	var payload struct {
		ErrorStatus string `json:"error_status"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.ErrorStatus != "" {
		return true
	}
	return false
}
