package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"router-manager/core/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRouter emulates the ASUSWRT web API endpoints the client touches.
type fakeRouter struct {
	staticlist string
	applied    []string
	logins     int
}

func (f *fakeRouter) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/login.cgi", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		f.logins++
		if r.FormValue("login_authorization") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"asus_token": "tok-123"})
	})

	mux.HandleFunc("/appGet.cgi", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = r.ParseForm()
		if !strings.Contains(r.FormValue("hook"), "dhcp_staticlist") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"dhcp_staticlist": f.staticlist})
	})

	mux.HandleFunc("/applyapp.cgi", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = r.ParseForm()
		if r.FormValue("action_mode") != "apply" || r.FormValue("rc_service") != "restart_dhcpd" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.applied = append(f.applied, r.FormValue("dhcp_staticlist"))
		_ = json.NewEncoder(w).Encode(map[string]int{"statusCode": 200})
	})

	return mux
}

func (f *fakeRouter) authed(r *http.Request) bool {
	c, err := r.Cookie("asus_token")
	return err == nil && c.Value == "tok-123"
}

func newTestClient(t *testing.T, f *fakeRouter) router.Client {
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	c, err := router.NewClient(router.Config{
		Host:     strings.TrimPrefix(srv.URL, "http://"),
		Username: "admin",
		Password: "secret",
		UseSSL:   false,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := router.NewClient(router.Config{Host: "192.168.1.1"})
	assert.Error(t, err)
}

func TestClient_Check(t *testing.T) {
	f := &fakeRouter{}
	c := newTestClient(t, f)

	require.NoError(t, c.Check(context.Background()))
	assert.Equal(t, 1, f.logins)
}

func TestClient_GetStaticList(t *testing.T) {
	f := &fakeRouter{staticlist: "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01"}
	c := newTestClient(t, f)

	raw, err := c.GetStaticList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01", raw)
}

func TestClient_ApplyStaticList(t *testing.T) {
	f := &fakeRouter{}
	c := newTestClient(t, f)

	err := c.ApplyStaticList(context.Background(), "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01")
	require.NoError(t, err)
	require.Len(t, f.applied, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF:192.168.1.5:dns01", f.applied[0])
}

func TestClient_ReusesSessionAcrossCalls(t *testing.T) {
	f := &fakeRouter{staticlist: "x:10.0.0.1:a"}
	c := newTestClient(t, f)

	_, err := c.GetStaticList(context.Background())
	require.NoError(t, err)
	_, err = c.GetStaticList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.logins)
}
