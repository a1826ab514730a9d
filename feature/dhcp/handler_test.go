package dhcp_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"router-manager/core/router"
	"router-manager/core/router/mocks"
	"router-manager/core/staticlist"
	"router-manager/feature/dhcp"
	"router-manager/feature/dhcp/models"
)

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()

	factory := func(cfg router.Config) (router.Client, error) {
		return client, nil
	}
	feature := dhcp.NewFeature(factory, router.Config{Host: "192.168.50.1"}, zap.NewNop(), nil, nil)

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestHandler_List(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetStaticList", mock.Anything).Return("AA:BB:CC:DD:EE:FF:192.168.50.10:nas", nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservations", `{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ListResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", body.Reservations[0].MAC)
	assert.Equal(t, staticlist.GrammarColon, body.Grammar)
	assert.Empty(t, body.Warning)
}

func TestHandler_List_UnreadableListCarriesWarning(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetStaticList", mock.Anything).Return("legacy#blob#payload", nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservations", `{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ListResponse
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Reservations)
	assert.NotEmpty(t, body.Warning)
}

func TestHandler_Test(t *testing.T) {
	client := &mocks.Client{}
	client.On("Check", mock.Anything).Return(nil)
	client.On("GetStaticList", mock.Anything).Return("", nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/test",
		`{"host":"10.0.0.1","username":"admin","password":"pw"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandler_Add(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetStaticList", mock.Anything).Return("", nil)
	client.On("ApplyStaticList", mock.Anything, "11:22:33:44:55:66:192.168.50.20:cam").Return(nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservation",
		`{"mac":"11-22-33-44-55-66","ip":"192.168.50.20","name":"cam"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.AddResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.True(t, body.Changed)
	assert.Equal(t, "11:22:33:44:55:66", body.Mac)
	client.AssertExpectations(t)
}

func TestHandler_Add_MissingFields(t *testing.T) {
	app := newTestApp(t, &mocks.Client{})
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservation", `{"mac":"11:22:33:44:55:66"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Add_InvalidPayload(t *testing.T) {
	app := newTestApp(t, &mocks.Client{})
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservation", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Restore_DryRun(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetStaticList", mock.Anything).Return("AA:BB:CC:DD:EE:FF:192.168.50.10:nas", nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservations/restore",
		`{"dryRun":true,"reservations":[{"mac":"11:22:33:44:55:66","ip":"192.168.50.20","name":"cam"}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report models.RestoreReport
	decodeBody(t, resp, &report)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 2, report.Total)
	client.AssertNotCalled(t, "ApplyStaticList", mock.Anything, mock.Anything)
}

func TestHandler_Restore_UnreadableListConflicts(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetStaticList", mock.Anything).Return("legacy#blob#payload", nil)

	app := newTestApp(t, client)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/dhcp-reservations/restore",
		`{"reservations":[{"mac":"11:22:33:44:55:66","ip":"192.168.50.20"}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_History_DisabledWithoutDatabase(t *testing.T) {
	app := newTestApp(t, &mocks.Client{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dhcp-reservations/history", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
