package fakebackend

import (
	"net/http/httptest"
	"testing"
)

// Start serves the backend on a local port until the end of the test.
//
// It returns the api root, which can be used as apiRoot of profiles.
func Start(t testing.TB, b *Backend) string {
	t.Helper()
	server := httptest.NewServer(b.Echo("/api", "off"))
	t.Cleanup(server.Close)
	return server.URL + "/api"
}
