package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/abhisek/eduquest/releases/latest", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		body      string
		wantNewer bool
	}{
		{"newer release", "v0.3.1", `{"tag_name":"v0.4.0"}`, true},
		{"same release", "v0.4.0", `{"tag_name":"v0.4.0"}`, false},
		{"older release", "v1.0.0", `{"tag_name":"v0.9.9"}`, false},
		{"current without v prefix", "0.3.0", `{"tag_name":"v0.3.1"}`, true},
		{"prerelease ignored", "v0.3.0", `{"tag_name":"v0.4.0-rc.1","prerelease":true}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, http.StatusOK, tt.body)
			c := NewChecker(WithAPIBaseURL(srv.URL))

			res, err := c.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.wantNewer, res.UpdateAvailable)
		})
	}
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker(WithAPIBaseURL("http://127.0.0.1:0"))
	for _, v := range []string{"(devel)", "", "dev"} {
		_, err := c.Check(context.Background(), &CheckInput{Version: v})
		assert.ErrorIs(t, err, ErrDevBuild, v)
	}
}

func TestCheckHTTPError(t *testing.T) {
	srv := releaseServer(t, http.StatusNotFound, `{"message":"Not Found"}`)
	_, err := NewChecker(WithAPIBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: "v0.1.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCheckBadTag(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name":"nightly"}`)
	_, err := NewChecker(WithAPIBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: "v0.1.0"})
	assert.ErrorContains(t, err, "not a semantic version")
}

func TestWithRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/someone/fork/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
	}))
	defer srv.Close()

	res, err := NewChecker(WithAPIBaseURL(srv.URL+"/"), WithRepository("someone", "fork")).
		Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", res.LatestVersion)
	assert.True(t, res.UpdateAvailable)
}
