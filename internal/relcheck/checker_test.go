package relcheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/ysato/dokkai/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"tag_name": %q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker("ysato", "dokkai", WithBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	res, err := c.Check(context.Background(), "v1.1.3")
	if err != nil {
		t.Fatal(err)
	}
	if !res.UpdateAvailable {
		t.Error("v1.2.0 should be newer than v1.1.3")
	}
	if res.LatestVersion != "v1.2.0" {
		t.Errorf("LatestVersion = %q", res.LatestVersion)
	}
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	for _, v := range []string{"v1.2.0", "v1.3.0", "1.2.0"} {
		res, err := c.Check(context.Background(), v)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if res.UpdateAvailable {
			t.Errorf("%s should not need an update to v1.2.0", v)
		}
	}
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	for _, v := range []string{"", "(devel)"} {
		_, err := c.Check(context.Background(), v)
		if !errors.Is(err, ErrDevBuild) {
			t.Errorf("%q: got %v, want ErrDevBuild", v, err)
		}
	}
}

func TestCheckBadVersions(t *testing.T) {
	c := newTestChecker(t, "not-a-tag", http.StatusOK)

	if _, err := c.Check(context.Background(), "abc"); err == nil {
		t.Error("non-semver current version should fail")
	}
	if _, err := c.Check(context.Background(), "v1.0.0"); err == nil {
		t.Error("non-semver release tag should fail")
	}
}

func TestCheckServerError(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusInternalServerError)

	if _, err := c.Check(context.Background(), "v1.0.0"); err == nil {
		t.Error("server error should fail the check")
	}
}
