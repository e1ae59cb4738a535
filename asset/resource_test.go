package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local resource not to be remote")
	}
	if res.Name() != "resource_test.go" {
		t.Fatalf("expected resource name to be resource_test.go; got %s", res.Name())
	}
}

func TestMissingLocalResource(t *testing.T) {
	_, err := NewResource(filepath.Join(t.TempDir(), "missing.scene"), nil)
	if err == nil || !strings.HasPrefix(err.Error(), "resource: could not open") {
		t.Fatalf("expected to get a 'could not open' error; got %v", err)
	}
}

func TestRelativeLocalResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "inc"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.scene"), []byte("call inc/lights.scene"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "inc", "lights.scene"), []byte("light 0 0 0 1 1 1"), 0644); err != nil {
		t.Fatal(err)
	}

	parent, err := NewResource(filepath.Join(dir, "main.scene"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	child, err := NewResource("inc/lights.scene", parent)
	if err != nil {
		t.Fatal(err)
	}
	defer child.Close()

	data, err := io.ReadAll(child)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "light 0 0 0 1 1 1" {
		t.Fatalf("unexpected resource contents %q", string(data))
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatal("expected http resource to be remote")
	}
	if res.Path() != fetchUrl {
		t.Fatalf("expected resource path to be %s; got %s", fetchUrl, res.Path())
	}

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		switch r.URL.Path {
		case "/foo/file1.scene", "/foo/file2.scene":
			w.Write([]byte("OK"))
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := NewResource(server.URL+"/foo/file1.scene", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := NewResource("file2.scene", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}
	if exp := server.URL + "/foo/file2.scene"; res2.Path() != exp {
		t.Fatalf("expected relative resource path to be %s; got %s", exp, res2.Path())
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.scene", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	_, err := NewResource("http://localhost:12345/foo.scene", nil)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected to get 'connection refused error'; got %v", err)
	}
}

func TestResourceFromStream(t *testing.T) {
	res := NewResourceFromStream("embedded.scene", strings.NewReader("sphere"))
	defer res.Close()

	if res.Path() != "embedded.scene" || res.IsRemote() {
		t.Fatalf("unexpected stream resource path %s", res.Path())
	}
	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "sphere" {
		t.Fatalf("expected stream contents to be 'sphere'; got %q", string(data))
	}
}
