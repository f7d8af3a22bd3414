package keypair

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sonic182/hyperstack-api/internal/config"
	"github.com/sonic182/hyperstack-api/internal/session"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"
)

const testPublicKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIJx test@host"

func startServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session.SetFactory(func(apiKey string) (*hyperstack.Client, error) {
		return hyperstack.New("test-key", hyperstack.WithBaseURL(server.URL))
	})
	t.Cleanup(session.Reset)

	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	return server
}

func execKeypair(t *testing.T, args ...string) error {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCreate_SendsKeyMaterial(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true}`))
	})

	err := execKeypair(t, "create",
		"--name", "deploy",
		"--environment-name", "dev",
		"--public-key", testPublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/core/keypairs" {
		t.Errorf("path = %s, want /core/keypairs", gotPath)
	}
	if gotBody["name"] != "deploy" || gotBody["environment_name"] != "dev" || gotBody["public_key"] != testPublicKey {
		t.Errorf("unexpected body: %v", gotBody)
	}
}

func TestCreate_ReadsKeyFromFile(t *testing.T) {
	var gotBody map[string]any
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true}`))
	})

	keyFile := filepath.Join(t.TempDir(), "id_ed25519.pub")
	if err := os.WriteFile(keyFile, []byte(testPublicKey+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write key file: %v", err)
	}

	err := execKeypair(t, "create",
		"--name", "deploy",
		"--environment-name", "dev",
		"--public-key-file", keyFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody["public_key"] != testPublicKey {
		t.Errorf("public_key = %v, want file contents", gotBody["public_key"])
	}
}

func TestCreate_RejectsUnsupportedKeyType(t *testing.T) {
	requested := false
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	err := execKeypair(t, "create",
		"--name", "deploy",
		"--environment-name", "dev",
		"--public-key", "ssh-dss AAAA legacy@host")
	if err == nil {
		t.Fatal("expected error for unsupported key type")
	}
	if !hyperstack.IsInvalidArgument(err) {
		t.Errorf("expected invalid argument error, got: %v", err)
	}
	if requested {
		t.Error("no request should be issued for invalid input")
	}
}

func TestCreate_RequiresKeySource(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {})

	err := execKeypair(t, "create", "--name", "deploy", "--environment-name", "dev")
	if err == nil {
		t.Fatal("expected error when no key source given")
	}
}
