package hyperstack

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreateKeypair(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody = decodeRequestBody(t, r)
		w.Write([]byte(`{"status":true}`))
	})

	_, err := client.CreateKeypair(context.Background(), KeypairSpec{
		Name:            "deploy-key",
		EnvironmentName: "staging",
		PublicKey:       "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5 user@host",
	})
	if err != nil {
		t.Fatalf("CreateKeypair failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/core/keypairs" {
		t.Errorf("path = %q, want /core/keypairs", gotPath)
	}

	want := map[string]any{
		"name":             "deploy-key",
		"environment_name": "staging",
		"public_key":       "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5 user@host",
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateKeypair_ValidationFailures(t *testing.T) {
	valid := KeypairSpec{
		Name:            "deploy-key",
		EnvironmentName: "staging",
		PublicKey:       "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5 user@host",
	}

	tests := []struct {
		name      string
		mutate    func(spec *KeypairSpec)
		wantField string
	}{
		{"empty name", func(s *KeypairSpec) { s.Name = " " }, "name"},
		{"empty environment", func(s *KeypairSpec) { s.EnvironmentName = "" }, "environment_name"},
		{"empty key", func(s *KeypairSpec) { s.PublicKey = "" }, "public_key"},
		{"bad key prefix", func(s *KeypairSpec) { s.PublicKey = "not-a-key" }, "public_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request should be issued when validation fails")
			})

			spec := valid
			tt.mutate(&spec)

			_, err := client.CreateKeypair(context.Background(), spec)
			assertInvalidArg(t, err, tt.wantField)
		})
	}
}
