package format

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		flagValue     string
		configDefault string
		want          string
		wantErr       bool
	}{
		{"flag wins over config", "json", "pretty", "json", false},
		{"config used when flag empty", "", "json", "json", false},
		{"default when both empty", "", "", Pretty, false},
		{"invalid config falls back", "", "yaml", Pretty, false},
		{"invalid flag errors", "yaml", "", "", true},
		{"flag whitespace trimmed", "  pretty  ", "", "pretty", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.flagValue, tt.configDefault)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintCompact(t *testing.T) {
	var buf strings.Builder
	if err := Print(&buf, map[string]any{"name": "dev"}, JSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{\"name\":\"dev\"}\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintIndented(t *testing.T) {
	var buf strings.Builder
	if err := Print(&buf, map[string]any{"name": "dev"}, Pretty); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{\n  \"name\": \"dev\"\n}\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
