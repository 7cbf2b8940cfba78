package store

import (
	"path/filepath"
	"testing"
)

func TestNewStore(t *testing.T) {
	cases := []struct {
		name    string
		kind    string
		path    string
		wantErr bool
	}{
		{"memory", "memory", "", false},
		{"mem alias", "mem", "", false},
		{"file with path", "file", filepath.Join(t.TempDir(), "state.json"), false},
		{"file without path", "file", "", true},
		{"unknown kind", "redis", "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStore(tc.kind, tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for kind %q", tc.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s == nil {
				t.Fatal("expected a store")
			}
		})
	}
}
