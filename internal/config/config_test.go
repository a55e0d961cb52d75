package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)

	want := Config{
		Email:       "me@example.com",
		APIKey:      "secret",
		WorkspaceID: 1234567,
		Tracking: []TrackedProject{
			{Project: "PRO123", HoursAvailable: 70, DueDate: "11/06/26"},
		},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSave_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := Save(path, Config{APIKey: "secret"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file holds the API key and must be 0600, got %o", perm)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	content := "email = \"me@example.com\"\nwebsite = \"https://example.com\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a setting outside the schema")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "complete", cfg: Config{Email: "a@b.c", APIKey: "k", WorkspaceID: 1}},
		{name: "missing email", cfg: Config{APIKey: "k", WorkspaceID: 1}, wantErr: true},
		{name: "missing api key", cfg: Config{Email: "a@b.c", WorkspaceID: 1}, wantErr: true},
		{name: "missing workspace", cfg: Config{Email: "a@b.c", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
