package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_GeneratedManifests(t *testing.T) {
	manifests := map[string]*Composer{
		"module":    NewModule("acme/widget", "Widgets", "MIT", "1.0.0", `Acme\Widget`, "src/", Author{}),
		"component": NewComponent("acme/lib", "", "MIT", "v2.0.0", `Acme\Lib`, "source/", Author{Name: "Jo", Email: "jo@example.com"}),
	}

	for name, c := range manifests {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(c)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			result, err := Validate(data)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %s", strings.Join(result.Messages(), "; "))
			}
		})
	}
}

func TestValidate_InvalidManifests(t *testing.T) {
	tests := []struct {
		desc    string
		doc     string
		keyword string
	}{
		{
			"missing name",
			`{"description":"","type":"oxideshop-module","license":"MIT","version":"1","autoload":{"psr-4":{"A\\":"src/"}},"require":{}}`,
			"required",
		},
		{
			"placeholder vendor",
			`{"name":"<vendor>/<name>","description":"","type":"oxideshop-module","license":"MIT","version":"1","autoload":{"psr-4":{"A\\":"src/"}},"require":{}}`,
			"pattern",
		},
		{
			"unknown type",
			`{"name":"a/b","description":"","type":"library","license":"MIT","version":"1","autoload":{"psr-4":{"A\\":"src/"}},"require":{}}`,
			"enum",
		},
		{
			"empty psr-4",
			`{"name":"a/b","description":"","type":"oxideshop-module","license":"MIT","version":"1","autoload":{"psr-4":{}},"require":{}}`,
			"minProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s", tt.desc)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %q issue, got %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.json")
	data, err := Marshal(NewModule("acme/widget", "", "MIT", "1.0.0", `Acme\Widget`, "src/", Author{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Messages())
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
