package pkg

import (
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "odatauri"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Expected Description to be non-empty")
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := string(buf); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}

	v := SemVer()
	if v == nil {
		t.Fatalf("Expected VERSION %q to be a semantic version", strings.TrimSpace(Version))
	}

	if v.String() != strings.TrimSpace(Version) {
		t.Errorf("Expected SemVer %q, got %q", strings.TrimSpace(Version), v.String())
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew" && a.Email == "andrew@ardnew.com"
	}) {
		t.Errorf("Expected Author to contain ardnew, got %v", Author)
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
