package pkg

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Version is the semantic version of the odatauri module embedded at build
// time. It is printed by the CLI when users pass the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "odatauri"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "OData URL, header and literal parser"
)

// SemVer returns [Version] parsed as a semantic version, or nil if the
// embedded string is not one.
var SemVer = sync.OnceValue(func() *semver.Version {
	v, err := semver.NewVersion(strings.TrimSpace(Version))
	if err != nil {
		return nil
	}

	return v
})

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
