package cst

import (
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// UUID returns the GUID as a [uuid.UUID].
func (g *GUIDValue) UUID() (uuid.UUID, error) {
	return uuid.Parse(Text(g))
}

// Semver returns the protocol version named by the header. "4.01" maps to
// 4.1.0.
func (v *ODataVersion) Semver() *semver.Version {
	var minor uint64
	if v.Minor != nil {
		minor = 1
	}

	return semver.New(4, minor, 0, "", "")
}

// Semver returns the maximum protocol version accepted by the client.
func (v *ODataMaxVersion) Semver() (*semver.Version, error) {
	major, err := strconv.ParseUint(Text(v.Major), 10, 64)
	if err != nil {
		return nil, err
	}

	minor, err := strconv.ParseUint(Text(v.Minor), 10, 64)
	if err != nil {
		return nil, err
	}

	return semver.New(major, minor, 0, "", ""), nil
}
