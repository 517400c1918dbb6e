// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a semantic version triple.
type Version struct {
	Major, Minor, Patch int
}

// CurrentVersion is the version stamped into data written by this library
// and the default target when reading.
var CurrentVersion = Version{Major: 2, Minor: 0, Patch: 0}

// MinSupportedVersion is the oldest library version able to read records
// produced by this library.
var MinSupportedVersion = Version{Major: 2, Minor: 0, Patch: 0}

// ParseVersion parses "maj.min.patch", ignoring any "-prerelease" suffix.
func ParseVersion(s string) (Version, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: invalid semver version %q", ErrGeneric, s)
	}
	patch, _, _ := strings.Cut(parts[2], "-")
	var v Version
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("%w: invalid semver version %q", ErrGeneric, s)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("%w: invalid semver version %q", ErrGeneric, s)
	}
	if v.Patch, err = strconv.Atoi(patch); err != nil {
		return Version{}, fmt.Errorf("%w: invalid semver version %q", ErrGeneric, s)
	}

	return v, nil
}

// String renders "maj.min.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Triple returns the version as [maj, min, patch].
func (v Version) Triple() [3]int { return [3]int{v.Major, v.Minor, v.Patch} }

// SerialisationMeta is the version stamp carried by every serialised record.
type SerialisationMeta struct {
	TypeName   string `json:"type_name" yaml:"type_name"`
	MinVersion [3]int `json:"min_version" yaml:"min_version,flow"`
	Version    string `json:"version" yaml:"version"`
}

// TargetMeta describes the type and library version a record is read into.
type TargetMeta struct {
	TypeName string
	Version  Version
}

// CheckCanBeDeserialised validates source data against the reading target.
// Type names must match; the data's minimum major version must equal the
// library's; within major version 0 minors must be equal, otherwise the
// data's minimum minor version must not exceed the library's.
func CheckCanBeDeserialised(target TargetMeta, source SerialisationMeta) error {
	if target.TypeName != source.TypeName {
		return fmt.Errorf("%w: data is %q, target is %q", ErrTypeMismatch, source.TypeName, target.TypeName)
	}
	dataMajor, dataMinor := source.MinVersion[0], source.MinVersion[1]
	mismatch := &VersionError{
		TypeName:     source.TypeName,
		LibraryMajor: target.Version.Major,
		LibraryMinor: target.Version.Minor,
		DataMajor:    dataMajor,
		DataMinor:    dataMinor,
	}
	if target.Version.Major != dataMajor {
		return mismatch
	}
	if dataMajor == 0 && target.Version.Minor != dataMinor {
		return mismatch
	}
	if target.Version.Minor < dataMinor {
		return mismatch
	}

	return nil
}
