// SPDX-License-Identifier: MIT

package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format selects the structured encoding of a Codec.
type Format int

const (
	// FormatJSON encodes records as JSON.
	FormatJSON Format = iota
	// FormatYAML encodes records as YAML.
	FormatYAML
)

// DefaultFormat is the encoding of codecs built without WithFormat.
const DefaultFormat = FormatJSON

const panicFormatInvalid = "core: WithFormat: unknown format"

// String names the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps "json"/"yaml"/"yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%w: unknown format %q", ErrGeneric, s)
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithFormat selects JSON or YAML. Panics on an unknown format.
func WithFormat(f Format) CodecOption {
	if f != FormatJSON && f != FormatYAML {
		panic(panicFormatInvalid)
	}

	return func(c *Codec) { c.format = f }
}

// WithLibraryVersion sets the version stamped on write and checked on read.
func WithLibraryVersion(v Version) CodecOption {
	return func(c *Codec) { c.library = v }
}

// WithLogger attaches a logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) CodecOption {
	return func(c *Codec) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// Codec encodes and decodes versioned records. The library version is an
// explicit field so readers can be tested against any target version.
type Codec struct {
	format  Format
	library Version
	logger  *zap.Logger
}

// NewCodec builds a codec; defaults are JSON, CurrentVersion and a no-op logger.
func NewCodec(opts ...CodecOption) Codec {
	c := Codec{format: DefaultFormat, library: CurrentVersion, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Format returns the codec's encoding.
func (c Codec) Format() Format { return c.format }

// Library returns the version the codec reads and writes as.
func (c Codec) Library() Version { return c.library }

// Meta builds the stamp written with a record of the given type.
func (c Codec) Meta(typeName string) SerialisationMeta {
	return SerialisationMeta{
		TypeName:   typeName,
		MinVersion: MinSupportedVersion.Triple(),
		Version:    c.library.String(),
	}
}

// Encode marshals a record in the codec's format.
func (c Codec) Encode(record any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch c.format {
	case FormatYAML:
		data, err = yaml.Marshal(record)
	default:
		data, err = json.Marshal(record)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrGeneric, c.format, err)
	}
	c.logger.Debug("encoded record", zap.Stringer("format", c.format), zap.Int("bytes", len(data)))

	return data, nil
}

type metaOnly struct {
	Meta *SerialisationMeta `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// Decode reads only the serialisation stamp of data first, checks it against
// typeName and the codec's library version, and then decodes the full record.
func (c Codec) Decode(data []byte, typeName string, record any) error {
	var head metaOnly
	if err := c.unmarshal(data, &head); err != nil {
		return err
	}
	if head.Meta == nil {
		return fmt.Errorf("%w: %s record has no serialisation_meta", ErrGeneric, typeName)
	}
	target := TargetMeta{TypeName: typeName, Version: c.library}
	if err := CheckCanBeDeserialised(target, *head.Meta); err != nil {
		c.logger.Debug("rejected record", zap.String("type", typeName), zap.String("data_version", head.Meta.Version), zap.Error(err))
		return err
	}
	if err := c.unmarshal(data, record); err != nil {
		return err
	}
	c.logger.Debug("decoded record", zap.String("type", typeName), zap.String("data_version", head.Meta.Version))

	return nil
}

// TypeOf returns the type name stamped on data without decoding the terms.
func (c Codec) TypeOf(data []byte) (string, error) {
	var head metaOnly
	if err := c.unmarshal(data, &head); err != nil {
		return "", err
	}
	if head.Meta == nil {
		return "", fmt.Errorf("%w: record has no serialisation_meta", ErrGeneric)
	}

	return head.Meta.TypeName, nil
}

func (c Codec) unmarshal(data []byte, v any) error {
	var err error
	switch c.format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(v)
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrGeneric, c.format, err)
	}

	return nil
}
