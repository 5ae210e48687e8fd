package fetch

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedTransform is returned when a manifest names a decompression
// transform this tool does not know.
var ErrUnsupportedTransform = errors.New("unsupported transform")

// Transform is the closed set of decompression steps that can be applied to
// downloaded bytes before they are written to disk.
type Transform int

const (
	// TransformIdentity passes the downloaded bytes through unchanged.
	TransformIdentity Transform = iota
	// TransformGzip gunzips the downloaded bytes.
	TransformGzip
)

// ParseTransform maps a manifest etl value to a Transform.
func ParseTransform(name string) (Transform, error) {
	switch name {
	case "":
		return TransformIdentity, nil
	case "gzip":
		return TransformGzip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTransform, name)
	}
}

// Apply runs the transform over the raw downloaded bytes.
func (t Transform) Apply(raw []byte) ([]byte, error) {
	switch t {
	case TransformIdentity:
		return raw, nil
	case TransformGzip:
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		decompressed, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip stream: %w", err)
		}
		if err := gz.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish gzip stream: %w", err)
		}
		return decompressed, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTransform, t)
	}
}

func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformGzip:
		return "gzip"
	default:
		return fmt.Sprintf("transform(%d)", t)
	}
}
