package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// Decoder reads YAML documents. Unknown fields are rejected when strict.
type Decoder struct {
	d *yaml.Decoder
}

type DecoderOpt func(*[]yaml.DecodeOption)

// Strict makes the decoder fail on fields that do not exist in the target.
func Strict() DecoderOpt {
	return func(o *[]yaml.DecodeOption) {
		*o = append(*o, yaml.DisallowUnknownField())
	}
}

func NewDecoder(r io.Reader, opts ...DecoderOpt) *Decoder {
	decOpts := []yaml.DecodeOption{yaml.AllowDuplicateMapKey()}
	for _, opt := range opts {
		opt(&decOpts)
	}

	return &Decoder{
		d: yaml.NewDecoder(r, decOpts...),
	}
}

// Decode reads the next document into v. Errors that carry a position are
// returned as [*Error].
func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}

// Unmarshal decodes data into v with a new [Decoder].
func Unmarshal(data []byte, v any, opts ...DecoderOpt) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
