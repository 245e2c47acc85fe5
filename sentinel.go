package absence

import (
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/absence/internal/falsity"
)

// RenderFunc produces a textual form for a sentinel. It is invoked at render
// time, not captured at construction, so output may observe state the
// closure references.
type RenderFunc func(*Sentinel) string

// Option configures a Sentinel during construction via New.
type Option func(*Sentinel)

// WithString sets the short textual form returned by String.
func WithString(fn RenderFunc) Option {
	return func(s *Sentinel) {
		s.strFn = fn
	}
}

// WithGoString sets the detailed textual form returned by GoString.
func WithGoString(fn RenderFunc) Option {
	return func(s *Sentinel) {
		s.goStrFn = fn
	}
}

// Sentinel is a falsey, identity-unique marker value. Identity is the only
// meaningful equality relation: no two Sentinels produced by New are ever the
// same, even when constructed with identical render functions.
//
// A Sentinel has non-zero size, so every allocation has a distinct address.
type Sentinel struct {
	falsity.False

	strFn   RenderFunc
	goStrFn RenderFunc
}

// Interface conformance for the rendering and rejection surfaces.
var (
	_ fmt.Stringer               = (*Sentinel)(nil)
	_ fmt.GoStringer             = (*Sentinel)(nil)
	_ falsity.Booler             = (*Sentinel)(nil)
	_ json.Marshaler             = (*Sentinel)(nil)
	_ json.Unmarshaler           = (*Sentinel)(nil)
	_ encoding.TextMarshaler     = (*Sentinel)(nil)
	_ encoding.TextUnmarshaler   = (*Sentinel)(nil)
	_ encoding.BinaryMarshaler   = (*Sentinel)(nil)
	_ encoding.BinaryUnmarshaler = (*Sentinel)(nil)
	_ yaml.Marshaler             = (*Sentinel)(nil)
	_ yaml.Unmarshaler           = (*Sentinel)(nil)
)

// New mints a fresh sentinel, independent of Absent and of every previously
// minted sentinel. Calls are never deduplicated.
func New(opts ...Option) *Sentinel {
	s := &Sentinel{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// String returns the short textual form: the WithString function if one was
// supplied, otherwise "absence".
func (s *Sentinel) String() string {
	if s.strFn != nil {
		return s.strFn(s)
	}
	return "absence"
}

// GoString returns the detailed textual form: the WithGoString function if
// one was supplied, otherwise "absence.New()".
func (s *Sentinel) GoString() string {
	if s.goStrFn != nil {
		return s.goStrFn(s)
	}
	return "absence.New()"
}

// MarshalJSON always fails. See OperationError.
func (s *Sentinel) MarshalJSON() ([]byte, error) {
	return nil, errInvalidOp("json.Marshal")
}

// UnmarshalJSON always fails. See OperationError.
func (s *Sentinel) UnmarshalJSON([]byte) error {
	return errInvalidOp("json.Unmarshal")
}

// MarshalText always fails. See OperationError.
func (s *Sentinel) MarshalText() ([]byte, error) {
	return nil, errInvalidOp("text.Marshal")
}

// UnmarshalText always fails. See OperationError.
func (s *Sentinel) UnmarshalText([]byte) error {
	return errInvalidOp("text.Unmarshal")
}

// MarshalBinary always fails. See OperationError.
func (s *Sentinel) MarshalBinary() ([]byte, error) {
	return nil, errInvalidOp("binary.Marshal")
}

// UnmarshalBinary always fails. See OperationError.
func (s *Sentinel) UnmarshalBinary([]byte) error {
	return errInvalidOp("binary.Unmarshal")
}

// GobEncode always fails. See OperationError.
func (s *Sentinel) GobEncode() ([]byte, error) {
	return nil, errInvalidOp("gob.Encode")
}

// GobDecode always fails. See OperationError.
func (s *Sentinel) GobDecode([]byte) error {
	return errInvalidOp("gob.Decode")
}

// MarshalYAML always fails. See OperationError.
func (s *Sentinel) MarshalYAML() (any, error) {
	return nil, errInvalidOp("yaml.Marshal")
}

// UnmarshalYAML always fails. See OperationError.
func (s *Sentinel) UnmarshalYAML(*yaml.Node) error {
	return errInvalidOp("yaml.Unmarshal")
}

// Truth reports the truth value of an arbitrary value: Bool methods first,
// then nil, false, zero numbers, and empty strings and containers are false;
// everything else is true. Sentinels are always false. Truth never panics.
func Truth(v any) bool {
	return falsity.Truth(v)
}
