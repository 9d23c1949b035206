package morse

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// Encode and Decode never return errors; these cover configuration,
// table loading and the field processor.
var (
	// ErrInvalidOptions indicates a translator option has an unusable value.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrUnknownCharacterSet indicates a character set name or value is not supported.
	ErrUnknownCharacterSet = errors.New("unknown character set")

	// ErrInvalidPattern indicates a pattern is empty or contains marks other than dot and dash.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidEntry indicates a table entry has an unusable character.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrDuplicateSet indicates a table asset defines the same character set twice.
	ErrDuplicateSet = errors.New("duplicate character set")

	// ErrChecksum indicates a table asset does not match its declared checksum.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrTransform indicates a type's own encode or decode override failed.
	ErrTransform = errors.New("transform failed")
)

// ConfigError represents a translator configuration error.
// It wraps a sentinel error with the option and value that caused it.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidOptions, etc.)
	Option string // Option name (dot, dash, space, separator, priority, ...)
	Value  string // Offending value
}

func (e *ConfigError) Error() string {
	if e.Option != "" && e.Value != "" {
		return fmt.Sprintf("%s for option %s (%q)", e.Err.Error(), e.Option, e.Value)
	}
	if e.Option != "" {
		return fmt.Sprintf("%s for option %s", e.Err.Error(), e.Option)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AssetError represents an invalid table asset.
// It wraps a sentinel error with the set and character involved.
type AssetError struct {
	Err   error  // Underlying sentinel error (ErrInvalidEntry, ErrChecksum, etc.)
	Set   string // Set name as written in the asset
	Char  string // Entry character, if the error concerns one entry
	Cause error  // Original error, if any
}

func (e *AssetError) Error() string {
	msg := e.Err.Error()
	if e.Set != "" {
		msg = fmt.Sprintf("%s in set %q", msg, e.Set)
	}
	if e.Char != "" {
		msg = fmt.Sprintf("%s (char %q)", msg, e.Char)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// TransformError represents an error while transforming struct fields.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrTransform)
	Field     string // Field name that failed, empty for override methods
	Operation string // Operation that failed (encode, decode)
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	target := "fields"
	if e.Field != "" {
		target = "field " + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Operation, target, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Operation, target)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for an unusable option value.
func newConfigError(sentinel error, option, value string) error {
	return &ConfigError{
		Err:    sentinel,
		Option: option,
		Value:  value,
	}
}

// newAssetError creates an AssetError for a rejected table asset.
func newAssetError(sentinel error, set, char string, cause error) error {
	return &AssetError{
		Err:   sentinel,
		Set:   set,
		Char:  char,
		Cause: cause,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
