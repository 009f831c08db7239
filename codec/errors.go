package codec

import "fmt"

// SerializationError is returned if a value cannot be represented as
// structured text, e.g. functions, channels or cyclic data.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot encode value as %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ParseError is returned if text is not well-formed. Offset is the byte
// offset at which the error has been detected, or -1 if the parser did not
// tell.
type ParseError struct {
	Format Format
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("malformed %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("malformed %s at offset %d: %v", e.Format, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
