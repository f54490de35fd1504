package fetcher

import (
	"errors"
	"fmt"
)

var errInvalidJSON = errors.New("body is not valid JSON")

// IsFetchError reports whether err is (or wraps) a transient FetchError.
// Only these errors are retried; decode failures surface immediately.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// FetchError is a transient remote failure: a transport error, a timeout, or
// a non-200 response. It is retried up to the configured attempt cap before
// surfacing.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError is a permanent failure: the response body is not the JSON the
// caller expected. It is never retried.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
