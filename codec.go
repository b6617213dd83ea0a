package webmate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-openapi/strfmt"
)

// Validatable is implemented by response types that have required fields.
// Validate is called after decoding; an error marks the response malformed.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// DecodeJSON decodes a response body into a T. Unknown fields are ignored.
// If T (or *T) implements [Validatable] the decoded value is validated too.
// All failures are reported as [ErrMalformedResponse].
func DecodeJSON[T any](body []byte) (T, error) {
	var out, zero T

	if len(bytes.TrimSpace(body)) == 0 {
		return zero, &Error{Kind: ErrMalformedResponse, Message: "empty response body"}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return zero, &Error{Kind: ErrMalformedResponse, Err: err}
	}

	if err := validate(&out); err != nil {
		return zero, &Error{Kind: ErrMalformedResponse, Err: err}
	}

	return out, nil
}

// DecodeJSONList decodes a JSON array into a []T, validating every element.
func DecodeJSONList[T any](body []byte) ([]T, error) {
	list, err := DecodeJSON[[]T](body)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if err := validate(&list[i]); err != nil {
			return nil, &Error{Kind: ErrMalformedResponse, Message: fmt.Sprintf("element %d: %v", i, err), Err: err}
		}
	}

	if list == nil {
		list = []T{}
	}

	return list, nil
}

func validate(v any) error {
	if m, ok := v.(Validatable); ok {
		return m.Validate(strfmt.Default)
	}
	return nil
}
