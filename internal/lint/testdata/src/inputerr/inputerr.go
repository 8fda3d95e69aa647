package inputerr

import "errors"

type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return e.Field
}

func Field(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Field
	}
	return ""
}

func FieldByValue(err error) string {
	var inputErr *InputError
	if errors.As(err, inputErr) { // want `second argument to errors.As must be a`
		return inputErr.Field
	}
	return ""
}
