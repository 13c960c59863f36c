package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable code. The
// code doubles as the error_code of the HTTP body.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// BusinessCode returns the code of the first BusinessError in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if !errors.As(err, &be) {
		return "", false
	}
	return be.Code, true
}
