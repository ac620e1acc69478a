package cmd

import "errors"

var errReported = errors.New("conversion failed")

// IsReportedError tells main the failure was already written to stderr.
func IsReportedError(err error) bool {
	return errors.Is(err, errReported)
}
