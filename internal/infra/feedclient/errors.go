package feedclient

import "fmt"

// errHTTPStatus formats a non-2xx HTTP status as the cause wrapped inside an
// *updateerr.Error.
func errHTTPStatus(code int) error {
	return fmt.Errorf("unexpected status %d fetching feed", code)
}
