package catalog

import "fmt"

var (
	ErrRequestFailed = fmt.Errorf("API request failed")
	ErrDecodeFailed  = fmt.Errorf("failed to decode response")
	ErrNoIDs         = fmt.Errorf("no item IDs provided")
	ErrTooManyIDs    = fmt.Errorf("too many item IDs for a single request")
	ErrEmptyResult   = fmt.Errorf("response carried no result")
)
