package discovery

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a configured root that does not exist.
var ErrNotFound = errors.New("path does not exist")

// DiscoveryError reports a root or directory that could not be inspected. It aborts the run.
type DiscoveryError struct {
	Path string
	Err  error
}

func (discoveryError *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", discoveryError.Path, discoveryError.Err)
}

func (discoveryError *DiscoveryError) Unwrap() error {
	return discoveryError.Err
}
