package storage

import "errors"

// ErrCatalogNotFound means the fixed catalog key was never written. A
// present-but-empty catalog is a different state and does not raise this.
var ErrCatalogNotFound = errors.New("catalog not found in storage")
