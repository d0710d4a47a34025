package interfaces

import "errors"

// ErrConcurrentModification is returned by repositories when a conditional
// multi-item write is rejected because the data changed underneath it.
var ErrConcurrentModification = errors.New("concurrent modification")
