package presets

import "errors"

var ErrNotFound = errors.New("preset not found")
