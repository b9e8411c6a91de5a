package server

import dasherr "github.com/vango-dev/dashml/internal/errors"

// ErrPageFailed matches every page failure reported by Handler.
var ErrPageFailed error = dasherr.New("E040")
