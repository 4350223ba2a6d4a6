package stl

import "errors"

// ErrShortHeader is returned by Read when the input ends before the
// 80-byte header and triangle count have been fully read.
var ErrShortHeader = errors.New("stl: short header")

// ErrTruncated is returned by Read when the input ends before every
// triangle the header's count promised has been read.
var ErrTruncated = errors.New("stl: truncated triangle data")
