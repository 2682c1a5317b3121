package inverse

import "errors"

// ErrConfigLength is returned when the supplied grid config does not
// have exactly one entry per MappingResult.Positions.
var ErrConfigLength = errors.New("inverse: config length does not match grid vertex count")
