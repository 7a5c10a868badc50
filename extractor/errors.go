package extractor

import (
	"errors"
	"fmt"
)

// ErrNilType is returned when extraction is requested for a nil target type.
var ErrNilType = errors.New("extractor: target type is nil")

// InvariantError reports a raw tag that was not of the expected throws kind.
// The raw tag collection is restricted to throws tags upstream, so hitting
// this means the declaration tree handed the engine inconsistent data; the
// enclosing type's extraction is aborted.
type InvariantError struct {
	Member   string // signature of the member carrying the tag
	TagIndex int    // index within the member's raw tag list
	Kind     string // kind reported for the offending tag
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("extractor: tag %d on %s is not a throws tag (got kind %q)",
		e.TagIndex, e.Member, e.Kind)
}
