package spaces

import "errors"

var (
	ErrManagerRequired  = errors.New("spaces: route manager not configured")
	ErrSpaceNameInvalid = errors.New("spaces: space name is invalid")
)

const (
	spaceNameInvalidCode = "SPACE_NAME_INVALID"
	spaceResolveCode     = "SPACE_RESOLVE_FAILED"
)
