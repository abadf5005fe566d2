package rating

import "errors"

var ErrInvalidScore = errors.New("invalid category score")
var ErrUnknownUser = errors.New("user not in directory")
