package othello

import "errors"

var ErrUnknownPlayer = errors.New("unknown player")
