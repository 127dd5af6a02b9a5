package grpc

import (
	"errors"
)

var (
	errInternalError = errors.New("internal error")
	errNotListening  = errors.New("server is not listening")
)
