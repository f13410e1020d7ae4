package bus

import "github.com/rotisserie/eris"

var (
	ErrNilHandler = eris.New("event handler is nil")
	ErrNilEvent   = eris.New("event is nil")
)
