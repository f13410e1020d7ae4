package bridge

import "github.com/rotisserie/eris"

var (
	ErrUnknownEnvelope = eris.New("unknown envelope type")
	ErrMalformedFrame  = eris.New("malformed frame")
	ErrNilSink         = eris.New("sink is nil")
)
