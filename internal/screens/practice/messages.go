package practice

import (
	engine "github.com/mlutz/kartei/internal/practice"
)

// sessionReadyMsg is sent when the card pool has been loaded and the
// session queue built.
type sessionReadyMsg struct {
	Session  *engine.Session
	Language string
	Due      int
	Err      error
}
