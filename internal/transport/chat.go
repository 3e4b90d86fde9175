package transport

import (
	"errors"
	"io"

	"wordbot/internal/domain"
	"wordbot/internal/router"
)

// ChatMessage is one inbound chat frame: a typed line or a button press.
type ChatMessage struct {
	Text  string `json:"text,omitempty"`
	Press string `json:"press,omitempty"`
}

// Reply answers one chat message through exec.
func Reply(exec domain.CommandExecutor, msg ChatMessage) domain.Result {
	if msg.Press != "" {
		return exec.Press(msg.Press)
	}
	name, arg, ok := router.ParseLine(msg.Text)
	if !ok {
		return domain.Result{Text: "commands start with /, try /menu", Failed: true}
	}
	return exec.Execute(name, arg)
}

// converse answers every message on c until the peer goes away.
func (s *Server) converse(c conn) {
	defer c.Close()

	s.log.Debugf("chat connected")
	for {
		var msg ChatMessage
		if err := c.Recv(&msg); err != nil {
			if !errors.Is(err, io.EOF) {
				s.log.Warnf("chat recv: %v", err)
			}
			s.log.Debugf("chat disconnected")
			return
		}
		if err := c.Send(Reply(s.exec, msg)); err != nil {
			s.log.Warnf("chat send: %v", err)
			return
		}
	}
}
