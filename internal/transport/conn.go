package transport

import (
	"time"

	"golang.org/x/net/websocket"
)

// conn wraps chat connections so tests can use fakes.
type conn interface {
	Send(v any) error
	Recv(v any) error
	Close() error
}

// wsConn is a websocket connection exchanging JSON frames.
type wsConn struct {
	ws *websocket.Conn
}

func newWSConn(ws *websocket.Conn) *wsConn { return &wsConn{ws: ws} }

func (c *wsConn) Send(v any) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return websocket.JSON.Send(c.ws, v)
}

func (c *wsConn) Recv(v any) error {
	if err := c.ws.SetReadDeadline(time.Now().Add(30 * time.Minute)); err != nil {
		return err
	}
	return websocket.JSON.Receive(c.ws, v)
}

func (c *wsConn) Close() error { return c.ws.Close() }
