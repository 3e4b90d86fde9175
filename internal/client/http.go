package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"wordbot/internal/domain"
	"wordbot/internal/transport"
)

// HTTP talks to a wordbot server started with `wordbot serve`.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil hc uses
// http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

var _ domain.RemoteExecutor = (*HTTP)(nil)

// Execute runs one command on the server.
func (c *HTTP) Execute(command, argument string) (domain.Result, error) {
	var out domain.Result
	err := c.post("/command", transport.CommandRequest{Command: command, Argument: argument}, &out)
	return out, err
}

// Press runs a menu shortcut on the server.
func (c *HTTP) Press(action string) (domain.Result, error) {
	var out domain.Result
	err := c.post("/press/"+url.PathEscape(action), nil, &out)
	return out, err
}

// Export downloads the word list as text.
func (c *HTTP) Export() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.Base+"/export", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("wordbot get /export: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *HTTP) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if in != nil {
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("wordbot post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
