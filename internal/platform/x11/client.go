//go:build linux

package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
	"github.com/pkg/errors"
)

var atomNames = []string{
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_NAME",
	"_NET_WM_PID",
	"_NET_WM_STATE",
	"_NET_WM_STATE_HIDDEN",
	"WM_NAME",
	"WM_CLASS",
	"UTF8_STRING",
}

// Client is a connection to the X server shared by every backend interface.
type Client struct {
	conn   *xgb.Conn
	root   xproto.Window
	screen *xproto.ScreenInfo
	atoms  map[string]xproto.Atom
	xtest  bool
}

// Dial connects to $DISPLAY and interns the EWMH atoms.
func Dial() (*Client, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	c := &Client{
		conn:   conn,
		root:   screen.Root,
		screen: screen,
		atoms:  make(map[string]xproto.Atom, len(atomNames)),
	}
	for _, name := range atomNames {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "intern atom %s", name)
		}
		c.atoms[name] = reply.Atom
	}
	c.xtest = xtest.Init(conn) == nil
	return c, nil
}

// Close releases the connection.
func (c *Client) Close() { c.conn.Close() }

func (c *Client) property(w xproto.Window, name string, typ xproto.Atom, length uint32) ([]byte, error) {
	reply, err := xproto.GetProperty(c.conn, false, w, c.atoms[name], typ, 0, length).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", name)
	}
	return reply.Value, nil
}

func (c *Client) name(w xproto.Window) string {
	if data, err := c.property(w, "_NET_WM_NAME", c.atoms["UTF8_STRING"], 1024); err == nil && len(data) > 0 {
		return decodeString(data)
	}
	if data, err := c.property(w, "WM_NAME", xproto.AtomString, 1024); err == nil && len(data) > 0 {
		return decodeString(data)
	}
	return ""
}

func (c *Client) class(w xproto.Window) string {
	data, err := c.property(w, "WM_CLASS", xproto.AtomString, 256)
	if err != nil || len(data) == 0 {
		return ""
	}
	return decodeClass(data)
}

func (c *Client) pid(w xproto.Window) int {
	data, err := c.property(w, "_NET_WM_PID", xproto.AtomCardinal, 1)
	if err != nil || len(data) < 4 {
		return 0
	}
	return int(xgb.Get32(data))
}

func (c *Client) hidden(w xproto.Window) bool {
	data, err := c.property(w, "_NET_WM_STATE", xproto.AtomAtom, 64)
	if err != nil {
		return false
	}
	for _, a := range decodeAtoms(data) {
		if a == c.atoms["_NET_WM_STATE_HIDDEN"] {
			return true
		}
	}
	return false
}

// sendClientMessage posts an EWMH request to the root window.
func (c *Client) sendClientMessage(w xproto.Window, name string, data ...uint32) error {
	buf := make([]uint32, 5)
	copy(buf, data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.atoms[name],
		Data:   xproto.ClientMessageDataUnionData32New(buf),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	err := xproto.SendEventChecked(c.conn, false, c.root, mask, string(ev.Bytes())).Check()
	return errors.Wrapf(err, "send %s", name)
}
