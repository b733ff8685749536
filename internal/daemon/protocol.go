package daemon

// Control protocol: newline-JSON request/response over the control socket.
// One request per connection.

// Command names accepted on the control socket.
const (
	CmdToggle     = "toggle"
	CmdZoomIn     = "zoom-in"
	CmdZoomOut    = "zoom-out"
	CmdToggleMode = "mode"
	CmdStatus     = "status"
)

// Request is one control command.
type Request struct {
	Cmd string `json:"cmd"`
}

// State is a snapshot of the tracking session.
type State struct {
	Active bool    `json:"active"`
	Mode   string  `json:"mode"`
	Zoom   float64 `json:"zoom"`
}

// Response carries the outcome of a command. OK is false only for requests
// the daemon could not understand; rejected preconditions (zoom or mode
// change with no active session) are normal outcomes with OK true and a
// guidance message.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	State   State  `json:"state"`
}
