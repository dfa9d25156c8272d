// Package socket implements the unix-socket remote control of a running
// viewer instance
package socket

// Message represents a command sent to the running docview instance
type Message struct {
	Command string `json:"command"`
	Target  string `json:"target,omitempty"` // heading id/title or file path
}

// Response represents the response from the server
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Command types
const (
	// CommandGoto scrolls the running viewer to a heading, matched by id
	// first and fuzzy title otherwise
	CommandGoto = "goto"
	// CommandOpen loads another file into the running viewer
	CommandOpen = "open"
)
