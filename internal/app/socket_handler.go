package app

import (
	"log"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-docview/internal/markdown"
	"github.com/pstuifzand/tui-docview/internal/socket"
)

// handleSocketMessage processes messages received from the Unix socket
func (a *App) handleSocketMessage(msg socket.Message) {
	log.Printf("Received socket message: command=%s, target=%s", msg.Command, msg.Target)

	switch msg.Command {
	case socket.CommandGoto:
		a.handleGotoCommand(msg)
	case socket.CommandOpen:
		a.handleOpenCommand(msg)
	default:
		log.Printf("Unknown socket command: %s", msg.Command)
	}
}

// handleGotoCommand scrolls to a heading, matching by id first and fuzzy
// title otherwise
func (a *App) handleGotoCommand(msg socket.Message) {
	if msg.Target == "" {
		log.Printf("Goto command missing target")
		return
	}

	if a.doc.HeadingByID(msg.Target) != nil {
		a.jumpTo(msg.Target)
		return
	}

	for _, h := range a.doc.Flatten() {
		if fuzzy.MatchNormalizedFold(msg.Target, h.Text) {
			a.jumpTo(h.ID)
			return
		}
	}

	log.Printf("No heading matches %q", msg.Target)
	a.SetStatus("No heading matches " + msg.Target)
}

// handleOpenCommand loads another file into the running viewer
func (a *App) handleOpenCommand(msg socket.Message) {
	if msg.Target == "" {
		log.Printf("Open command missing target")
		return
	}

	a.savePosition()

	doc, err := markdown.Load(msg.Target)
	if err != nil {
		log.Printf("Failed to open %s: %v", msg.Target, err)
		a.SetStatus("Failed to open " + msg.Target)
		return
	}

	a.setDocument(doc)
	a.SetStatus("Opened " + msg.Target)
}
