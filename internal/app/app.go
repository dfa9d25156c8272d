package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-docview/internal/config"
	"github.com/pstuifzand/tui-docview/internal/markdown"
	"github.com/pstuifzand/tui-docview/internal/model"
	"github.com/pstuifzand/tui-docview/internal/socket"
	"github.com/pstuifzand/tui-docview/internal/storage"
	"github.com/pstuifzand/tui-docview/internal/theme"
	"github.com/pstuifzand/tui-docview/internal/toc"
	"github.com/pstuifzand/tui-docview/internal/ui"
)

// App is the main application controller
type App struct {
	screen    *ui.Screen
	cfg       *config.Config
	doc       *model.Document
	root      *ui.RootElement
	docView   *ui.DocView
	sidebar   *ui.Sidebar
	tracker   *toc.Tracker
	sched     *loopScheduler
	help      *ui.HelpScreen
	messages  *ui.MessageLogger
	positions *storage.PositionStore
	server    *socket.Server

	statusMsg  string
	statusTime time.Time
	dirtyPos   bool
	lastSave   time.Time
	quit       bool
	debugMode  bool
}

// NewApp creates a new App instance for the given markdown file
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	screen, err := ui.NewScreenWithTheme(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	screen.EnableMouse()

	doc, err := markdown.Load(filePath)
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	positions, err := storage.DefaultPositionStore()
	if err != nil {
		log.Printf("Reading positions unavailable: %v", err)
	}

	a := &App{
		screen:     screen,
		cfg:        cfg,
		help:       ui.NewHelpScreen(),
		messages:   ui.NewMessageLogger(50),
		positions:  positions,
		sched:      &loopScheduler{},
		statusMsg:  "Ready",
		statusTime: time.Now(),
		lastSave:   time.Now(),
	}

	a.root = ui.NewRootElement()
	a.docView = ui.NewDocView(a.root)
	a.sidebar = ui.NewSidebar(a.root)
	a.layout()
	a.setDocument(doc)

	// Remote control socket; the viewer still works without it
	server, err := socket.NewServer(os.Getpid())
	if err != nil {
		log.Printf("Socket server unavailable: %v", err)
	} else {
		a.server = server
		server.Start()
	}

	return a, nil
}

// setDocument installs a document into both panes and rebuilds the engine
// around its heading catalog
func (a *App) setDocument(doc *model.Document) {
	if a.tracker != nil {
		a.tracker.Close()
		a.sched = &loopScheduler{}
	}

	a.doc = doc
	a.docView.SetDocument(doc)
	a.sidebar.SetDocument(doc)

	// Discover the scroll containers the same way a browser host would:
	// walk up from an element inside each region
	content := toc.FindScrollContainer(ui.NewAnchor(a.docView))
	tocContainer := toc.FindScrollContainer(ui.NewAnchor(a.sidebar))

	contentScroll := a.docView.Scroll()
	if content != nil {
		contentScroll = content.Scroll()
	}
	tocScroll := a.sidebar.Scroll()
	if tocContainer != nil {
		tocScroll = tocContainer.Scroll()
	}

	a.tracker = toc.NewTracker(toc.Config{
		ActiveOffset:      a.cfg.ActiveOffset,
		ViewportThreshold: a.cfg.ViewportThreshold,
		ScrollPadding:     a.cfg.ScrollPadding,
		VelocityThreshold: a.cfg.VelocityThreshold,
		SettleDelay:       time.Duration(a.cfg.SettleDelayMs) * time.Millisecond,
	}, doc.HeadingIDs(), &viewMeasurer{doc: a.docView, sidebar: a.sidebar}, contentScroll, tocScroll, a.sched)

	// Restore the last reading position
	if a.positions != nil && doc.Path != "" {
		if offset, err := a.positions.Get(doc.Path); err == nil && offset > 0 {
			a.docView.SetOffset(offset)
		}
	}

	a.tracker.Refresh()
}

// layout recomputes pane bounds from the terminal size
func (a *App) layout() {
	width := a.screen.GetWidth()
	height := a.screen.GetHeight()
	a.root.SetSize(width, height)

	sidebarWidth := a.cfg.SidebarWidth
	if sidebarWidth > width/2 {
		sidebarWidth = width / 2
	}

	contentTop := 1             // header row
	contentBottom := height - 1 // status row
	a.docView.SetBounds(0, contentTop, width-sidebarWidth-1, contentBottom-contentTop)
	a.sidebar.SetBounds(width-sidebarWidth, contentTop, sidebarWidth, contentBottom-contentTop)
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	// Create a channel for events
	eventChan := make(chan tcell.Event)

	// Start event polling goroutine
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	// Frame ticker: engine passes and rendering run at this cadence
	ticker := time.NewTicker(33 * time.Millisecond) // ~30 FPS
	defer ticker.Stop()

	var socketMessages <-chan socket.Message
	if a.server != nil {
		socketMessages = a.server.Messages()
	}

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case msg := <-socketMessages:
			a.handleSocketMessage(msg)
		case <-ticker.C:
			a.sched.RunPending()
			a.render()

			// Autosave the reading position every 5 seconds while it moves
			if a.dirtyPos && time.Since(a.lastSave) > 5*time.Second {
				a.savePosition()
			}
		}
	}

	a.savePosition()
	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.tracker != nil {
		a.tracker.Close()
	}
	if a.server != nil {
		a.server.Stop()
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// savePosition persists the current reading position
func (a *App) savePosition() {
	if a.positions == nil || a.doc == nil || a.doc.Path == "" {
		return
	}
	if err := a.positions.Set(a.doc.Path, a.docView.Offset()); err != nil {
		log.Printf("Failed to save reading position: %v", err)
	}
	a.dirtyPos = false
	a.lastSave = time.Now()
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	width := a.screen.GetWidth()
	height := a.screen.GetHeight()

	// Header
	header := fmt.Sprintf(" %s ", a.doc.Title)
	a.screen.DrawStringLimited(0, 0, header, width, a.screen.HeaderStyle())

	a.docView.Render(a.screen)
	a.sidebar.Render(a.screen, a.tracker.Snapshot(), a.tracker.AnimationSuppressed())

	// Status line
	statusLine := "-- VIEW --"
	if a.sidebar.IsFiltering() {
		statusLine = "-- FILTER --"
		a.sidebar.RenderFilterBar(a.screen, height-2)
	}
	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		statusLine += " " + a.statusMsg
	}
	a.screen.DrawString(0, height-1, statusLine, a.screen.StatusMessageStyle())

	// Help overlay if visible
	a.help.Render(a.screen)

	a.screen.Show()
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.layout()
		// Link positions move on resize; next engine read recomputes them
		a.tracker.InvalidateLayout()
		return
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	}
}

// handleKeyEvent routes a key event to the filter, the help overlay or the
// normal keymap
func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	if a.sidebar.IsFiltering() {
		if !a.sidebar.HandleKey(ev) {
			if ev.Key() == tcell.KeyEnter {
				if id, ok := a.sidebar.BestMatch(); ok {
					a.jumpTo(id)
				}
			}
			a.sidebar.StopFilter()
			a.tracker.InvalidateLayout()
			return
		}
		// Filter narrowed or widened the link list
		a.tracker.InvalidateLayout()
		return
	}

	if a.help.IsVisible() {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == '?' {
			a.help.Toggle()
		}
		return
	}

	a.handleKeypress(ev)
}

// handleKeypress handles a single keypress in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	page := a.docView.ViewportHeight() / 2

	switch ev.Key() {
	case tcell.KeyDown:
		a.scrollContent(1)
		return
	case tcell.KeyUp:
		a.scrollContent(-1)
		return
	case tcell.KeyPgDn:
		a.scrollContent(page)
		return
	case tcell.KeyPgUp:
		a.scrollContent(-page)
		return
	case tcell.KeyHome:
		a.scrollContent(-a.docView.ContentHeight())
		return
	case tcell.KeyEnd:
		a.scrollContent(a.docView.ContentHeight())
		return
	case tcell.KeyF12:
		a.dumpTrackerState()
		return
	case tcell.KeyCtrlC:
		a.quit = true
		return
	}

	switch ev.Rune() {
	case 'j':
		a.scrollContent(1)
	case 'k':
		a.scrollContent(-1)
	case 'd':
		a.scrollContent(page)
	case 'u':
		a.scrollContent(-page)
	case 'g':
		a.scrollContent(-a.docView.ContentHeight())
	case 'G':
		a.scrollContent(a.docView.ContentHeight())
	case '/':
		a.sidebar.StartFilter()
	case '?':
		a.help.Toggle()
	case 'q':
		a.quit = true
	}
}

// handleMouse processes mouse wheel scrolling and TOC link clicks
func (a *App) handleMouse(ev *tcell.EventMouse) {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.scrollContent(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.scrollContent(3)
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		if x >= a.screen.GetWidth()-a.cfg.SidebarWidth {
			if id, ok := a.sidebar.EntryAt(y); ok {
				a.jumpTo(id)
			}
		}
	}
}

// scrollContent moves the content pane and notifies the engine. The engine
// pass itself runs on the next frame tick, not here.
func (a *App) scrollContent(delta float64) {
	a.docView.ScrollBy(delta)
	a.dirtyPos = true
	a.tracker.ScrollChanged()
}

// jumpTo scrolls the content pane to a heading's section
func (a *App) jumpTo(id string) {
	if a.docView.ScrollToHeading(id) {
		a.dirtyPos = true
		a.tracker.Refresh()
		if h := a.doc.HeadingByID(id); h != nil {
			a.SetStatus("Jumped to " + h.Text)
		}
	}
}

// dumpTrackerState writes the full engine state to the log for debugging
func (a *App) dumpTrackerState() {
	log.Printf("Tracker state:\n%s", spew.Sdump(a.tracker.Snapshot()))
	a.SetStatus("Tracker state dumped to log")
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
	a.messages.AddMessage(msg)
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}
