package vis

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/lib"
)

const (
	DefaultAddr = "127.0.0.1:0"

	// DefaultReconnectGrace is how long the viewer waits for the page to come back
	// (e.g. after a reload) before treating the window as closed.
	DefaultReconnectGrace = 2 * time.Second

	shutdownTimeout = 5 * time.Second
)

type Options struct {
	// Addr is the ip:port to bind the viewer to.
	Addr string
	// OpenBrowser opens the viewer in a Chrome window using chromedp.
	OpenBrowser bool
	// ReconnectGrace, see DefaultReconnectGrace.
	ReconnectGrace time.Duration
	// OnReady, if set, is called with the viewer URL once it's listening.
	OnReady func(url string)
}

// Vis defines an InteractiveGraphProvider that serves the scene as a vis.js page and
// streams the nodes and edges to it over a websocket.
type Vis struct {
	scene    graphs.Scene
	opts     Options
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       *sync.Mutex
	sessions int
	seen     bool
	grace    *time.Timer
	closed   chan struct{}
	once     *sync.Once

	// conns are the live websocket sessions. http.Server.Shutdown doesn't see hijacked
	// connections so Show closes these itself.
	conns    map[*websocket.Conn]struct{}
	stopping bool
	wg       *sync.WaitGroup
}

var _ graphs.InteractiveGraphProvider = (*Vis)(nil)

func NewVis(s graphs.Scene, opts Options, logger *slog.Logger) *Vis {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.ReconnectGrace <= 0 {
		opts.ReconnectGrace = DefaultReconnectGrace
	}
	return &Vis{
		scene:  s,
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			// Only ever bound to a local address for a page we serve ourselves.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mu:     &sync.Mutex{},
		closed: make(chan struct{}),
		once:   &sync.Once{},
		conns:  make(map[*websocket.Conn]struct{}),
		wg:     &sync.WaitGroup{},
	}
}

// Handler serves the page on / and the scene stream on /ws.
func (v *Vis) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	})
	mux.HandleFunc("/ws", v.session)
	return mux
}

// Closed is closed once the page has connected at least once and then stayed
// disconnected for longer than the reconnect grace.
func (v *Vis) Closed() <-chan struct{} {
	return v.closed
}

// Show serves the viewer and blocks until the page is closed, the browser window goes
// away or ctx is cancelled.
func (v *Vis) Show(ctx context.Context) error {
	ln, err := net.Listen("tcp", v.opts.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: v.Handler()}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			v.logger.Warn("viewer shutdown", "err", err)
		}
		v.closeSessions()
	}()

	url := "http://" + ln.Addr().String() + "/"
	v.logger.Info("viewer listening", "url", url)
	if v.opts.OnReady != nil {
		v.opts.OnReady(url)
	}

	var browserClosed <-chan struct{}
	if v.opts.OpenBrowser {
		closed, cancel, err := openBrowser(ctx, url, v.logger)
		if err != nil {
			v.logger.Warn("could not open a browser window, open the url by hand", "url", url, "err", err)
		} else {
			defer cancel()
			browserClosed = closed
		}
	}

	select {
	case <-v.closed:
		v.logger.Debug("viewer page closed")
	case <-browserClosed:
		v.logger.Debug("browser window closed")
	case <-ctx.Done():
		v.logger.Debug("viewer cancelled")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return nil
}

func (v *Vis) session(w http.ResponseWriter, r *http.Request) {
	c, err := v.upgrader.Upgrade(w, r, nil)
	if err != nil {
		v.logger.Warn("ws upgrade", "err", err)
		return
	}

	ws := lib.NewThreadSafeWebSocket(c)
	defer ws.Close()

	if !v.sessionStarted(c) {
		return
	}
	defer v.sessionEnded(c)

	if err := v.stream(ws); err != nil {
		v.logger.Warn("ws stream", "err", err)
		return
	}

	// The page never sends anything, reading just blocks until it goes away.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// stream sends the title, every node, every edge and then "done".
func (v *Vis) stream(ws lib.ThreadSafeWebSocket) error {
	if err := ws.WriteJSON(newTitle(v.scene.Title)); err != nil {
		return err
	}

	for _, n := range v.scene.Nodes {
		msg := newNode()
		msg.Data = nodeData{
			ID: n.ID, Label: n.Name, X: n.X, Y: n.Y,
			Color: nodeColor{Background: n.Color, Border: graphs.NeutralColor},
		}
		if err := ws.WriteJSON(msg); err != nil {
			return err
		}
	}

	for i, e := range v.scene.Edges {
		msg := newEdge()
		msg.Data = edgeData{
			ID: i + 1, From: e.SourceID, To: e.TargetID,
			Label: e.Label, Width: e.Width,
			Color: edgeColor{Color: e.Color}, MST: e.InMST,
		}
		if err := ws.WriteJSON(msg); err != nil {
			return err
		}
	}

	return ws.WriteJSON(newDone())
}

// sessionStarted registers c, it returns false once Show is shutting down.
func (v *Vis) sessionStarted(c *websocket.Conn) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stopping {
		return false
	}
	v.conns[c] = struct{}{}
	v.wg.Add(1)
	v.sessions++
	v.seen = true
	if v.grace != nil {
		v.grace.Stop()
		v.grace = nil
	}
	return true
}

func (v *Vis) sessionEnded(c *websocket.Conn) {
	defer v.wg.Done()
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.conns, c)
	v.sessions--
	if v.sessions > 0 || !v.seen || v.stopping {
		return
	}
	v.grace = time.AfterFunc(v.opts.ReconnectGrace, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.sessions == 0 {
			v.once.Do(func() { close(v.closed) })
		}
	})
}

// closeSessions closes every live websocket and waits for their handlers to return.
func (v *Vis) closeSessions() {
	v.mu.Lock()
	v.stopping = true
	if v.grace != nil {
		v.grace.Stop()
		v.grace = nil
	}
	for c := range v.conns {
		_ = c.Close()
	}
	v.mu.Unlock()

	v.wg.Wait()
}
