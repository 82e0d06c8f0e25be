// This file is part of mc6809.
//
// mc6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mc6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mc6809.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/logger"
	"golang.org/x/sync/errgroup"
)

// Server accepts websocket connections at Path. Each connection gets a CPU
// of its own.
type Server struct {
	// applied to the CPU of every new connection
	UseUndocumented bool

	upgrader websocket.Upgrader

	connsLock sync.Mutex
	conns     map[*websocket.Conn]bool
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(useUndocumented bool) *Server {
	return &Server{
		UseUndocumented: useUndocumented,
		conns:           make(map[*websocket.Conn]bool),
	}
}

// Handler returns the http.Handler for the websocket endpoint.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, srv.serveClient)
	return mux
}

// ListenAndServe listens on the address until the context is cancelled.
// Connections that are still open when the context is cancelled are closed.
func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(RemoteError, err)
	}

	logger.Logf(logger.Allow, "remote", "listening at ws://%s%s", ln.Addr(), Path)

	hs := &http.Server{Handler: srv.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return curated.Errorf(RemoteError, err)
	})
	g.Go(func() error {
		<-gctx.Done()
		err := hs.Shutdown(context.Background())
		srv.closeAll()
		return err
	})

	return g.Wait()
}

func (srv *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "upgrade error: %v", err)
		return
	}

	srv.connsLock.Lock()
	srv.conns[conn] = true
	srv.connsLock.Unlock()

	defer func() {
		srv.connsLock.Lock()
		delete(srv.conns, conn)
		srv.connsLock.Unlock()
		conn.Close()
	}()

	tag := "remote/" + conn.RemoteAddr().String()
	logger.Log(logger.Allow, tag, "connected")

	sess := newSession(&stream{conn: conn}, tag, srv.UseUndocumented)
	if err := sess.serve(); err != nil {
		logger.Logf(logger.Allow, tag, "closing after error: %v", err)
		return
	}

	logger.Log(logger.Allow, tag, "disconnected")
}

func (srv *Server) closeAll() {
	srv.connsLock.Lock()
	defer srv.connsLock.Unlock()
	for conn := range srv.conns {
		conn.Close()
	}
}
