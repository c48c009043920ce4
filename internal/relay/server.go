package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/remram44/japong/configs"
)

const timeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Os clientes são nativos e não mandam Origin confiável.
		return true
	},
}

// NewRouter registra as rotas do relay.
func NewRouter(cfg configs.Server, hub *Hub, log *zap.SugaredLogger) *httprouter.Router {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		log.Errorw("handler panic", "path", r.URL.Path, "panic", i)
		securityHeaders(w)
		http.Error(w, "An error has occurred. Please try again.", http.StatusInternalServerError)
	}

	mux.GET("/", serveHome(cfg, log))
	mux.GET("/conn", serveConn(cfg, hub, log))
	mux.GET("/qr", serveQR(cfg, log))
	mux.GET("/healthz", serveHealthCheck(log))
	mux.GET("/version", serveVersion(log))
	mux.GET("/metrics", serveMetrics(hub, log))

	if cfg.Profile {
		registerProfileHandlers(mux)
	}

	return mux
}

func serveConn(cfg configs.Server, hub *Hub, log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnw("upgrade failed", "remote", realIP(r), "error", err)
			return
		}

		c := newClient(conn, realIP(r), cfg, log)
		if !hub.join(c) {
			_ = conn.Close()
			return
		}

		go c.writePump()
		c.readPump(hub)
	}
}

// Serve escuta até ctx terminar e então desliga com prazo de 5s.
func Serve(ctx context.Context, cfg configs.Server, log *zap.SugaredLogger) error {
	hub := NewHub(log)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, hub, log),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", srv.Addr, "connect", cfg.PublicAddr(), "version", configs.ReleaseVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
