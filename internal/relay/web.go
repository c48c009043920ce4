package relay

import (
	"encoding/json"
	"fmt"
	"html"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/remram44/japong/configs"
)

// Tamanho do PNG do QR code, em pixels.
const qrSize = 320

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'self'")
}

func realIP(r *http.Request) string {
	host, port, _ := net.SplitHostPort(r.RemoteAddr)
	if ip := r.Header.Get("X-Real-IP"); ip != "" && net.ParseIP(ip) != nil {
		host = ip
	}
	if port != "" {
		return net.JoinHostPort(host, port)
	}
	return host
}

// connectURL é o endereço do websocket anunciado aos jogadores.
func connectURL(cfg configs.Server) string {
	return "ws://" + cfg.PublicAddr() + "/conn"
}

func serveHome(cfg configs.Server, log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>japong</title></head><body>`)
		b.WriteString(`<h1>japong</h1>`)
		fmt.Fprintf(&b, `<p>Connect with <code>japong-client --server %s</code></p>`, html.EscapeString(cfg.PublicAddr()))
		fmt.Fprintf(&b, `<p>Websocket: <code>%s</code></p>`, html.EscapeString(connectURL(cfg)))
		b.WriteString(`<img src="/qr" alt="QR code of the connect address" width="320" height="320">`)
		b.WriteString(`</body></html>`)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(w)
		written, err := w.Write([]byte(b.String()))
		if err != nil {
			log.Debugw("write failed", "path", r.URL.Path, "error", err)
			return
		}

		log.Debugw("SERVE: home page", "bytes", written, "remote", realIP(r), "took", time.Since(startTime).Round(time.Microsecond))
	}
}

func serveQR(cfg configs.Server, log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		png, err := qrcode.Encode(connectURL(cfg), qrcode.Medium, qrSize)
		if err != nil {
			log.Errorw("qr generation failed", "error", err)
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(w)
		_, _ = w.Write(png)
	}
}

func serveHealthCheck(log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		if _, err := w.Write([]byte("Ok\n")); err != nil {
			log.Debugw("write failed", "path", r.URL.Path, "error", err)
		}
	}
}

func serveVersion(log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		if _, err := w.Write([]byte("japong v" + configs.ReleaseVersion + "\n")); err != nil {
			log.Debugw("write failed", "path", r.URL.Path, "error", err)
		}
	}
}

func serveMetrics(hub *Hub, log *zap.SugaredLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		securityHeaders(w)
		if err := json.NewEncoder(w).Encode(hub.Metrics().Snapshot()); err != nil {
			log.Debugw("write failed", "path", r.URL.Path, "error", err)
		}
	}
}

func registerProfileHandlers(mux *httprouter.Router) {
	mux.Handler("GET", "/pprof/allocs", pprof.Handler("allocs"))
	mux.Handler("GET", "/pprof/block", pprof.Handler("block"))
	mux.Handler("GET", "/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handler("GET", "/pprof/heap", pprof.Handler("heap"))
	mux.Handler("GET", "/pprof/mutex", pprof.Handler("mutex"))
	mux.HandlerFunc("GET", "/pprof/cmdline", pprof.Cmdline)
	mux.HandlerFunc("GET", "/pprof/profile", pprof.Profile)
	mux.HandlerFunc("GET", "/pprof/symbol", pprof.Symbol)
	mux.HandlerFunc("GET", "/pprof/trace", pprof.Trace)
}
