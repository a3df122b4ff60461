package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"picipher/internal/app"
	"picipher/internal/crypto"
	"picipher/internal/digits"
	"picipher/internal/store"
)

func main() {
	var (
		addr    = pflag.String("addr", ":8080", "listen address")
		file    = pflag.String("file", "", "artifact to serve (default: the cache in --home)")
		home    = pflag.String("home", "", "picipher home holding "+store.DigitsFilename)
		verbose = pflag.BoolP("verbose", "v", false, "debug logging")
	)
	pflag.Parse()

	log := app.NewLogger(os.Stderr, *verbose).WithName("digitserver")

	body, err := loadArtifact(*file, *home)
	if err != nil {
		log.Error(err, "cannot load artifact")
		os.Exit(1)
	}
	log.Info("serving artifact", "bytes", len(body), "blake2b", crypto.Digest(body), "addr", *addr)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newHandler(body, time.Now(), log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error(err, "server stopped")
		os.Exit(1)
	}
}

// loadArtifact reads the file to serve. Without an explicit file the
// picipher cache is used, which also checks its recorded digest.
func loadArtifact(file, home string) ([]byte, error) {
	var raw string
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		raw = string(b)
	} else {
		if home == "" {
			cfg := app.DefaultConfig()
			if err := cfg.Resolve(); err != nil {
				return nil, err
			}
			home = cfg.Home
		}
		s := store.NewDigitFileStore(home)
		r, ok, err := s.LoadDigits()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no artifact at %s", s.Path())
		}
		raw = r
	}
	if err := validate(raw); err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

// validate accepts "3.1415..." or "31415..." with optional trailing
// whitespace.
func validate(raw string) error {
	d := strings.TrimRight(raw, " \r\n\t")
	n := len(d)
	if n > 1 && d[1] == '.' {
		n--
	}
	_, err := digits.Normalize(d, n)
	return err
}

func newHandler(body []byte, modTime time.Time, log logr.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /"+store.DigitsFilename, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		http.ServeContent(w, r, store.DigitsFilename, modTime, bytes.NewReader(body))
	})
	return accessLog(mux, log)
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func accessLog(next http.Handler, log logr.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start),
		)
	})
}
