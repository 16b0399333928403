// Command infixd serves the infix calculator over HTTP: a JSON evaluation
// API on /api/v1/calculate and a browser form on /.
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/evermoor/infix/internal/config"
	"github.com/evermoor/infix/internal/logger"
	"github.com/evermoor/infix/internal/web"
)

func main() {
	log.SetFlags(0)
	var (
		cfgpath  string
		addr     string
		maxlen   int
		loglevel string
		lenient  bool
	)
	flag.StringVar(&cfgpath, "config", "", "path to a JSON config file")
	flag.StringVar(&addr, "addr", "", "listen address (overrides config)")
	flag.IntVar(&maxlen, "max-len", 0, "maximum expression length in bytes (overrides config)")
	flag.StringVar(&loglevel, "log-level", "", "log level: debug, info, warn, error, none (overrides config)")
	flag.BoolVar(&lenient, "lenient", false, "tolerate malformed expressions instead of rejecting them")
	flag.Parse()

	cfg, err := config.Load(cfgpath)
	if err != nil {
		log.Fatal(err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if maxlen > 0 {
		cfg.MaxExprLen = maxlen
	}
	if loglevel != "" {
		cfg.LogLevel = loglevel
	}
	if lenient {
		cfg.Lenient = true
	}

	lg := logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr)
	srv := web.NewServer(cfg, lg)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	fail := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fail <- err
		}
	}()

	select {
	case err := <-fail:
		log.Fatal(err)
	case sig := <-done:
		lg.Info("received %v, shutting down", sig)
		if err := srv.Stop(); err != nil {
			log.Fatal(err)
		}
	}
}
