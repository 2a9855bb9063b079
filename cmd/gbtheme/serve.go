package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/phyten/gbtheme/internal/web"
)

func previewCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "preview")
	out := fs.String("out", "gbtheme-preview.html", "output HTML file")
	openIt := fs.Bool("open", false, "open the preview in the default browser")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	path := *out
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.cwd, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := web.WriteStatic(f, s.cat); err != nil {
		_ = f.Close()
		return fmt.Errorf("write preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	fmt.Fprintln(s.stdout, path)
	s.log.Info("preview written", zap.String("path", path))

	if *openIt {
		if err := browser.OpenFile(path); err != nil {
			return fmt.Errorf("open preview: %w", err)
		}
	}
	return nil
}

func serveCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "serve")
	port := fs.Int("p", 8080, "port")
	host := fs.String("host", "127.0.0.1", "listen address")
	openIt := fs.Bool("open", false, "open the preview in the default browser")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	mux := http.NewServeMux()
	web.Register(mux, s.cat, s.log)
	addr := fmt.Sprintf("%s:%d", *host, *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	url := "http://" + addr + "/"
	fmt.Fprintf(s.stderr, "gbtheme serve listening on %s\n", url)
	s.log.Info("listening", zap.String("addr", addr))
	if *openIt {
		if err := browser.OpenURL(url); err != nil {
			s.log.Warn("open browser", zap.Error(err))
		}
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
