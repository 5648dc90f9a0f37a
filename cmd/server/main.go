// brickout-server serves the game over SSH; every connection plays its own
// game. Build:
//
//	go build -o brickout-server ./cmd/server
//
// Usage:
//
//	./brickout-server [--config brickout.toml] [--port 2222] [--key path]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"brickout/internal/config"
	"brickout/internal/game"
	"brickout/internal/logging"
	internalssh "brickout/internal/ssh"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	port := flag.Int("port", 0, "SSH port (overrides server.port)")
	keyFile := flag.String("key", "", "PEM host key, generated if absent (overrides server.host_key)")
	flag.Parse()

	if err := run(*configPath, *port, *keyFile); err != nil {
		fmt.Fprintf(os.Stderr, "brickout-server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int, keyFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if keyFile != "" {
		cfg.Server.HostKey = keyFile
	}
	// Sessions never play sound on the server host.
	cfg.Audio.Enabled = false
	log, err := newServerLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := &handler{
		ctx:   ctx,
		cfg:   cfg,
		log:   log,
		slots: semaphore.NewWeighted(int64(cfg.Server.MaxSessions)),
	}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     h.serve,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr), zap.Int("max_sessions", cfg.Server.MaxSessions))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newServerLogger builds the server's logger. The server has no terminal to
// protect, so an unset log file means stderr rather than no logging.
func newServerLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		cfg.File = "stderr"
	}
	return logging.New(cfg)
}

// handler runs one game per SSH session, up to the configured limit.
type handler struct {
	ctx   context.Context
	cfg   *config.Config
	log   *zap.Logger
	slots *semaphore.Weighted
}

func (h *handler) serve(s gossh.Session) {
	log := h.log.With(
		zap.String("session", uuid.NewString()),
		zap.String("user", sanitizeName(s.User())),
		zap.Stringer("remote", s.RemoteAddr()),
	)

	if !h.slots.TryAcquire(1) {
		fmt.Fprintln(s, "Server full, try again later.")
		log.Warn("session rejected", zap.String("reason", "server full"))
		return
	}
	defer h.slots.Release(1)

	screen, err := internalssh.NewScreen(s)
	if err != nil {
		if errors.Is(err, internalssh.ErrNoPTY) {
			fmt.Fprintf(s, "brickout needs a terminal. Connect with: ssh -t -p %d <host>\n", h.cfg.Server.Port)
		} else {
			fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		}
		log.Warn("session rejected", zap.Error(err))
		return
	}

	g, err := game.NewWithScreen(screen, h.cfg, game.Options{Log: log})
	if err != nil {
		screen.Fini()
		log.Error("create game", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	go func() {
		select {
		case <-s.Context().Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("session started")
	start := time.Now()
	err = g.Run(ctx)
	log.Info("session ended",
		zap.Duration("duration", time.Since(start)),
		zap.Int("round", g.Round()),
		zap.Error(err),
	)
}

const maxNameLen = 16

// sanitizeName strips non-printable runes from a client-supplied user name
// and truncates it to maxNameLen bytes on a rune boundary.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameLen {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
		log.Warn("host key unreadable, generating a new one", zap.String("path", path))
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	block, err := xssh.MarshalPrivateKey(key, "brickout server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Warn("host key not saved", zap.Error(err))
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		log.Warn("host key not saved", zap.Error(err))
		return signer, nil
	}
	log.Info("generated host key", zap.String("path", path))
	return signer, nil
}
