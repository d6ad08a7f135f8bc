package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/api"
	"github.com/mkarev/askfolio/internal/config"
	"github.com/mkarev/askfolio/internal/knowledge"
	"github.com/mkarev/askfolio/internal/resume"
	"github.com/mkarev/askfolio/internal/storage"
	"github.com/mkarev/askfolio/internal/transcript"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the askfolio server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running askfolio server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show askfolio system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "askfolio.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

// loadKnowledge builds the knowledge base from the configured override
// file, falling back to the embedded seed.
func loadKnowledge(cfg config.Config) (*knowledge.Repository, error) {
	if cfg.Knowledge.Path != "" {
		kb, err := knowledge.Load(cfg.Knowledge.Path)
		if err != nil {
			return nil, fmt.Errorf("loading knowledge base from %s: %w", cfg.Knowledge.Path, err)
		}
		return kb, nil
	}
	return knowledge.Default()
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "askfolio version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize structured logging.
	logLevel := slog.LevelInfo
	if cfg.LogLevelDebug() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if cfg.Server.AdminToken == "" {
		printWarning("ASKFOLIO_ADMIN_TOKEN not set; admin endpoints are disabled")
	}

	// Write PID file. Check if server is already running via health endpoint.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			printWarning("askfolio is already running (PID %d)", pid)
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		printWarning("askfolio is already running on port %d", cfg.Server.Port)
		return fmt.Errorf("server already running on port %d", cfg.Server.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kb, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}
	slog.Info("knowledge base loaded",
		"projects", len(kb.Projects()),
		"skills", len(kb.Skills()),
	)

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	ag := agent.New(kb)

	var res *resume.Resume
	if cfg.Resume.Path != "" {
		res = resume.New(cfg.Resume.Path)
	}

	publicHandler := api.NewPublicHandler(api.PublicDeps{
		Agent:     ag,
		Knowledge: kb,
		Store:     store,
		Resume:    res,
	})
	adminHandler := api.NewAdminHandler(api.AdminDeps{
		Store: store,
		Token: cfg.Server.AdminToken,
	})

	topRouter := chi.NewRouter()
	topRouter.Mount("/", publicHandler)
	topRouter.Mount("/admin", adminHandler)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: topRouter,
	}

	worker := transcript.NewWorker(store, 500*time.Millisecond)

	mcpSrv := api.NewMCPServer(api.MCPDeps{
		Agent:     ag,
		Knowledge: kb,
	})
	stdioSrv := server.NewStdioServer(mcpSrv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("MCP server started (stdio transport)")
		err := stdioSrv.Listen(gctx, os.Stdin, os.Stdout)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		fmt.Fprintf(os.Stderr, "askfolio listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		fmt.Fprintln(os.Stderr, "shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("askfolio is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop askfolio (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to askfolio (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load()
	if err != nil {
		printError("config error: %v", err)
		return nil
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	client := &http.Client{Timeout: 2 * time.Second}

	running := false
	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == 200 {
			running = true
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	if running {
		var projects []knowledge.Project
		if projResp, err := client.Get(serverURL + "/api/projects"); err == nil {
			if decodeJSON(projResp, &projects) == nil {
				printStatus("Projects", "%d", len(projects))
			}
		}
		var skills []knowledge.Skill
		if skillResp, err := client.Get(serverURL + "/api/skills"); err == nil {
			if decodeJSON(skillResp, &skills) == nil {
				printStatus("Skills", "%d", len(skills))
			}
		}
	}

	if cfg.Server.AdminToken == "" {
		printStatus("Admin", "disabled (ASKFOLIO_ADMIN_TOKEN not set)")
	} else {
		printStatus("Admin", "enabled")
	}
	if cfg.Resume.Path != "" {
		printStatus("Resume", "%s", cfg.Resume.Path)
	}
	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}
