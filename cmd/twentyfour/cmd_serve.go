package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/twentyfour/internal/adapters/http"
	"svw.info/twentyfour/internal/checker"
	"svw.info/twentyfour/internal/config"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/infrastructure/storage"
	"svw.info/twentyfour/internal/solver"
	"svw.info/twentyfour/internal/usecase"
)

var (
	serveAddr       string
	serveDataDir    string
	serveConfigPath string
	serveLogLevel   string
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Starts the HTTP API with endpoints for solving hands, dealing
solvable games, checking answers, and persisting games to disk.

Examples:
  twentyfour serve
  twentyfour serve --addr :9090 --data ./games
  twentyfour serve --config twentyfour.yaml`,
	RunE: runServeCommand,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDataDir, "data", "", "Save directory (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable gin debug mode")
	rootCmd.AddCommand(serveCmd)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	if serveDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire providers -> use cases -> HTTP adapter
	s := solver.NewExhaustiveSolver()
	s.Workers = cfg.Workers
	gen := generator.NewValidGameGenerator(s)
	chk := checker.New()
	st := storage.NewFS(cfg.DataDir)
	uc := usecase.NewService(s, gen, chk, st)
	h := httpadapter.New(uc, logger)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	h.Register(router.Group("/"))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "data", cfg.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
