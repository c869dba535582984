package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/demolink/internal/config"
	"github.com/ziadkadry99/demolink/internal/demo"
	"github.com/ziadkadry99/demolink/internal/hostaddr"
	"github.com/ziadkadry99/demolink/internal/logging"
	"github.com/ziadkadry99/demolink/internal/server"
)

var (
	servePort     int
	serveBind     string
	serveHostMode string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demolink HTTP server",
	Long:  `Starts the HTTP server exposing GET / (link to /test), GET /test (sample user) and GET /healthz.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadServeConfig(cmd)
		if err != nil {
			return err
		}

		log, err := logging.New(os.Stderr, cfg.LogLevel, string(cfg.LogFormat), verbose)
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}

		resolver, err := hostaddr.New(cfg.HostMode, cfg.Host)
		if err != nil {
			return fmt.Errorf("creating host resolver: %w", err)
		}

		srv := newServer(cfg, resolver, log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("shutdown failed")
			}
		}()

		log.WithFields(logrus.Fields{
			"version":   Version,
			"addr":      cfg.ListenAddr(),
			"host_mode": cfg.HostMode,
			"config":    cfgFile,
		}).Info("starting demolink server")

		return srv.Start()
	},
}

// loadServeConfig reads the config file and applies any flags the user set.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("bind") {
		cfg.BindAddress = serveBind
	}
	if flags.Changed("host-mode") {
		cfg.HostMode = hostaddr.Mode(serveHostMode)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newServer builds the HTTP server with the demo routes mounted.
func newServer(cfg *config.Config, resolver hostaddr.Resolver, log logrus.FieldLogger) *server.Server {
	srv := server.New(server.Config{
		Addr:     cfg.ListenAddr(),
		AllowAll: cfg.AllowAllOrigins,
	}, log)

	demo.RegisterRoutes(srv.Router(), &demo.LinkBuilder{
		Resolver: resolver,
		Port:     cfg.Port,
	}, log)

	return srv
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveBind, "bind", "", "Address to bind to (default all interfaces)")
	serveCmd.Flags().StringVar(&serveHostMode, "host-mode", string(hostaddr.ModeStatic), "Host used in links: static or resolve")
	rootCmd.AddCommand(serveCmd)
}
