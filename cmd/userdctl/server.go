package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"userd/pkg/config"
	"userd/pkg/db"
	"userd/pkg/server"
	"userd/pkg/server/endpoints"
	"userd/pkg/token"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the userd application server",
	Long: `Run the userd application server.

To run the server requires the environment variables USERD_TOKEN_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		key, err := token.KeyFromEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Load into the global so config.Watch reloads reach readers of
		// config.Get
		if err := config.Reload(); err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load configuration:", err)
			os.Exit(1)
		}
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		tokens, err := token.NewIssuer(key, cfg.TokenIssuer, cfg.SessionTTL())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create token issuer:", err)
			os.Exit(1)
		}

		addr, _ := cmd.Flags().GetString("listen-address")
		if addr == "" {
			addr = cfg.ListenAddress
		}

		s := server.NewServer(database, cfg, tokens, addr)
		endpoints.RegisterAll(s)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			if err := config.Watch(ctx); err != nil {
				log.Println("Configuration watch stopped:", err)
			}
		}()

		errs := make(chan error, 1)
		go func() {
			errs <- s.Start()
		}()

		log.Printf("Running server at http://%s...\n", addr)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errs:
			log.Fatal(err)
		case sig := <-stop:
			log.Printf("Received %s, shutting down...", sig)
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Println("Shutdown error:", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("listen-address", "l", "", "address to listen on (overrides configuration)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
