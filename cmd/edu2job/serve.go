package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/corpus"
	"github.com/sowmyalt/edu2job/internal/retrain"
	"github.com/sowmyalt/edu2job/internal/server"
	"github.com/sowmyalt/edu2job/internal/server/ratelimit"
)

var (
	servePort    int
	serveAMQPURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Train on the configured corpus and serve predictions over HTTP. A failed initial training " +
		"leaves the server up and answering from the rule table. With an AMQP URL, retrain triggers " +
		"are also consumed from the retrain queue.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveAMQPURL, "amqp-url", "", "RabbitMQ URL for retrain triggers (defaults to AMQP_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("amqp-url") {
		cfg.AMQPURL = serveAMQPURL
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := corpus.Open(ctx, corpusOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}

	eng := newEngine(cfg)
	coord := retrain.NewCoordinator(eng, src)
	if _, err := coord.Retrain(ctx, "startup"); err != nil {
		log.Printf("[serve] initial training failed, serving without a model: %v", err)
	}

	if cfg.AMQPURL != "" {
		go func() {
			_ = retrain.ListenForever(ctx, cfg.AMQPURL, cfg.RetrainQueue, cfg.EventsExchg, coord, retrain.DefaultBackoff)
			log.Printf("[serve] retrain consumer stopped")
		}()
	}

	srv := server.New(server.Config{
		Port:        cfg.Port,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   ratelimit.LoadConfig(os.Getenv),
	}, eng, coord)
	return srv.Start(ctx)
}
