package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"velocity-proxy/cmd/app"
	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/scanner"
)

func main() {
	namespace := flag.String("namespace", "", "namespace to scan (overrides configuration)")
	hoursBack := flag.Int("hours", 0, "how many hours of logs to scan (overrides configuration)")
	flag.Parse()

	cfg, err := app.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := common.NewLogger(common.LoggerConfig{
		Level:  common.LogLevel(cfg.App.LogLevel),
		Output: os.Stderr,
	})
	slog.SetDefault(logger)

	if *namespace != "" {
		cfg.Scanner.Namespace = *namespace
	}
	if *hoursBack > 0 {
		cfg.Scanner.HoursBack = *hoursBack
	}

	clients, err := app.NewKubeClients(&cfg.Kubernetes)
	if err != nil {
		log.Fatalf("failed to create kubernetes clients: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scan := scanner.NewScanner(clients.FullClientSet, scanner.Config{
		Namespace: cfg.Scanner.Namespace,
		HoursBack: cfg.Scanner.HoursBack,
	})

	report, err := scan.Scan(ctx)
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	if err := scan.WriteReport(os.Stdout, report); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
}
