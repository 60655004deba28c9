package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bestbuycongo/starlink-inquiry/internal/config"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/database"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/handlers"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/middleware"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/integration/emailapi"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/mail"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/queue"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.NewDBConnection(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, cfg.Database.Driver); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Repository
	repo := database.NewInquiryRepository(db, cfg.Database.Driver)

	// 2. Notify step
	mailSender := mail.NewEmailSender(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password,
		cfg.SMTP.FromEmail, cfg.SMTP.FromName, cfg.SMTP.Enabled,
	)

	var (
		notifier usecase.Notifier
		broker   handlers.Broker
	)
	workerDone := make(chan struct{})

	switch cfg.Notify.Driver {
	case config.NotifyEmailAPI:
		notifier = emailapi.NewClient(cfg.EmailAPI.URL, cfg.EmailAPI.ServiceID, cfg.EmailAPI.PublicKey, cfg.EmailAPI.AccessToken).
			OnError(middleware.RecordIntegrationError)
		close(workerDone)

	case config.NotifyQueue:
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL())
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer rabbitMQ.Close()

		notifier = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ

		// 3. Worker (drains the queue through SMTP)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		worker.OnError = middleware.RecordIntegrationError
		go func() {
			defer close(workerDone)
			if err := worker.Start(ctx, queue.QueueName); err != nil {
				log.Printf("[WORKER] stopped: %v", err)
			}
		}()

	default:
		notifier = mailSender
		close(workerDone)
	}

	// 4. Use case
	transport := usecase.NewTransport(repo, notifier, cfg.Notify.TemplateID, cfg.Notify.Recipient)
	submitUC := usecase.NewSubmitInquiryUseCase(transport, middleware.Recorder{})

	// 5. Router
	limiter := handlers.NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	limiter.TrustProxy = cfg.App.TrustProxy
	defer limiter.Stop()

	router, err := newRouter(cfg, routerDeps{
		UseCase: submitUC,
		Limiter: limiter,
		Health:  handlers.NewHealthHandler(repo, broker, cfg.Notify.Driver, cfg.App.Version),
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("%s listening on %s (store=%s, notify=%s)", cfg.App.Name, cfg.Addr(), cfg.Database.Driver, cfg.Notify.Driver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		log.Printf("server error: %v", err)
		stop()
	case <-ctx.Done():
		log.Println("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		httpServer.Close()
	}
	<-workerDone

	log.Println("server stopped")
}
