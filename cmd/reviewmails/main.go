package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/api/handlers/admin"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/debug"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/health"
	"github.com/simonnirfalk/review-mails/internal/api/handlers/webhook"
	"github.com/simonnirfalk/review-mails/internal/api/router"
	"github.com/simonnirfalk/review-mails/internal/api/server"
	"github.com/simonnirfalk/review-mails/internal/archive"
	"github.com/simonnirfalk/review-mails/internal/config"
	"github.com/simonnirfalk/review-mails/internal/mailer"
	"github.com/simonnirfalk/review-mails/internal/metrics"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
	"github.com/simonnirfalk/review-mails/internal/scheduler"
	reviewsvc "github.com/simonnirfalk/review-mails/internal/service/review"
	"github.com/simonnirfalk/review-mails/pkg/dandomain"
	"github.com/simonnirfalk/review-mails/pkg/email"
	"github.com/simonnirfalk/review-mails/pkg/mandrill"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	metrics.Init()

	repo, err := queue.Open(cfg.Database.Path)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open queue database")
	}
	zlog.Logger.Info().Str("path", cfg.Database.Path).Msg("queue database ready")

	auth := dandomain.NewAuth(
		cfg.Dandomain.EffectiveOAuthURL(),
		cfg.Dandomain.ClientID,
		cfg.Dandomain.ClientSecret,
	)
	shop := dandomain.NewClient(cfg.Dandomain.EffectiveGraphQLURL(), auth, cfg.Retry)

	mandrillClient := mandrill.NewClient(cfg.Mandrill.APIKey)
	smtpClient := email.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	m, err := mailer.New(mailer.Config{
		Enabled:        cfg.Mailer.Enabled,
		Channel:        cfg.Mailer.Channel,
		FromEmail:      cfg.Mailer.FromEmail,
		FromName:       cfg.Mailer.FromName,
		Subject:        cfg.Mailer.Subject,
		TemplatePath:   cfg.Mailer.TemplatePath,
		GoogleURL:      cfg.Mailer.GoogleURL,
		PricerunnerURL: cfg.Mailer.PricerunnerURL,
		TrustpilotURL:  cfg.Mailer.TrustpilotURL,
	}, mandrillClient, smtpClient)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create mailer")
	}

	service := reviewsvc.NewService(repo, m, shop, cfg.Review.DelayDays)

	sched := scheduler.New(service, scheduler.Config{
		Interval:         cfg.Scheduler.Interval,
		ReminderMinDays:  cfg.Reminder.MinDays,
		ReminderMaxDays:  cfg.Reminder.MaxDays,
		AllowlistEnabled: cfg.Reminder.AllowlistEnabled,
		Allowlist:        cfg.Reminder.Allowlist,
	})
	go sched.Run(ctx)

	webhookArchive := archive.New(cfg.Webhook.LogDir, cfg.Webhook.FallbackLogDir)

	webhookHandler := webhook.NewHandler(service, val, webhookArchive)
	adminHandler := admin.NewHandler(service)
	healthHandler := health.NewHandler(repo)

	var debugHandler *debug.Handler
	if cfg.Dandomain.Debug {
		debugHandler = debug.NewHandler(auth, shop)
	}

	r := router.New(cfg, webhookHandler, adminHandler, healthHandler, debugHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("review-mails server running")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if err := repo.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close queue database")
	}
}
