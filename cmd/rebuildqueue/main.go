// Command rebuildqueue backfills the review queue from orders already in
// the shop, for recovery after lost webhooks or a fresh database.
//
// Usage: rebuildqueue [daysBack]   (default 10)
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/config"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
	"github.com/simonnirfalk/review-mails/pkg/dandomain"
)

// completedStatusID is the only order status that gets a review mail.
const completedStatusID = 3

func main() {
	zlog.Init()
	cfg := config.Must()

	daysBack := 10
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			zlog.Logger.Fatal().Str("arg", os.Args[1]).Msg("daysBack must be a positive number")
		}
		daysBack = n
	}

	repo, err := queue.Open(cfg.Database.Path)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open queue database")
	}
	defer repo.Close()

	auth := dandomain.NewAuth(
		cfg.Dandomain.EffectiveOAuthURL(),
		cfg.Dandomain.ClientID,
		cfg.Dandomain.ClientSecret,
	)
	shop := dandomain.NewClient(cfg.Dandomain.EffectiveGraphQLURL(), auth, cfg.Retry)

	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -daysBack)

	orders, err := shop.OrdersCreatedSince(ctx, since)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to fetch orders")
	}

	zlog.Logger.Info().Int("orders", len(orders)).Int("days_back", daysBack).Msg("rebuilding queue")

	var queued, skipped int
	for i := range orders {
		order := &orders[i]

		if order.Status.ID != completedStatusID {
			skipped++
			continue
		}

		email := order.Email()
		if email == "" {
			zlog.Logger.Warn().Str("order_id", order.ID).Msg("no email on order, skipping")
			skipped++
			continue
		}

		if _, err := repo.GetJobByOrderID(ctx, order.ID); err == nil {
			zlog.Logger.Info().Str("order_id", order.ID).Msg("job already queued, skipping")
			skipped++
			continue
		}

		createdAt := order.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		in := queue.JobInput{
			OrderID:   order.ID,
			Email:     email,
			Name:      order.RecipientName(),
			CreatedAt: createdAt,
			SendAfter: createdAt.AddDate(0, 0, cfg.Review.DelayDays),
		}
		if err := repo.InsertJob(ctx, in); err != nil {
			zlog.Logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to queue job")
			continue
		}

		zlog.Logger.Info().Str("order_id", order.ID).Str("email", email).Msg("queued review mail")
		queued++
	}

	zlog.Logger.Info().Int("queued", queued).Int("skipped", skipped).Msg("rebuild finished")
}
