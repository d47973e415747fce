package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/atelier-commerce/order-service/docs"
	"github.com/atelier-commerce/order-service/internal/app"
	"github.com/atelier-commerce/order-service/internal/config"
	"github.com/atelier-commerce/order-service/internal/handler"
	"github.com/atelier-commerce/order-service/internal/notifier"
	"github.com/atelier-commerce/order-service/internal/payments"
	"github.com/atelier-commerce/order-service/internal/postgres"
	"github.com/atelier-commerce/order-service/internal/repo"
	"github.com/atelier-commerce/order-service/internal/service"
	"github.com/atelier-commerce/order-service/pkg/cache"
	"github.com/atelier-commerce/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Checkout, order reads and payment webhook reconciliation
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	statusNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)
	verifier := payments.NewVerifier(conf.Stripe.WebhookSecret)
	checkoutClient := payments.NewCheckoutClient(conf.Stripe)

	reconcileService := service.NewReconcileService(logger, txManager, orderRepo, statusNotifier)
	checkoutService := service.NewCheckoutService(logger, txManager, orderRepo, checkoutClient)
	orderService := service.NewOrderService(logger, orderRepo, orderCache)

	webhookHandler := handler.NewWebhookHandler(logger, verifier, reconcileService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, checkoutService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(statusNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
