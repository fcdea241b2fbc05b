package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/dialects/postgresql"

	"github.com/bitcart/checkout"
	"github.com/bitcart/checkout/httputils"
	"github.com/bitcart/checkout/provider"
	"github.com/bitcart/checkout/provider/bitcart"
	"github.com/bitcart/checkout/shop"
)

var (
	VERSION = "dev"

	onLoggerDev         = flag.Bool("logger-dev", false, "Enable development logger.")
	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	var wg sync.WaitGroup
	flag.Parse()
	setupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	zap.L().Info("Starting checkout gateway...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	sqlDB := setupPostgres(os.Getenv("PG_CONN"), 0, 5, 5)
	db := reform.NewDB(sqlDB, postgresql.Dialect, reform.NewPrintfLogger(zap.L().Sugar().Debugf))
	if _, err := db.Exec("SELECT version();"); err != nil {
		zap.L().Panic("Failed to check version to PostgreSQL.", zap.Error(err))
	}

	var nc *nats.EncodedConn
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		conn, err := nats.Connect(natsURL, nats.MaxReconnects(-1))
		if err != nil {
			zap.L().Panic("Failed connect to NATS.", zap.Error(err))
		}
		defer conn.Close()
		nc, err = nats.NewEncodedConn(conn, nats.JSON_ENCODER)
		if err != nil {
			zap.L().Panic("Failed create encoded conn to NATS.", zap.Error(err))
		}
		zap.L().Info("NATS - Connected!")
	}

	cfg := checkout.Config{
		APIURL:          os.Getenv("BITCART_API_URL"),
		StoreID:         os.Getenv("BITCART_STORE_ID"),
		AdminURL:        os.Getenv("BITCART_ADMIN_URL"),
		StoreURL:        os.Getenv("STORE_URL"),
		NotificationURL: os.Getenv("BITCART_NOTIFICATION_URL"),
		RedirectURL:     os.Getenv("BITCART_REDIRECT_URL"),
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Panic("Gateway is not configured.", zap.Error(err))
	}

	orders := shop.NewShopPG(db)
	annotations := &provider.Store{DB: db}
	bitcartProvider := bitcart.NewProvider(orders, annotations, cfg, nc)

	portWeb := os.Getenv("PORT")
	if portWeb == "" {
		portWeb = "8081"
	}
	zap.L().Debug("WEB - get port to listen", zap.String("got_port", portWeb))

	e := echo.New()
	e.HideBanner = true
	e.Use(echo_middleware.Recover())
	e.Use(echo_middleware.Logger())
	e.Use(echo_middleware.BodyLimit("64K"))

	e.POST(bitcart.WebhookPath, bitcartProvider.NotificationHandler())
	e.POST("/checkout/:order_id", bitcartProvider.CheckoutHandler())
	e.GET("/metrics", echo.WrapHandler(httputils.MetricsHandler()))

	wg.Add(1)
	go func() {
		defer wg.Done()
		zap.L().Info("start checkout gateway server",
			zap.String("address", ":"+portWeb),
			zap.Strings("paths", []string{
				bitcart.WebhookPath,
				"/checkout/:order_id",
				"/metrics",
			}),
		)
		if err := e.Start(":" + portWeb); err != nil && err != http.ErrServerClosed {
			zap.L().Error("failed run checkout gateway server", zap.Error(err))
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("failed shutdown checkout gateway server", zap.Error(err))
		}
		zap.L().Debug("success shutdown checkout gateway server")
	}()
	wg.Wait()
}

// setupLogger configures the global zap logger.
func setupLogger() {
	level := zapcore.InfoLevel
	if *onLoggerDebugLevelF {
		level = zapcore.DebugLevel
	}
	config := zap.NewProductionConfig()
	if *onLoggerDev {
		config = zap.NewDevelopmentConfig()
	}
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func setupPostgres(conn string, maxLifetime time.Duration, maxOpen, maxIdle int) *sql.DB {
	sqlDB, err := sql.Open("postgres", conn)
	if err != nil {
		zap.L().Panic("Failed to connect to PostgreSQL.", zap.Error(err))
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if err = sqlDB.Ping(); err != nil {
		zap.L().Panic("Failed to connect ping PostgreSQL.", zap.Error(err))
	}
	zap.L().Info("Postgres - Connected!")

	return sqlDB
}
