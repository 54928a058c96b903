package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/identity/redisdir"
	"github.com/atty-social/atty/client"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "atty",
		Usage:   "plain-text Bluesky client",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"ATTY_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text or json",
			Value:   "text",
			EnvVars: []string{"ATTY_LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "appview-host",
			Usage:   "method, hostname, and port of AppView used for handle resolution",
			Value:   client.DefaultAppViewHost,
			EnvVars: []string{"ATTY_APPVIEW_HOST"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "optional redis for a handle cache shared between invocations (eg, redis://localhost:6379/0)",
			EnvVars: []string{"ATTY_REDIS_URL"},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Usage:   "max XRPC requests per second (0 for no limit)",
			EnvVars: []string{"ATTY_RATE_LIMIT"},
		},
		&cli.StringFlag{
			Name:    "otel-exporter-otlp-endpoint",
			Usage:   "OTLP HTTP endpoint for trace export; tracing is off when empty",
			EnvVars: []string{"OTEL_EXPORTER_OTLP_ENDPOINT"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		logger, err := setupSlog(cctx.String("log-level"), cctx.String("log-format"))
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return setupTracing(cctx)
	}
	app.After = func(cctx *cli.Context) error {
		if tp, ok := otel.GetTracerProvider().(*tracesdk.TracerProvider); ok {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				slog.Error("failed to shutdown trace exporter", "err", err)
			}
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmdLogin,
		cmdLogout,
		cmdWhoami,
		cmdPost,
		cmdReply,
		cmdQuote,
		cmdLike,
		cmdRepost,
		cmdFollow,
		cmdTimeline,
		cmdThread,
		cmdNotifs,
		cmdResolve,
	}
	return app.Run(args)
}

func setupSlog(level, format string) (*slog.Logger, error) {
	var hopts slog.HandlerOptions
	switch strings.ToLower(level) {
	case "debug":
		hopts.Level = slog.LevelDebug
	case "info":
		hopts.Level = slog.LevelInfo
	case "", "warn":
		hopts.Level = slog.LevelWarn
	case "error":
		hopts.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %#v", level)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(os.Stderr, &hopts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &hopts)
	default:
		return nil, fmt.Errorf("invalid log format: %#v", format)
	}
	return slog.New(handler), nil
}

func setupTracing(cctx *cli.Context) error {
	endpoint := cctx.String("otel-exporter-otlp-endpoint")
	if endpoint == "" {
		return nil
	}
	slog.Debug("setting up trace exporter", "endpoint", endpoint)

	// the exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself; the flag may have come from the command line
	exp, err := otlptracehttp.New(cctx.Context, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("atty"),
			attribute.String("version", versioninfo.Short()),
		)),
	)
	otel.SetTracerProvider(tp)
	return nil
}

// configureClient builds an API client from global flags.
func configureClient(cctx *cli.Context) (*client.Client, error) {
	c := client.NewClient()

	if r := cctx.Float64("rate-limit"); r > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(r), 1)
	}

	var resolver identity.HandleResolver = identity.NewAPIResolver(cctx.String("appview-host"))
	if redisURL := cctx.String("redis-url"); redisURL != "" {
		rr, err := redisdir.NewRedisResolver(resolver, redisURL, time.Hour, 2*time.Minute, 1000)
		if err != nil {
			return nil, err
		}
		resolver = rr
	} else {
		resolver = identity.NewCacheResolver(resolver, 1000, time.Hour, 2*time.Minute)
	}
	c.Resolver = resolver
	return c, nil
}
