package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intelliquiz/internal/app"
	"intelliquiz/internal/config"
	"intelliquiz/internal/infra/memory"
	infraopenai "intelliquiz/internal/infra/openai"
	infrapdf "intelliquiz/internal/infra/pdf"
	infrapg "intelliquiz/internal/infra/postgres"
	infraredis "intelliquiz/internal/infra/redis"
	"intelliquiz/internal/quizgen"
	transport "intelliquiz/internal/transport/http"
	"intelliquiz/web"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz-generation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key not configured (set openai.api_key or OPENAI_API_KEY)")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret not configured (set auth.jwt_secret or JWT_SECRET)")
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "4000"
	}

	completer, err := infraopenai.NewCompleter(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Temperature)
	if err != nil {
		return err
	}
	completionTimeout := config.TTLDuration(cfg.OpenAI.Timeout, 60*time.Second)
	generator := quizgen.NewGenerator(completer, infrapdf.NewExtractor(), completionTimeout)

	cacheTTL := config.TTLDuration(cfg.Quiz.CacheTTL, 10*time.Minute)
	var quizCache app.QuizCache = memory.NewQuizCache(cacheTTL)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		quizCache = infraredis.NewQuizCache(redisClient, cacheTTL)
	}

	var (
		users  app.UserRepository
		scores app.ScoreRepository
	)
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		store := infrapg.NewStore(pool)
		users, scores = store, store
	} else {
		log.Printf("no postgres url configured, using in-memory stores")
		users = memory.NewUserRepository()
		scores = memory.NewScoreRepository()
	}

	tokenTTL := config.TTLDuration(cfg.Auth.TokenTTL, 7*24*time.Hour)
	authService := app.NewAuthService(users, cfg.Auth.JWTSecret, tokenTTL)
	quizService := app.NewQuizService(generator, quizCache)
	scoreService := app.NewScoreService(scores, app.NewLeaderboardHub())

	staticAssets, err := web.Static()
	if err != nil {
		return err
	}
	handler := transport.NewServer(authService, quizService, scoreService, cfg.Upload.MaxBytes).Routes(staticAssets)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation requests wait on the completion call
	}

	go func() {
		log.Printf("starting intelliquiz on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
