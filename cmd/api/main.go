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

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/acmenews/newschat/internal/config"
	"github.com/acmenews/newschat/internal/handler"
	"github.com/acmenews/newschat/internal/handler/contact"
	"github.com/acmenews/newschat/internal/model/news"
	"github.com/acmenews/newschat/internal/service/agent"
	"github.com/acmenews/newschat/internal/service/router"
	"github.com/acmenews/newschat/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	articles := news.NewMemoryStore(news.Seed())
	sessions := session.NewService()

	// Build the chat model once and share it between the question router and
	// the answer chain. Both degrade gracefully without it.
	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize chat model: %v", err)
			log.Println("continuing in retrieval-only mode - check the ARK_* environment variables")
			chatModel = nil
		} else {
			log.Println("chat model initialized successfully")
		}
	} else {
		log.Println("ark credentials not configured, running in retrieval-only mode")
	}

	routerSvc, err := router.NewService(ctx, chatModel)
	if err != nil {
		log.Fatalf("failed to initialize question router: %v", err)
	}

	agentSvc, err := agent.NewService(ctx, chatModel, articles, routerSvc, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize news agent: %v", err)
	}

	notifier := contact.LogNotifier{Recipient: cfg.Contact.Email}

	mux := handler.NewRouter(agentSvc, sessions, notifier)

	startServer(ctx, cfg.Server, mux)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("newschat api listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
