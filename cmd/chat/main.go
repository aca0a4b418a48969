package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/acmenews/newschat/internal/client"
	"github.com/acmenews/newschat/internal/config"
	"github.com/acmenews/newschat/internal/tui"
	"github.com/acmenews/newschat/internal/widget"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file, using system environment: %v", err)
	}

	cfg, err := config.LoadWidget()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	baseURL := flag.String("url", cfg.BaseURL, "base URL of the chat API")
	thinkDelay := flag.Duration("think-delay", cfg.ThinkDelay, "pause before the thinking placeholder appears")
	thread := flag.String("thread", "", "custom thread id, derived from the clock when empty")
	flag.Parse()

	opts := []widget.Option{widget.WithThinkDelay(*thinkDelay)}
	if *thread != "" {
		opts = append(opts, widget.WithThreadID(*thread))
	}

	model := tui.New(client.New(*baseURL), opts...)
	log.Printf("[chat] starting widget, thread=%s, api=%s", model.ThreadID(), *baseURL)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("chat widget exited with error: %v", err)
	}
}
