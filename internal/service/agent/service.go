package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/acmenews/newschat/internal/config"
	"github.com/acmenews/newschat/internal/model/chat"
	"github.com/acmenews/newschat/internal/model/news"
	"github.com/acmenews/newschat/internal/service/router"
)

const systemPrompt = `You are a helpful news article search assistant. Your task is to provide an accurate and relevant answer to a user's question.
Use the provided news articles, supplied as context, to answer the user's question. If there is no supporting context to properly answer the question,
politely indicate that you don't have any supporting news information to properly answer the question.`

const questionPrompt = `The context is provided as: {context}
The question is provided as: {question}`

const historyLimit = 10
const retrievalLimit = 3

// Service answers news questions by routing them to a section, retrieving
// supporting articles, and generating a response with the configured chat
// model. Without model credentials it degrades to retrieval-only answers so
// the rest of the stack still runs end to end.
type Service struct {
	chatModel model.ChatModel
	articles  news.Store
	router    *router.Service
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService wires the answer chain. chatModel may be nil for degraded mode.
func NewService(ctx context.Context, chatModel model.ChatModel, articles news.Store, routerSvc *router.Service, cfg config.AIConfig) (*Service, error) {
	svc := &Service{
		chatModel: chatModel,
		articles:  articles,
		router:    routerSvc,
		cfg:       cfg,
	}

	if chatModel == nil {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage(questionPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile answer chain: %w", err)
	}

	svc.chain = runnable
	return svc, nil
}

// Enabled reports whether a chat model backs the service.
func (s *Service) Enabled() bool {
	return s != nil && s.chain != nil
}

// StreamingEnabled reports whether responses should stream token by token.
func (s *Service) StreamingEnabled() bool {
	return s.Enabled() && s.cfg.StreamResponse
}

// StreamAnswer routes the question, retrieves context, and streams the answer.
// In degraded mode the retrieval summary is streamed instead.
func (s *Service) StreamAnswer(ctx context.Context, question string, history []chat.Message) (*schema.StreamReader[*schema.Message], error) {
	section, articles := s.retrieve(ctx, question)

	if !s.Enabled() {
		return schema.StreamReaderFromArray(retrievalChunks(section, articles)), nil
	}

	input := s.buildChainInput(question, articles, history)
	if !s.cfg.StreamResponse {
		response, err := s.chain.Invoke(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to run answer chain: %w", err)
		}
		return schema.StreamReaderFromArray([]*schema.Message{response}), nil
	}

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream answer chain output: %w", err)
	}

	return stream, nil
}

// Answer generates a complete response in one call.
func (s *Service) Answer(ctx context.Context, question string, history []chat.Message) (*schema.Message, error) {
	section, articles := s.retrieve(ctx, question)

	if !s.Enabled() {
		chunks := retrievalChunks(section, articles)
		return schema.ConcatMessages(chunks)
	}

	response, err := s.chain.Invoke(ctx, s.buildChainInput(question, articles, history))
	if err != nil {
		return nil, fmt.Errorf("failed to run answer chain: %w", err)
	}

	log.Printf("[agent] generated response, section=%s, length=%d", section, len(response.Content))
	return response, nil
}

func (s *Service) retrieve(ctx context.Context, question string) (news.Section, []news.Article) {
	section := s.router.Classify(ctx, question)
	log.Printf("[agent] routed question to section=%s", section)

	articles := s.articles.Search(section, question, retrievalLimit)
	if len(articles) == 0 {
		// Fall back to the freshest section coverage rather than answering
		// with no context at all.
		articles = s.articles.List(section)
		if len(articles) > retrievalLimit {
			articles = articles[:retrievalLimit]
		}
	}

	return section, articles
}

func (s *Service) buildChainInput(question string, articles []news.Article, history []chat.Message) map[string]any {
	return map[string]any{
		"context":  formatContext(articles),
		"question": question,
		"history":  buildHistoryMessages(history),
	}
}

// formatContext flattens retrieved articles into the prompt context block.
func formatContext(articles []news.Article) string {
	if len(articles) == 0 {
		return "No supporting articles were found."
	}

	var builder strings.Builder
	for i, article := range articles {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(fmt.Sprintf("Title: %s\nSummary: %s\nArticle: %s", article.Title, article.Summary, article.Body))
	}
	return builder.String()
}

func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}

// retrievalChunks produces the degraded-mode response as a sequence of
// assistant message chunks so the handler can exercise the same streaming
// path it uses with a live model.
func retrievalChunks(section news.Section, articles []news.Article) []*schema.Message {
	if len(articles) == 0 {
		return []*schema.Message{
			schema.AssistantMessage("I don't have any supporting news information to properly answer that question.", nil),
		}
	}

	chunks := make([]*schema.Message, 0, len(articles)+1)
	chunks = append(chunks, schema.AssistantMessage(fmt.Sprintf("Here is what recent %s coverage says. ", section), nil))
	for _, article := range articles {
		chunks = append(chunks, schema.AssistantMessage(fmt.Sprintf("%s: %s ", article.Title, article.Summary), nil))
	}
	return chunks
}
