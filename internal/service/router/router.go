package router

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/acmenews/newschat/internal/model/news"
)

const routerSystemPrompt = `You are a news question router. Classify the user's question into exactly one news section.
The sections are: tech, world, sports, business.
Respond with only the section name, nothing else.`

const routerUserPrompt = `The question is: {question}`

// Service classifies an incoming question into the news section whose corpus
// should be searched for context. It prefers an LLM classifier and falls back
// to keyword scoring when no model is available or a call fails.
type Service struct {
	classifier compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the router. chatModel may be nil, in which case only the
// keyword heuristic runs.
func NewService(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	svc := &Service{}
	if chatModel == nil {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(routerSystemPrompt),
		schema.UserMessage(routerUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile router chain: %w", err)
	}

	svc.classifier = runnable
	return svc, nil
}

// Classify returns the section to retrieve context from for the question.
func (s *Service) Classify(ctx context.Context, question string) news.Section {
	if s == nil || s.classifier == nil {
		return classifyByKeywords(question)
	}

	msg, err := s.classifier.Invoke(ctx, map[string]any{"question": question})
	if err != nil {
		log.Printf("[router] classifier invoke failed, using keyword fallback: %v", err)
		return classifyByKeywords(question)
	}

	section, ok := parseSection(msg.Content)
	if !ok {
		log.Printf("[router] unrecognized classifier output %q, using keyword fallback", msg.Content)
		return classifyByKeywords(question)
	}

	return section
}

// parseSection extracts a section name from model output, tolerating extra
// punctuation or casing.
func parseSection(content string) (news.Section, bool) {
	token := strings.ToLower(strings.TrimSpace(content))
	token = strings.Trim(token, ".\"'` ")

	section := news.Section(token)
	if news.ValidSection(section) {
		return section, true
	}

	// The model occasionally answers in a sentence; look for a known name.
	for _, candidate := range news.Sections() {
		if strings.Contains(token, string(candidate)) {
			return candidate, true
		}
	}

	return "", false
}
