// Package widget implements the chat widget's conversation flow: it turns
// submitted input into transcript entries and streams the server's answer
// into the most recent entry. Rendering goes through the Sink interface and
// the question travels the call chain as an explicit argument, so concurrent
// submissions each operate on their own captured entry.
package widget

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const (
	thinkingText = "Thinking..."
	errorText    = "Something went wrong. Please try again."

	// DefaultThinkDelay paces the placeholder so the exchange reads as the
	// assistant taking a moment, matching the hosted widget's feel.
	DefaultThinkDelay = 600 * time.Millisecond
)

// Asker issues one question and feeds decoded response chunks to onChunk as
// they arrive.
type Asker interface {
	Ask(ctx context.Context, question, threadID string, onChunk func(string) error) error
}

// Controller owns one conversation. The thread id is derived once at
// construction, the way the page script derived it once per page load.
type Controller struct {
	sink       Sink
	asker      Asker
	threadID   string
	thinkDelay time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithThinkDelay overrides the pause before the placeholder entry appears.
func WithThinkDelay(d time.Duration) Option {
	return func(c *Controller) { c.thinkDelay = d }
}

// WithThreadID overrides the derived thread id.
func WithThreadID(id string) Option {
	return func(c *Controller) { c.threadID = id }
}

// New creates a controller bound to a sink and a transport.
func New(sink Sink, asker Asker, opts ...Option) *Controller {
	c := &Controller{
		sink:       sink,
		asker:      asker,
		threadID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		thinkDelay: DefaultThinkDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ThreadID returns the conversation's correlation token.
func (c *Controller) ThreadID() string {
	return c.threadID
}

// Submit runs one exchange: it appends the outgoing entry, waits the thinking
// delay, appends the placeholder entry, and streams the response into it.
// Empty or whitespace-only input is a no-op: no entries, no request.
func (c *Controller) Submit(ctx context.Context, raw string) error {
	question := strings.TrimSpace(raw)
	if question == "" {
		return nil
	}

	c.sink.Append(KindOutgoing, question)
	c.sink.ScrollToBottom()

	if err := c.wait(ctx); err != nil {
		return err
	}

	entry := c.sink.Append(KindIncoming, thinkingText)
	c.sink.ScrollToBottom()

	return c.stream(ctx, entry, question)
}

// stream fetches the answer into the given entry. The first chunk replaces
// the placeholder; every later chunk appends. On failure the entry is flagged
// exactly once and its text replaced with an explanation. The transcript is
// scrolled once more whatever the outcome.
func (c *Controller) stream(ctx context.Context, entry EntryID, question string) error {
	defer c.sink.ScrollToBottom()

	cleared := false
	err := c.asker.Ask(ctx, question, c.threadID, func(chunk string) error {
		if !cleared {
			c.sink.SetText(entry, "")
			cleared = true
		}
		c.sink.AppendText(entry, chunk)
		c.sink.ScrollToBottom()
		return nil
	})
	if err != nil {
		c.sink.MarkError(entry)
		c.sink.SetText(entry, errorText)
		return err
	}

	// A successful stream can end without producing a single chunk; the
	// placeholder still has to go.
	if !cleared {
		c.sink.SetText(entry, "")
	}

	return nil
}

// wait blocks for the thinking delay or until the context ends.
func (c *Controller) wait(ctx context.Context) error {
	if c.thinkDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.thinkDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
