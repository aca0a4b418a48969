package tui

import (
	"sync/atomic"

	"github.com/acmenews/newschat/internal/widget"
)

type eventKind int

const (
	evAppend eventKind = iota
	evSetText
	evAppendText
	evMarkError
	evScroll
)

type sinkEvent struct {
	kind      eventKind
	id        widget.EntryID
	entryKind widget.Kind
	text      string
}

// ChannelSink bridges the widget controller, which runs in command
// goroutines, into the bubbletea update loop. Entry ids are handed out
// synchronously; the rendering effect of each call is delivered as an event
// the model consumes in order.
type ChannelSink struct {
	events chan sinkEvent
	nextID atomic.Int64
}

// NewChannelSink creates the sink with a buffered event queue.
func NewChannelSink() *ChannelSink {
	return &ChannelSink{events: make(chan sinkEvent, 64)}
}

// Events exposes the ordered stream of rendering events.
func (s *ChannelSink) Events() <-chan sinkEvent {
	return s.events
}

// Append implements widget.Sink.
func (s *ChannelSink) Append(kind widget.Kind, text string) widget.EntryID {
	id := widget.EntryID(s.nextID.Add(1))
	s.events <- sinkEvent{kind: evAppend, id: id, entryKind: kind, text: text}
	return id
}

// SetText implements widget.Sink.
func (s *ChannelSink) SetText(id widget.EntryID, text string) {
	s.events <- sinkEvent{kind: evSetText, id: id, text: text}
}

// AppendText implements widget.Sink.
func (s *ChannelSink) AppendText(id widget.EntryID, chunk string) {
	s.events <- sinkEvent{kind: evAppendText, id: id, text: chunk}
}

// MarkError implements widget.Sink.
func (s *ChannelSink) MarkError(id widget.EntryID) {
	s.events <- sinkEvent{kind: evMarkError, id: id}
}

// ScrollToBottom implements widget.Sink.
func (s *ChannelSink) ScrollToBottom() {
	s.events <- sinkEvent{kind: evScroll}
}
