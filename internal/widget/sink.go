package widget

// Kind tags a transcript entry with its direction.
type Kind string

const (
	KindOutgoing Kind = "outgoing"
	KindIncoming Kind = "incoming"
)

// EntryID identifies one transcript entry for later in-place updates.
type EntryID int64

// Sink is the rendering surface the controller drives. It replaces direct
// coupling to any particular markup: a terminal view, a test recorder, or
// anything that can append entries and mutate them in place will do.
type Sink interface {
	// Append adds a new entry to the transcript and returns its id.
	Append(kind Kind, text string) EntryID
	// SetText replaces the entry's displayed text.
	SetText(id EntryID, text string)
	// AppendText adds a streamed chunk to the entry's displayed text.
	AppendText(id EntryID, chunk string)
	// MarkError flags the entry as failed.
	MarkError(id EntryID)
	// ScrollToBottom keeps the latest entry visible.
	ScrollToBottom()
}
