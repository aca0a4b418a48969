package chat

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/acmenews/newschat/internal/model/chat"
	"github.com/acmenews/newschat/internal/service/agent"
	"github.com/acmenews/newschat/internal/service/session"
	"github.com/acmenews/newschat/pkg/utils"
)

// DigestHeader carries the hex SHA-256 of the request body, computed by the
// widget over the exact payload bytes it sends.
const DigestHeader = "x-amz-content-sha256"

const emptyQuestionReply = "Please enter a question!"

const recentHistoryLimit = 10

// Handler serves the streaming chat endpoint the widget talks to.
type Handler struct {
	agentSvc *agent.Service
	sessions *session.Service
}

// New creates the chat handler.
func New(agentSvc *agent.Service, sessions *session.Service) *Handler {
	return &Handler{
		agentSvc: agentSvc,
		sessions: sessions,
	}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat accepts {question, thread_id}, verifies the body digest when the
// client sent one, and streams the answer back as plain text, one flushed
// chunk at a time.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if digest := r.Header.Get(DigestHeader); digest != "" {
		sum := sha256.Sum256(body)
		want := hex.EncodeToString(sum[:])
		if subtle.ConstantTimeCompare([]byte(strings.ToLower(digest)), []byte(want)) != 1 {
			utils.RespondError(w, http.StatusBadRequest, "content digest mismatch")
			return
		}
	}

	var payload struct {
		Question string `json:"question"`
		ThreadID string `json:"thread_id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.ThreadID == "" {
		utils.RespondError(w, http.StatusBadRequest, "thread_id is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupStreamHeaders(w)

	question := strings.TrimSpace(payload.Question)
	if question == "" {
		_ = utils.WriteChunk(w, flusher, emptyQuestionReply)
		return
	}

	ctx := r.Context()
	history := h.sessions.Recent(ctx, payload.ThreadID, recentHistoryLimit)

	if err := h.sessions.Append(ctx, chatmodel.Message{
		ThreadID: payload.ThreadID,
		Sender:   chatmodel.SenderUser,
		Content:  question,
	}); err != nil {
		log.Printf("[chat] failed to record user message: %v", err)
	}

	stream, err := h.agentSvc.StreamAnswer(ctx, question, history)
	if err != nil {
		log.Printf("[chat] failed to start answer stream: %v", err)
		_ = utils.WriteChunk(w, flusher, "Something went wrong while answering. Please try again.")
		return
	}
	defer stream.Close()

	var answer strings.Builder
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			// Whatever already went out stays rendered on the widget side;
			// there is no way to retract a partially written body.
			log.Printf("[chat] answer stream interrupted: %v", recvErr)
			return
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}

		answer.WriteString(chunk.Content)
		if err := utils.WriteChunk(w, flusher, chunk.Content); err != nil {
			log.Printf("[chat] client went away mid-stream: %v", err)
			return
		}
	}

	if err := h.sessions.Append(ctx, chatmodel.Message{
		ThreadID: payload.ThreadID,
		Sender:   chatmodel.SenderAssistant,
		Content:  answer.String(),
	}); err != nil {
		log.Printf("[chat] failed to record assistant message: %v", err)
	}

	log.Printf("[chat] completed response for thread=%s, length=%d", payload.ThreadID, answer.Len())
}
