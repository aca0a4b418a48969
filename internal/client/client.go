// Package client implements the widget's transport: a single POST per
// question whose response body is consumed incrementally as it streams in.
package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// DigestHeader carries the hex SHA-256 of the request payload so the server
// can verify the body it received is the body the widget signed.
const DigestHeader = "x-amz-content-sha256"

const chatPath = "/api/chat"

// Client talks to the chat endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No request timeout: the response streams for as long as the answer
		// takes, and cancellation belongs to the caller's context.
		httpClient: &http.Client{Timeout: 0},
	}
}

type askRequest struct {
	Question string `json:"question"`
	ThreadID string `json:"thread_id"`
}

// Ask posts the question and feeds each decoded chunk of the streamed
// response to onChunk in arrival order. It returns once the body is
// exhausted, the context ends, or onChunk reports an error.
func (c *Client) Ask(ctx context.Context, question, threadID string, onChunk func(string) error) error {
	payload, err := json.Marshal(askRequest{Question: question, ThreadID: threadID})
	if err != nil {
		return fmt.Errorf("failed to encode chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(DigestHeader, PayloadDigest(payload))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("chat request failed: %s: %s", res.Status, strings.TrimSpace(string(body)))
	}

	// A read boundary can land in the middle of a multi-byte rune; the
	// trailing incomplete sequence is held back until the next read so
	// onChunk only ever sees whole runes.
	buf := make([]byte, 4096)
	var pending []byte
	for {
		n, readErr := res.Body.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			complete, rest := splitTrailingRune(pending)
			if len(complete) > 0 {
				if err := onChunk(string(complete)); err != nil {
					return err
				}
			}
			pending = append(pending[:0], rest...)
		}
		if readErr == io.EOF {
			if len(pending) > 0 {
				if err := onChunk(string(pending)); err != nil {
					return err
				}
			}
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("chat stream read failed: %w", readErr)
		}
	}
}

// splitTrailingRune splits b into the longest prefix of whole UTF-8 runes and
// the trailing bytes of an unfinished sequence, if any.
func splitTrailingRune(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && len(b)-i <= utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			return b, nil
		}
		return b[:i], b[i:]
	}
	return b, nil
}

// PayloadDigest returns the lowercase hex SHA-256 of the payload bytes,
// always 64 characters and deterministic for identical input.
func PayloadDigest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
