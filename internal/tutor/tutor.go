// Package tutor orchestrates the chat between the learner and the LLM
// provider: transcript state, the bounded history window, fallback
// replies when the provider is missing or failing, and event logging
// for every turn.
package tutor

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/pushpullleg/renaissance/internal/digest"
	"github.com/pushpullleg/renaissance/internal/llm"
	"github.com/pushpullleg/renaissance/internal/store"
)

// SystemPrompt pins the model to data engineering topics.
const SystemPrompt = "You are an Adaptive AI Tutor for Data Engineers. " +
	"Focus ONLY on data engineering topics such as Python, SQL, " +
	"data storage, data pipelines, batch vs streaming, cloud " +
	"services, governance and testing. " +
	"Explain concepts clearly and concisely using step-by-step " +
	"reasoning when helpful. Do NOT ask quiz questions unless " +
	"the user explicitly requests practice questions."

// historyWindow bounds how many transcript turns are sent per request.
const historyWindow = 6

// chatTemperature keeps replies focused rather than creative.
const chatTemperature = 0.2

// FallbackParseFailure is returned when the provider answered but no
// text could be extracted from its response.
const FallbackParseFailure = "I generated a response but could not parse the text output."

// FallbackOffline is returned when a provider call fails. The failure is
// absorbed here: no retry, and the turn is logged like any other reply.
const FallbackOffline = "I'm having trouble contacting the full AI service right now, " +
	"but conceptually: I am your Data Engineer tutor. Ask me about " +
	"storage, pipelines, SQL, or cloud and I'll guide you based on " +
	"the roadmap."

// FallbackNoClient is returned when no provider is configured at all.
const FallbackNoClient = "I don't have direct access to the LLM in this environment, but " +
	"I'm your Data Engineer tutor. Use the roadmap and assessment " +
	"above as your guide, and we can still talk through concepts."

// Turn is one transcript entry.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// digestSignature records the last injected recap and the transcript
// length right after injection. Re-requesting a recap before any new
// turns is a no-op.
type digestSignature struct {
	text string
	size int
}

// Orchestrator owns one chat session: the transcript, the provider and
// the per-session id stamped on every logged chat event.
type Orchestrator struct {
	log       *store.Log
	provider  llm.Provider // nil means no client is configured
	userID    string
	userName  string
	sessionID string

	transcript []Turn
	lastDigest *digestSignature
}

// New creates an Orchestrator for one chat session. provider may be nil;
// replies then come from the fixed no-client fallback.
func New(log *store.Log, provider llm.Provider, userID, userName string) *Orchestrator {
	return &Orchestrator{
		log:       log,
		provider:  provider,
		userID:    userID,
		userName:  userName,
		sessionID: uuid.NewString(),
	}
}

// Transcript returns a copy of the session transcript, oldest first.
func (o *Orchestrator) Transcript() []Turn {
	out := make([]Turn, len(o.transcript))
	copy(out, o.transcript)
	return out
}

// SessionID returns the id stamped on this session's chat events.
func (o *Orchestrator) SessionID() string {
	return o.sessionID
}

// Send appends the user's message to the transcript, asks the provider
// for a reply and appends that too. Provider failures never surface: the
// reply falls back to a fixed string instead. The returned error is only
// for event-log writes.
func (o *Orchestrator) Send(ctx context.Context, input string) (string, error) {
	o.transcript = append(o.transcript, Turn{Role: "user", Content: input})
	if err := o.logTurn(ctx, "user", input); err != nil {
		return "", err
	}

	reply := o.generateReply(ctx)

	reply = strings.TrimSpace(reply)
	if o.userName != "" && !strings.Contains(strings.ToLower(reply), strings.ToLower(o.userName)) {
		reply = o.userName + ", " + reply
	}

	o.transcript = append(o.transcript, Turn{Role: "assistant", Content: reply})
	if err := o.logTurn(ctx, "assistant", reply); err != nil {
		return reply, err
	}
	return reply, nil
}

// InjectRecap builds a practice recap from the transcript and appends it
// as an assistant turn. A second request with no new turns since the
// last injection is a no-op returning the previous recap; the bool
// reports whether an injection happened.
func (o *Orchestrator) InjectRecap(ctx context.Context) (string, bool, error) {
	if o.lastDigest != nil && o.lastDigest.size == len(o.transcript) {
		return o.lastDigest.text, false, nil
	}

	msgs := make([]digest.Message, len(o.transcript))
	for i, t := range o.transcript {
		msgs[i] = digest.Message{Role: t.Role, Content: t.Content}
	}
	recap := digest.Build(msgs)

	o.transcript = append(o.transcript, Turn{Role: "assistant", Content: recap})
	if err := o.logTurn(ctx, "assistant", recap); err != nil {
		return recap, true, err
	}
	o.lastDigest = &digestSignature{text: recap, size: len(o.transcript)}
	return recap, true, nil
}

// generateReply calls the provider over the last turns of the transcript
// and maps every failure mode to its fixed fallback string.
func (o *Orchestrator) generateReply(ctx context.Context) string {
	if o.provider == nil {
		return FallbackNoClient
	}

	window := o.transcript
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	messages := make([]llm.Message, len(window))
	for i, t := range window {
		role := llm.RoleUser
		if t.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages[i] = llm.Message{Role: role, Content: t.Content}
	}

	resp, err := o.provider.Generate(ctx, llm.Request{
		System:      SystemPrompt,
		Messages:    messages,
		Temperature: chatTemperature,
	})
	if err != nil {
		return FallbackOffline
	}
	if strings.TrimSpace(resp.Text) == "" {
		return FallbackParseFailure
	}
	return resp.Text
}

func (o *Orchestrator) logTurn(ctx context.Context, role, content string) error {
	return o.log.Append(ctx, store.KindChatMessage, o.userID, map[string]any{
		"role":       role,
		"content":    content,
		"session_id": o.sessionID,
	})
}
