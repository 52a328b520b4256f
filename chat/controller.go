// Package chat orchestrates conversation turns: it owns the message
// transcript, invokes the matcher, applies the fallback heuristics, logs
// interactions to the history store and maintains the suggested-question
// panel for the presentation layer.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/internal/textutil"
	"github.com/bankbuddy/bankbuddy/locale"
	"github.com/bankbuddy/bankbuddy/logging"
	"github.com/bankbuddy/bankbuddy/match"
)

// State models the per-session turn cycle.
type State int

const (
	// StateIdle means no turn is in flight.
	StateIdle State = iota
	// StateAwaitingResponse covers the window between the user message being
	// appended and the bot response landing.
	StateAwaitingResponse
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting_response"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyMessage is returned when a submitted message is empty or
	// whitespace-only. The transcript is left untouched.
	ErrEmptyMessage = fmt.Errorf("message is empty")
)

const (
	// shortQueryLength is the normalized-input length below which an
	// unmatched query without banking keywords gets the gentler short-query
	// prompt instead of the generic default response.
	shortQueryLength = 10
	// followUpTokenLimit: inputs with fewer whitespace tokens than this get
	// a category follow-up suggestion after a matched turn.
	followUpTokenLimit = 3
	// maxSuggestions caps the suggested-question panel.
	maxSuggestions = 3
)

// Controller drives one chat session. Turns are serialized: concurrent
// SubmitMessage calls queue FIFO behind an internal mutex rather than
// interleave, which keeps the single-writer assumption of the history store
// intact.
type Controller struct {
	knowledge  core.KnowledgeStore
	history    core.HistoryStore
	matcher    *match.Matcher
	translator *locale.Translator
	logger     logging.Logger

	responseDelay time.Duration
	onMessage     func(core.Message)

	turnMu sync.Mutex // serializes whole turns

	mu               sync.RWMutex // guards the fields below
	state            State
	messages         []core.Message
	activeCategoryID string
	suggestionGen    uint64
	suggestions      []core.Question
}

// Options configures Controller construction.
type Options struct {
	// ResponseDelay simulates the bot "thinking" before its message is
	// appended. Fixed per controller so tests can await it deterministically.
	ResponseDelay time.Duration
	// OnMessage, if set, is invoked for every appended transcript message.
	OnMessage func(core.Message)
	// Logger receives turn diagnostics and degraded-lookup warnings.
	Logger logging.Logger
}

// NewController constructs a Controller and appends the localized welcome
// message as the first transcript entry.
func NewController(
	knowledge core.KnowledgeStore,
	history core.HistoryStore,
	matcher *match.Matcher,
	translator *locale.Translator,
	optFns ...func(o *Options),
) *Controller {
	opts := Options{
		ResponseDelay: time.Second,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Controller{
		knowledge:     knowledge,
		history:       history,
		matcher:       matcher,
		translator:    translator,
		logger:        opts.Logger,
		responseDelay: opts.ResponseDelay,
		onMessage:     opts.OnMessage,
		state:         StateIdle,
		messages:      []core.Message{},
	}
	c.appendMessage(core.NewBotMessage(translator.T("welcomeMessage")))
	return c
}

// State returns the current turn state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Messages returns a copy of the transcript in append order.
func (c *Controller) Messages() []core.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]core.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// SuggestedQuestions returns the current suggested-question panel (at most
// three entries for the active category).
func (c *Controller) SuggestedQuestions() []core.Question {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]core.Question, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// ActiveCategoryID returns the category backing the suggestion panel, or ""
// when none is active.
func (c *Controller) ActiveCategoryID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeCategoryID
}

// SubmitMessage runs one full turn: append the user message, resolve a
// response through the matcher, append the bot message after the response
// delay, log the interaction, and optionally schedule a category follow-up.
// Empty or whitespace-only input is rejected with ErrEmptyMessage and leaves
// the transcript untouched. The context cancels the response delay.
func (c *Controller) SubmitMessage(ctx context.Context, text string) error {
	input := textutil.Normalize(text)
	if input == "" {
		return ErrEmptyMessage
	}

	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	start := time.Now()
	c.appendMessage(core.NewUserMessage(text))
	c.setState(StateAwaitingResponse)
	defer c.setState(StateIdle)

	matched := c.matcher.FindBestMatch(text)

	if err := c.wait(ctx); err != nil {
		return err
	}

	response := c.resolveResponse(input, matched)
	c.appendMessage(core.NewBotMessage(response))

	categoryID := ""
	if matched != nil && len(matched.CategoryIDs) > 0 {
		categoryID = matched.CategoryIDs[0]
	}
	c.setActiveCategory(categoryID)

	c.logInteraction(text, response, matched)
	c.logger.Debug("turn completed", "matched", matched != nil, "duration", time.Since(start))

	if matched != nil && categoryID != "" && len(textutil.Tokens(text)) < followUpTokenLimit {
		c.appendFollowUp(ctx, categoryID)
	}

	return nil
}

// SelectCategory activates a category from the presentation layer: the
// suggestion panel is refreshed and a bot message introduces the topic. The
// interaction is UI-only and is not logged to history.
func (c *Controller) SelectCategory(categoryID string) {
	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	c.setActiveCategory(categoryID)

	name, ok := c.categoryName(categoryID)
	if !ok {
		// Unknown category: keep the panel refresh, skip the intro line.
		return
	}
	c.appendMessage(core.NewBotMessage(c.translator.T("commonQuestionsAbout", name)))
}

// SelectSuggestion replays a suggested question as if the user had typed it.
func (c *Controller) SelectSuggestion(ctx context.Context, questionText string) error {
	return c.SubmitMessage(ctx, questionText)
}

// MarkHelpful records user feedback on a logged interaction.
func (c *Controller) MarkHelpful(entryID string, wasHelpful bool) error {
	return c.history.MarkHelpfulness(entryID, wasHelpful)
}

// resolveResponse picks the bot utterance: the matched answer when available,
// otherwise a fallback chosen by the short-query heuristic (normalized length
// under 10 with no banking keyword gets the gentler prompt).
func (c *Controller) resolveResponse(input string, matched *core.Question) string {
	if matched != nil {
		return matched.Answer
	}
	if len(input) < shortQueryLength && !match.ContainsBankingKeyword(input) {
		return c.translator.T("shortQueryResponse")
	}
	return c.translator.T("defaultResponse")
}

// logInteraction persists the turn. Synthetic ids never reach the history
// store; a synthetic or absent match is logged as unmatched.
func (c *Controller) logInteraction(userText, response string, matched *core.Question) {
	var matchedID *string
	if matched != nil && !matched.IsSynthetic() {
		id := matched.ID
		matchedID = &id
	}
	if err := c.history.LogInteraction(userText, response, matchedID); err != nil {
		c.logger.Error("failed to log chat interaction", "error", err)
	}
}

// appendFollowUp appends the "learn more about X" message after another
// response delay. Lookup failures degrade to omitting the follow-up.
func (c *Controller) appendFollowUp(ctx context.Context, categoryID string) {
	name, ok := c.categoryName(categoryID)
	if !ok {
		return
	}
	if err := c.wait(ctx); err != nil {
		return
	}
	c.appendMessage(core.NewBotMessage(c.translator.T("learnMoreAboutCategory", name)))
}

// categoryName resolves a display name for the category, preferring the
// localized catalog entry over the stored name.
func (c *Controller) categoryName(categoryID string) (string, bool) {
	categories, err := c.knowledge.Categories()
	if err != nil {
		c.logger.Warn("category lookup failed", "error", err)
		return "", false
	}
	for _, cat := range categories {
		if cat.ID != categoryID {
			continue
		}
		key := "category_" + categoryID
		if name := c.translator.T(key); name != key {
			return name, true
		}
		return cat.Name, true
	}
	return "", false
}

// setActiveCategory records the active category and refreshes the suggestion
// panel. Each refresh carries a generation number; a lookup that resolves
// after a newer category change is discarded, so the last change wins.
func (c *Controller) setActiveCategory(categoryID string) {
	c.mu.Lock()
	c.activeCategoryID = categoryID
	c.suggestionGen++
	gen := c.suggestionGen
	c.mu.Unlock()

	if categoryID == "" {
		c.storeSuggestions(gen, nil)
		return
	}

	questions, err := c.knowledge.QuestionsByCategory(categoryID)
	if err != nil {
		c.logger.Warn("suggestion lookup failed", "category_id", categoryID, "error", err)
		questions = nil
	}
	if len(questions) > maxSuggestions {
		questions = questions[:maxSuggestions]
	}
	c.storeSuggestions(gen, questions)
}

// storeSuggestions installs a suggestion panel result unless it is stale.
func (c *Controller) storeSuggestions(gen uint64, questions []core.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.suggestionGen {
		return
	}
	c.suggestions = questions
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Controller) appendMessage(msg core.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
	if c.onMessage != nil {
		c.onMessage(msg)
	}
}

// wait blocks for the configured response delay or until the context is done.
func (c *Controller) wait(ctx context.Context) error {
	if c.responseDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.responseDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Transcript renders the conversation as plain text, one line per message.
// Intended for debugging and the console example.
func (c *Controller) Transcript() string {
	var b strings.Builder
	for _, m := range c.Messages() {
		author := "user"
		if m.IsBot {
			author = "bot"
		}
		fmt.Fprintf(&b, "[%s] %s\n", author, m.Content)
	}
	return b.String()
}
