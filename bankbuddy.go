// Package bankbuddy provides a high-level façade over the conversation
// controller and service abstractions (knowledge, history, locale & logging)
// enabling rapid construction of a banking FAQ chatbot. Most applications
// interact with this package by:
//  1. Creating a Bot via New() (optionally overriding default in-memory stores)
//  2. Submitting user messages (Submit) or category selections (SelectCategory)
//  3. Rendering Messages() and SuggestedQuestions() in their own presentation layer
//
// All defaults are safe for local development and testing; durable
// deployments supply a SQLite-backed history store and a structured logger.
package bankbuddy

import (
	"context"
	"time"

	"github.com/bankbuddy/bankbuddy/chat"
	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/history"
	"github.com/bankbuddy/bankbuddy/intent"
	"github.com/bankbuddy/bankbuddy/knowledge"
	"github.com/bankbuddy/bankbuddy/locale"
	"github.com/bankbuddy/bankbuddy/logging"
	"github.com/bankbuddy/bankbuddy/match"
)

// Options configures the Bot instance.
type Options struct {
	// Language selects the message catalog. Defaults to English.
	Language locale.Language

	// ResponseDelay simulates the bot "thinking" before replying. Tests
	// usually set this to zero.
	ResponseDelay time.Duration

	// OnMessage, if set, receives every transcript message as it is appended.
	OnMessage func(core.Message)

	// Stores (default to in-memory implementations if not provided).
	KnowledgeStore core.KnowledgeStore
	HistoryStore   core.HistoryStore

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Bot is the high-level façade aggregating the matcher, controller and stores.
type Bot struct {
	opts       Options
	controller *chat.Controller
	knowledge  core.KnowledgeStore
	history    core.HistoryStore
}

// New creates a new Bot with optional overrides. Any unset store is
// initialized with an in-memory implementation seeded with the default
// banking dataset.
func New(optFns ...func(o *Options)) *Bot {
	opts := Options{
		Language:      locale.English,
		ResponseDelay: time.Second,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.KnowledgeStore == nil {
		opts.KnowledgeStore = knowledge.NewInMemoryStore()
	}
	if opts.HistoryStore == nil {
		opts.HistoryStore = history.NewInMemoryStore()
	}

	translator := locale.MustNew(opts.Language, func(o *locale.Options) {
		o.Logger = opts.Logger
	})
	detector := intent.NewDetector(opts.KnowledgeStore, translator)
	matcher := match.NewMatcher(opts.KnowledgeStore, detector, func(o *match.Options) {
		o.Logger = opts.Logger
	})
	controller := chat.NewController(opts.KnowledgeStore, opts.HistoryStore, matcher, translator, func(o *chat.Options) {
		o.ResponseDelay = opts.ResponseDelay
		o.OnMessage = opts.OnMessage
		o.Logger = opts.Logger
	})

	return &Bot{opts: opts, controller: controller, knowledge: opts.KnowledgeStore, history: opts.HistoryStore}
}

// Submit runs one conversation turn with the given user text.
func (b *Bot) Submit(ctx context.Context, text string) error {
	return b.controller.SubmitMessage(ctx, text)
}

// SelectCategory activates a topic category.
func (b *Bot) SelectCategory(categoryID string) {
	b.controller.SelectCategory(categoryID)
}

// SelectSuggestion replays a suggested question as user input.
func (b *Bot) SelectSuggestion(ctx context.Context, questionText string) error {
	return b.controller.SelectSuggestion(ctx, questionText)
}

// Messages returns the transcript in append order.
func (b *Bot) Messages() []core.Message {
	return b.controller.Messages()
}

// SuggestedQuestions returns the current suggestion panel.
func (b *Bot) SuggestedQuestions() []core.Question {
	return b.controller.SuggestedQuestions()
}

// Categories returns the selectable topic categories.
func (b *Bot) Categories() ([]core.Category, error) {
	return b.knowledge.Categories()
}

// History returns all logged interactions in append order.
func (b *Bot) History() ([]core.ChatHistoryEntry, error) {
	return b.history.History()
}

// UnansweredQueries returns unmatched queries grouped by normalized text,
// most frequent first.
func (b *Bot) UnansweredQueries() ([]core.UnansweredQuery, error) {
	return b.history.UnansweredQueries()
}

// MarkHelpful records user feedback on a logged interaction.
func (b *Bot) MarkHelpful(entryID string, wasHelpful bool) error {
	return b.controller.MarkHelpful(entryID, wasHelpful)
}

// Controller exposes the underlying conversation controller for callers that
// need direct access (state inspection, transcript rendering).
func (b *Bot) Controller() *chat.Controller {
	return b.controller
}
