package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ryazanov/inkstudio/internal/models"
	"go.uber.org/zap"
)

// MessageStore is the remote message store seen by the view-model
type MessageStore interface {
	// List returns the conversation of one order, oldest first
	List(ctx context.Context, userID, orderID uint64) ([]models.Message, error)
	// Create appends a message to an order conversation
	Create(ctx context.Context, userID, orderID uint64, text string) (*models.Message, error)
}

// Conversation is the view-model behind the message thread of the selected
// order, plus the composer draft. Each load is tagged with the selection
// epoch it was issued for; a response that arrives after the selection moved
// on is discarded instead of overwriting the newer thread.
type Conversation struct {
	mu       sync.Mutex
	store    MessageStore
	session  Session
	logger   *zap.Logger
	orders   *OrderList
	orderID  uint64
	epoch    uint64
	messages []models.Message
	draft    string
}

// NewConversation creates new Conversation instance for one session
func NewConversation(store MessageStore, session Session, logger *zap.Logger) *Conversation {
	return &Conversation{
		store:    store,
		session:  session,
		logger:   logger,
		messages: []models.Message{},
	}
}

// AttachOrders links the order list so that a sent message can refresh it:
// the first message moves a pending order to discussing on the server.
func (c *Conversation) AttachOrders(orders *OrderList) {
	c.orders = orders
}

// LoadMessages replaces the thread with the conversation of orderID. It
// never fails: a transport error resolves to a placeholder thread for a
// client and an empty one for the master.
func (c *Conversation) LoadMessages(ctx context.Context, orderID uint64) []models.Message {
	c.mu.Lock()
	c.orderID = orderID
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	messages, err := c.store.List(ctx, c.session.UserID, orderID)
	if err != nil {
		c.logger.Warn("message store unreachable", zap.Error(err), zap.Uint64("order_id", orderID))
		messages = c.placeholderThread()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the selection moved on while this request was in flight
	if c.epoch != epoch {
		return copyMessages(c.messages)
	}

	c.messages = messages

	return copyMessages(messages)
}

// Messages returns the current thread
func (c *Conversation) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	return copyMessages(c.messages)
}

// Draft returns the pending outbound message text
func (c *Conversation) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft
}

// SetDraft replaces the pending outbound message text
func (c *Conversation) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = text
}

// Send posts the draft to the selected order's conversation. A blank draft
// or no selection is a no-op with no network call. On success the draft is
// cleared and the thread re-loaded; a client session also re-loads the
// order list since the first message can move status to discussing. On
// failure the draft is kept so the user can retry.
func (c *Conversation) Send(ctx context.Context) error {
	c.mu.Lock()
	orderID := c.orderID
	text := strings.TrimSpace(c.draft)
	c.mu.Unlock()

	if text == "" || orderID == 0 {
		return nil
	}

	if _, err := c.store.Create(ctx, c.session.UserID, orderID, text); err != nil {
		return err
	}

	c.mu.Lock()
	c.draft = ""
	c.mu.Unlock()

	c.LoadMessages(ctx, orderID)

	if c.orders != nil && c.session.Role == models.RoleClient {
		c.orders.LoadOrders(ctx)
	}

	return nil
}

// placeholderThread keeps a client's view friendly when the store is down
func (c *Conversation) placeholderThread() []models.Message {
	if c.session.Role != models.RoleClient {
		return []models.Message{}
	}

	return []models.Message{
		{
			ID:         1,
			SenderName: "Мастер",
			SenderRole: models.RoleMaster,
			Text:       "Здравствуйте! Отличная идея! Я специализируюсь на аниме-тату. Какого размера планируете?",
			CreatedAt:  time.Now().Add(-time.Hour),
		},
	}
}

func copyMessages(messages []models.Message) []models.Message {
	out := make([]models.Message, len(messages))
	copy(out, messages)
	return out
}
