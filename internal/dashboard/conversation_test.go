package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeMessageStore is an in-memory MessageStore. An optional gate channel
// blocks List until released, to stage in-flight loads.
type fakeMessageStore struct {
	mu              sync.Mutex
	messagesByOrder map[uint64][]models.Message
	failing         bool
	gate            chan struct{}
	nextID          uint64
	listCalls       int
	createCalls     int
}

func (s *fakeMessageStore) List(_ context.Context, userID, orderID uint64) ([]models.Message, error) {
	s.mu.Lock()
	s.listCalls++
	gate := s.gate
	s.gate = nil
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return nil, errStoreDown
	}

	thread := s.messagesByOrder[orderID]
	out := make([]models.Message, len(thread))
	copy(out, thread)
	return out, nil
}

func (s *fakeMessageStore) Create(_ context.Context, userID, orderID uint64, text string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	if s.failing {
		return nil, errStoreDown
	}

	s.nextID++
	msg := models.Message{ID: s.nextID, OrderID: orderID, SenderID: userID, Text: text}
	if s.messagesByOrder == nil {
		s.messagesByOrder = map[uint64][]models.Message{}
	}
	s.messagesByOrder[orderID] = append(s.messagesByOrder[orderID], msg)
	return &msg, nil
}

func TestConversation_LoadMessages(t *testing.T) {
	store := &fakeMessageStore{messagesByOrder: map[uint64][]models.Message{
		10: {
			{ID: 1, OrderID: 10, SenderName: "Клиент", Text: "Здравствуйте!"},
			{ID: 2, OrderID: 10, SenderName: "Мастер", Text: "Добрый день"},
		},
	}}
	conv := NewConversation(store, clientSession, zap.NewNop())

	got := conv.LoadMessages(context.Background(), 10)
	require.Len(t, got, 2)
	assert.Equal(t, got, conv.Messages())
}

func TestConversation_LoadMessages_StoreDown(t *testing.T) {
	t.Run("client_sees_placeholder_thread", func(t *testing.T) {
		conv := NewConversation(&fakeMessageStore{failing: true}, clientSession, zap.NewNop())

		got := conv.LoadMessages(context.Background(), 10)
		require.Len(t, got, 1)
		assert.Equal(t, models.RoleMaster, got[0].SenderRole)
	})

	t.Run("master_sees_empty_thread", func(t *testing.T) {
		conv := NewConversation(&fakeMessageStore{failing: true}, masterSession, zap.NewNop())

		got := conv.LoadMessages(context.Background(), 10)
		assert.Empty(t, got)
	})
}

func TestConversation_StaleLoadDiscarded(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeMessageStore{
		messagesByOrder: map[uint64][]models.Message{
			10: {{ID: 1, OrderID: 10, Text: "первый заказ"}},
			20: {{ID: 2, OrderID: 20, Text: "второй заказ"}},
		},
		gate: gate,
	}
	conv := NewConversation(store, clientSession, zap.NewNop())

	// first load stalls inside the store while the selection moves on
	done := make(chan struct{})
	go func() {
		defer close(done)
		conv.LoadMessages(context.Background(), 10)
	}()

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.listCalls == 1
	}, time.Second, time.Millisecond)

	conv.LoadMessages(context.Background(), 20)

	close(gate)
	<-done

	// the stale response for order 10 must not overwrite the newer thread
	messages := conv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "второй заказ", messages[0].Text)
}

func TestConversation_Send(t *testing.T) {
	t.Run("blank_draft_is_noop", func(t *testing.T) {
		store := &fakeMessageStore{}
		conv := NewConversation(store, clientSession, zap.NewNop())
		conv.LoadMessages(context.Background(), 10)
		conv.SetDraft("   ")

		require.NoError(t, conv.Send(context.Background()))
		assert.Equal(t, "   ", conv.Draft())
		assert.Zero(t, store.createCalls)
	})

	t.Run("no_selection_is_noop", func(t *testing.T) {
		store := &fakeMessageStore{}
		conv := NewConversation(store, clientSession, zap.NewNop())
		conv.SetDraft("привет")

		require.NoError(t, conv.Send(context.Background()))
		assert.Zero(t, store.createCalls)
	})

	t.Run("success_clears_draft_and_reloads", func(t *testing.T) {
		store := &fakeMessageStore{}
		conv := NewConversation(store, clientSession, zap.NewNop())
		conv.LoadMessages(context.Background(), 10)
		conv.SetDraft("Когда можно записаться?")

		require.NoError(t, conv.Send(context.Background()))

		assert.Empty(t, conv.Draft())
		messages := conv.Messages()
		require.Len(t, messages, 1)
		assert.Equal(t, "Когда можно записаться?", messages[0].Text)
	})

	t.Run("failure_preserves_draft", func(t *testing.T) {
		store := &fakeMessageStore{}
		conv := NewConversation(store, clientSession, zap.NewNop())
		conv.LoadMessages(context.Background(), 10)

		store.mu.Lock()
		store.failing = true
		store.mu.Unlock()

		conv.SetDraft("Когда можно записаться?")
		require.Error(t, conv.Send(context.Background()))
		assert.Equal(t, "Когда можно записаться?", conv.Draft())
	})

	t.Run("client_send_refreshes_order_list", func(t *testing.T) {
		orderStore := &fakeOrderStore{orders: []models.Order{
			{ID: 10, UserID: 7, ServiceType: "Консультация", Status: models.OrderStatusPending},
		}}
		msgStore := &fakeMessageStore{}

		list := NewOrderList(orderStore, newTestCache(t), clientSession, zap.NewNop())
		conv := NewConversation(msgStore, clientSession, zap.NewNop())
		list.AttachConversation(conv)
		conv.AttachOrders(list)

		list.LoadOrders(context.Background())
		listCallsBefore := orderStore.listCalls

		list.Select(context.Background(), orderStore.orders[0])
		conv.SetDraft("Здравствуйте!")
		require.NoError(t, conv.Send(context.Background()))

		// the first message may change order status on the server,
		// so the list is re-fetched
		assert.Greater(t, orderStore.listCalls, listCallsBefore)
	})
}
