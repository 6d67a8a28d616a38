package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDataChanged_DeliversToAllHandlers(t *testing.T) {
	var mu sync.Mutex
	var received []DataChangeEvent
	var wg sync.WaitGroup

	wg.Add(2)
	for i := 0; i < 2; i++ {
		OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
			wg.Done()
		})
	}

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "products",
		Operation:      OpInsert,
		Document:       map[string]string{"code": "Product1"},
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler không nhận được event trong 2s")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	assert.Equal(t, "products", received[0].CollectionName)
	assert.Equal(t, OpInsert, received[0].Operation)
}

func TestEmitDataChanged_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("handler hỏng")
	})

	got := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		got <- e
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "categories",
		Operation:      OpDelete,
	})

	select {
	case e := <-got:
		assert.Equal(t, "categories", e.CollectionName)
	case <-time.After(2 * time.Second):
		t.Fatal("handler lành không nhận được event khi handler khác panic")
	}
}
