// Package mirror duy trì bản sao Redis của hai collection nóng
// products và categories, thay cho IndexedDB phía client của hệ thống cũ.
// Mỗi sự kiện thay đổi dữ liệu ghi đè nguyên bản ghi trong Redis,
// không có giao thức invalidation nào khác ngoài ghi đè.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"winzen_admin/internal/api/events"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

// Mirror giữ kết nối Redis và tên cửa hàng làm prefix key
type Mirror struct {
	client    *redis.Client
	storeName string
}

// NewMirror tạo Mirror và kiểm tra kết nối Redis
func NewMirror(ctx context.Context) (*Mirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     global.ServerConfig.Redis_Address,
		Password: global.ServerConfig.Redis_Password,
		DB:       global.ServerConfig.Redis_DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}
	return &Mirror{
		client:    client,
		storeName: global.ServerConfig.StoreName,
	}, nil
}

// Register đăng ký mirror vào luồng sự kiện thay đổi dữ liệu.
// Gọi một lần lúc khởi động, sau khi Redis đã sẵn sàng
func (m *Mirror) Register() {
	events.OnDataChanged(m.handleEvent)
}

// Close đóng kết nối Redis
func (m *Mirror) Close() error {
	return m.client.Close()
}

// key dạng "<store>:<collection>", mỗi collection là một hash field theo code
func (m *Mirror) key(collectionName string) string {
	return fmt.Sprintf("%s:%s", m.storeName, collectionName)
}

func (m *Mirror) mirrored(collectionName string) bool {
	return collectionName == global.MongoDB_CollectionNames.Products ||
		collectionName == global.MongoDB_CollectionNames.Categories
}

func (m *Mirror) handleEvent(ctx context.Context, e events.DataChangeEvent) {
	if !m.mirrored(e.CollectionName) {
		return
	}

	// Event chạy trong goroutine riêng nên không dùng request context
	opCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch e.Operation {
	case events.OpInsert, events.OpUpdate, events.OpUpsert:
		m.writeRecord(opCtx, e.CollectionName, e.Document)
	case events.OpDelete:
		m.removeRecord(opCtx, e.CollectionName, e.Document)
	}
}

// writeRecord ghi đè bản ghi trong hash theo field code
func (m *Mirror) writeRecord(ctx context.Context, collectionName string, document interface{}) {
	raw, err := json.Marshal(document)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("collection", collectionName).
			Warn("Không serialize được bản ghi cho mirror")
		return
	}
	code := gjson.GetBytes(raw, "code").String()
	if code == "" {
		return
	}
	if err := m.client.HSet(ctx, m.key(collectionName), code, raw).Err(); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"collection": collectionName,
			"code":       code,
		}).Warn("Không ghi được bản ghi vào mirror")
	}
}

// removeRecord gỡ một bản ghi khỏi hash. Xóa không kèm document (DeleteMany)
// thì bỏ cả hash, lần SyncAll sau sẽ dựng lại
func (m *Mirror) removeRecord(ctx context.Context, collectionName string, document interface{}) {
	if document == nil {
		if err := m.client.Del(ctx, m.key(collectionName)).Err(); err != nil {
			logger.GetAppLogger().WithError(err).WithField("collection", collectionName).
				Warn("Không xóa được hash mirror")
		}
		return
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return
	}
	code := gjson.GetBytes(raw, "code").String()
	if code == "" {
		return
	}
	if err := m.client.HDel(ctx, m.key(collectionName), code).Err(); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"collection": collectionName,
			"code":       code,
		}).Warn("Không gỡ được bản ghi khỏi mirror")
	}
}

// SyncAll dựng lại toàn bộ mirror từ dữ liệu Mongo hiện tại.
// records là các bản ghi đã đọc sẵn của một collection được mirror
func (m *Mirror) SyncAll(ctx context.Context, collectionName string, records []interface{}) error {
	if !m.mirrored(collectionName) {
		return fmt.Errorf("collection '%s' không nằm trong mirror", collectionName)
	}

	key := m.key(collectionName)
	pipe := m.client.TxPipeline()
	pipe.Del(ctx, key)
	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			continue
		}
		code := gjson.GetBytes(raw, "code").String()
		if code == "" {
			continue
		}
		pipe.HSet(ctx, key, code, raw)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to sync mirror for %s: %v", collectionName, err)
	}
	return nil
}
