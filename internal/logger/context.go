package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry đã gắn các field định danh request (requestId, method,
// path, ip) để trace log theo từng request. Dùng trong middleware và error handler.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}

	// Request ID do requestid middleware gắn vào locals
	if requestID, ok := c.Locals("requestid").(string); ok && requestID != "" {
		fields["requestId"] = requestID
	}

	// Mã nhân viên do auth middleware gắn vào locals (nếu đã xác thực)
	if staffCode, ok := c.Locals("staff_code").(string); ok && staffCode != "" {
		fields["staffCode"] = staffCode
	}

	return GetAppLogger().WithFields(fields)
}

// WithAudit trả về entry trên audit logger với tên thao tác và collection.
// Dùng cho các thao tác làm thay đổi dữ liệu quan trọng (tồn kho, hủy đơn, ...).
func WithAudit(action string, collection string) *logrus.Entry {
	return GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"collection": collection,
	})
}
