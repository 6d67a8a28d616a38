package orderhdl

import (
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	basesvc "winzen_admin/internal/api/base/service"
	orderdto "winzen_admin/internal/api/order/dto"
	models "winzen_admin/internal/api/order/models"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
)

// ArchiveHandler phục vụ đọc các collection lưu trữ đơn (canceled, history).
// Chỉ đăng ký với ReadOnlyConfig, không có đường ghi nào qua handler này
type ArchiveHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
}

func newArchiveHandler(collectionName string) (*ArchiveHandler, error) {
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", collectionName, common.ErrNotFound)
	}
	service := basesvc.NewBaseServiceMongo[models.Order](collection)
	return &ArchiveHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](service),
	}, nil
}

// NewCanceledHandler tạo handler đọc collection đơn đã hủy
func NewCanceledHandler() (*ArchiveHandler, error) {
	return newArchiveHandler(global.MongoDB_CollectionNames.Canceled)
}

// NewHistoryHandler tạo handler đọc kho lưu trữ đơn hoàn tất
func NewHistoryHandler() (*ArchiveHandler, error) {
	return newArchiveHandler(global.MongoDB_CollectionNames.History)
}
