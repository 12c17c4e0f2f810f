package get_order_status

import (
	"context"

	getOrderStatus "github.com/m04kA/Zonomo-CartService/internal/usecase/get_order_status"
)

type GetOrderStatusUseCase interface {
	Execute(ctx context.Context, req *getOrderStatus.Request) (*getOrderStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
