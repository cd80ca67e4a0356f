package edit_booking

import (
	"context"

	editBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/edit_booking"
)

type EditBookingUseCase interface {
	Execute(ctx context.Context, req *editBooking.Request) (*editBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
