package get_day_summary

import (
	"context"

	getDaySummary "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_day_summary"
)

type GetDaySummaryUseCase interface {
	Execute(ctx context.Context, req *getDaySummary.Request) (*getDaySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
