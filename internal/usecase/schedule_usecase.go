package usecase

import (
	"time"

	"phicoffee/internal/domain/schedule"
)

// IScheduleUseCase exposes the weekly order/delivery calendar.
type IScheduleUseCase interface {
	Weekly() []schedule.Item
}

type ScheduleUseCase struct {
	now func() time.Time
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase() *ScheduleUseCase {
	return &ScheduleUseCase{now: time.Now}
}

// Weekly recomputes the three order windows relative to the current date on
// every call; nothing is cached.
func (u *ScheduleUseCase) Weekly() []schedule.Item {
	return schedule.Weekly(u.now())
}
