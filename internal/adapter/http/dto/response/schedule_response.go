package response

import "phicoffee/internal/domain/schedule"

type ScheduleItemResponse struct {
	OrderDays   string `json:"orderDays"`
	DeliveryDay string `json:"deliveryDay"`
}

type ScheduleResponse struct {
	Schedule []ScheduleItemResponse `json:"schedule"`
}

func FromScheduleItems(items []schedule.Item) ScheduleResponse {
	out := make([]ScheduleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ScheduleItemResponse{
			OrderDays:   it.OrderDays,
			DeliveryDay: it.DeliveryDay,
		})
	}
	return ScheduleResponse{Schedule: out}
}
