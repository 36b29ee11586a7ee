package routes

import (
	"github.com/gin-gonic/gin"

	"phicoffee/internal/adapter/http/handlers"
)

const (
	PathOrders        = "/orders"
	PathSchedule      = "/schedule"
	PathFeedback      = "/feedback"
	PathPaymentProofs = "/payment-proofs"
)

func addCoffeeRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	feedbackHandler *handlers.FeedbackHandler,
	scheduleHandler *handlers.ScheduleHandler,
	proofHandler *handlers.ProofHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.POST("/spot", orderHandler.CreateSpotOrder)
		orders.GET("/:id", orderHandler.GetOrderByID)
	}

	rg.GET(PathSchedule, scheduleHandler.GetWeeklySchedule)
	rg.POST(PathFeedback, feedbackHandler.CreateFeedback)
	rg.POST(PathPaymentProofs, proofHandler.UploadProof)
}
