package routes

import (
	"net/http"

	"kampung_chill/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathOrders  = "/orders"
	PathShop    = "/shop"

	staffTokenHeader = "X-Staff-Token"
)

func addShopRoutes(rg *gin.RouterGroup, shopHandler *handlers.ShopHandler, orderHandler *handlers.OrderHandler) {
	rg.GET(PathCatalog, shopHandler.GetCatalog)
	rg.GET(PathShop, shopHandler.GetShopSnapshot)
	rg.GET("/recommendations", shopHandler.GetRecommendation)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/lookup", orderHandler.LookupOrder)
		orders.GET("/active", orderHandler.GetActiveOrder)
		orders.PUT("/active", orderHandler.SetActiveOrder)
		orders.DELETE("/active", orderHandler.ClearActiveOrder)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", dashboardHandler.ListOrders)
		orders.PATCH("/:id/status", dashboardHandler.UpdateOrderStatus)
		orders.DELETE("/history", dashboardHandler.ClearHistory)
	}

	stocks := rg.Group("/stocks")
	{
		stocks.PATCH("/:id", dashboardHandler.AdjustStock)
		stocks.POST("/restock", dashboardHandler.RestockAll)
	}

	rg.POST(PathShop+"/toggle", dashboardHandler.ToggleShopStatus)
}

// staffGate guards the dashboard with the shared staff passcode. Plain
// equality on a header, the same casual deterrent the counter tablet uses.
func staffGate(passcode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(staffTokenHeader) != passcode {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Staff passcode required"})
			return
		}
		c.Next()
	}
}
