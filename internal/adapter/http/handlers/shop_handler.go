package handlers

import (
	"net/http"

	response "kampung_chill/internal/adapter/http/dto/response"
	"kampung_chill/internal/usecase"
	"kampung_chill/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ShopHandler serves the public storefront reads: catalog, shop snapshot
// and the AI flavour guide.

type ShopHandler struct {
	usecase     usecase.IShopUseCase
	recommender interfaces.IFlavorRecommender
	log         *logrus.Logger
}

func NewShopHandler(uc usecase.IShopUseCase, recommender interfaces.IFlavorRecommender, log *logrus.Logger) *ShopHandler {
	return &ShopHandler{usecase: uc, recommender: recommender, log: log}
}

// GetCatalog returns every catalog product with its current stock level.
func (h *ShopHandler) GetCatalog(c *gin.Context) {
	snap := h.usecase.Snapshot()
	c.JSON(http.StatusOK, response.FromCatalog(snap.Stocks))
}

// GetShopSnapshot returns the open flag, stock table and the public live
// status board (non-terminal orders only).
func (h *ShopHandler) GetShopSnapshot(c *gin.Context) {
	snap := h.usecase.Snapshot()
	c.JSON(http.StatusOK, response.FromShopSnapshot(snap.IsShopOpen, snap.Stocks, snap.Orders))
}

// GetRecommendation asks the flavour guide for a suggestion. The guide
// always answers; there is no failure path to map.
func (h *ShopHandler) GetRecommendation(c *gin.Context) {
	mood := c.DefaultQuery("mood", "Happy")
	weather := c.DefaultQuery("weather", "Hot")

	rec := h.recommender.Recommend(c.Request.Context(), mood, weather)
	h.log.Debugf("[shop][handler] recommendation served mood=%s weather=%s", mood, weather)

	c.JSON(http.StatusOK, response.RecommendationResponse{Recommendation: rec, Mood: mood, Weather: weather})
}
