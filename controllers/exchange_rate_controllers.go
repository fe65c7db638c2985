package controllers

import (
	"time"

	"stayhub/config"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

const exchangeRateCacheKey = "exchangeRates:all"

// GetExchangeRates returns the display conversion table. Rates are for
// presentation only; bookings keep their original currency.
func GetExchangeRates(c *gin.Context) {
	var rates []models.ExchangeRate
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, exchangeRateCacheKey, &rates); err == nil && len(rates) > 0 {
		response.Success(c, rates)
		return
	}

	if err := config.DB.Order("\"from\", \"to\"").Find(&rates).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.SetToRedis(config.Ctx, config.RedisClient, exchangeRateCacheKey, rates, time.Hour)
	response.Success(c, rates)
}
