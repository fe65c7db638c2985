package controllers

import (
	"net/url"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func GetCoupons(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Coupon{})
	if nameFilter := c.Query("name"); nameFilter != "" {
		decoded, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ? OR code ILIKE ?", "%"+decoded+"%", "%"+decoded+"%")
	}
	if statusFilter := c.Query("status"); statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var coupons []models.Coupon
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&coupons).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, toCouponResponse(coupon))
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

func GetCouponDetail(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toCouponResponse(coupon))
}

func CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid coupon payload")
		return
	}

	fromDate, err := time.Parse(constants.DateLayout, req.FromDate)
	if err != nil {
		response.BadRequest(c, "fromDate must be YYYY-MM-DD")
		return
	}
	toDate, err := time.Parse(constants.DateLayout, req.ToDate)
	if err != nil {
		response.BadRequest(c, "toDate must be YYYY-MM-DD")
		return
	}

	coupon := models.Coupon{
		Code:        strings.ToUpper(req.Code),
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		Value:       req.Value,
		Quantity:    req.Quantity,
		MinNights:   req.MinNights,
		FromDate:    fromDate,
		ToDate:      toDate,
		Status:      1,
	}

	if err := validator.ValidateCoupon(&coupon); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCouponCache()

	response.Success(c, toCouponResponse(coupon))
}

func UpdateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid coupon payload")
		return
	}

	if req.Name != "" {
		coupon.Name = req.Name
	}
	if req.Description != "" {
		coupon.Description = req.Description
	}
	coupon.Kind = req.Kind
	coupon.Value = req.Value
	coupon.Quantity = req.Quantity
	coupon.MinNights = req.MinNights
	if req.FromDate != "" {
		fromDate, err := time.Parse(constants.DateLayout, req.FromDate)
		if err != nil {
			response.BadRequest(c, "fromDate must be YYYY-MM-DD")
			return
		}
		coupon.FromDate = fromDate
	}
	if req.ToDate != "" {
		toDate, err := time.Parse(constants.DateLayout, req.ToDate)
		if err != nil {
			response.BadRequest(c, "toDate must be YYYY-MM-DD")
			return
		}
		coupon.ToDate = toDate
	}

	if err := validator.ValidateCoupon(&coupon); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCouponCache()

	response.Success(c, toCouponResponse(coupon))
}

func DeleteCoupon(c *gin.Context) {
	if err := config.DB.Delete(&models.Coupon{}, c.Param("id")).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCouponCache()

	response.Success(c, nil)
}

func ChangeCouponStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid status payload")
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	coupon.Status = req.Status
	if err := coupon.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&coupon).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCouponCache()

	response.Success(c, toCouponResponse(coupon))
}

func invalidateCouponCache() {
	if config.RedisClient != nil {
		_ = services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "coupons:*")
	}
}

func toCouponResponse(coupon models.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:          coupon.ID,
		Code:        coupon.Code,
		Name:        coupon.Name,
		Description: coupon.Description,
		Kind:        coupon.Kind,
		Value:       coupon.Value,
		Quantity:    coupon.Quantity,
		MinNights:   coupon.MinNights,
		FromDate:    coupon.FromDate.Format(constants.DateLayout),
		ToDate:      coupon.ToDate.Format(constants.DateLayout),
		Status:      coupon.Status,
	}
}
