package controllers

import (
	"strconv"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func GetPartners(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Partner{})
	if activeStr := c.Query("active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			tx = tx.Where("active = ?", active)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var partners []models.Partner
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&partners).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.PartnerResponse, 0, len(partners))
	for _, partner := range partners {
		out = append(out, toPartnerResponse(partner))
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

func GetPartnerDetail(c *gin.Context) {
	var partner models.Partner
	if err := config.DB.First(&partner, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toPartnerResponse(partner))
}

func CreatePartner(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid partner payload")
		return
	}

	partner := models.Partner{
		UserID:        req.UserID,
		Name:          req.Name,
		ReferralCode:  strings.ToUpper(req.ReferralCode),
		DiscountKind:  req.DiscountKind,
		DiscountValue: req.DiscountValue,
		Active:        true,
	}

	if err := validator.ValidatePartner(&partner); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Create(&partner).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPartnerResponse(partner))
}

func UpdatePartner(c *gin.Context) {
	var partner models.Partner
	if err := config.DB.First(&partner, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid partner payload")
		return
	}

	if req.Name != "" {
		partner.Name = req.Name
	}
	if req.ReferralCode != "" {
		partner.ReferralCode = strings.ToUpper(req.ReferralCode)
	}
	partner.DiscountKind = req.DiscountKind
	partner.DiscountValue = req.DiscountValue

	if err := validator.ValidatePartner(&partner); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Save(&partner).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPartnerResponse(partner))
}

// TogglePartnerActive switches whether new bookings may use the
// partner's referral code. Existing bookings keep their attribution.
func TogglePartnerActive(c *gin.Context) {
	var partner models.Partner
	if err := config.DB.First(&partner, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	if err := config.DB.Model(&partner).Update("active", req.Active).Error; err != nil {
		response.ServerError(c)
		return
	}
	partner.Active = req.Active

	response.Success(c, toPartnerResponse(partner))
}

// GetPartnerRevenue reports the per-day revenue aggregates of one
// partner. Partner admins only see their own rows.
func GetPartnerRevenue(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid partner id")
		return
	}

	var partner models.Partner
	if err := config.DB.First(&partner, partnerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if role, exists := c.Get("userRole"); exists && role.(int) == models.RolePartnerAdmin {
		if userID, ok := c.Get("userID"); ok && partner.UserID != userID.(uint) {
			response.Forbidden(c)
			return
		}
	}

	tx := config.DB.Model(&models.PartnerRevenue{}).Where("partner_id = ?", partnerID)
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if from, err := time.Parse(constants.DateLayout, fromStr); err == nil {
			tx = tx.Where("date >= ?", from)
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if to, err := time.Parse(constants.DateLayout, toStr); err == nil {
			tx = tx.Where("date <= ?", to)
		}
	}

	var rows []models.PartnerRevenue
	if err := tx.Order("date desc").Find(&rows).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.PartnerRevenueResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PartnerRevenueResponse{
			PartnerID:    row.PartnerID,
			Date:         row.Date.Format(constants.DateLayout),
			Revenue:      row.Revenue,
			BookingCount: row.BookingCount,
		})
	}

	response.Success(c, out)
}

func toPartnerResponse(partner models.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:            partner.ID,
		UserID:        partner.UserID,
		Name:          partner.Name,
		ReferralCode:  partner.ReferralCode,
		DiscountKind:  partner.DiscountKind,
		DiscountValue: partner.DiscountValue,
		Active:        partner.Active,
	}
}
