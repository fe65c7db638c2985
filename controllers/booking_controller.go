package controllers

import (
	"net/http"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/notification"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// SearchRooms lists room types with at least one free room for the
// requested dates and party size.
func SearchRooms(c *gin.Context) {
	var req dto.SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid search parameters")
		return
	}
	searchRooms(c, req)
}

// SearchRoomsBody is the JSON-body variant of SearchRooms.
func SearchRoomsBody(c *gin.Context) {
	var req dto.SearchRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid search parameters")
		return
	}
	searchRooms(c, req)
}

func searchRooms(c *gin.Context, req dto.SearchRoomsRequest) {
	checkIn, checkOut, err := validator.ValidateStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondAppError(c, err)
		return
	}
	if err := validator.ValidateGuests(req.Adults, req.Children); err != nil {
		respondAppError(c, err)
		return
	}

	filters := services.SearchFilters{City: req.City, Query: req.Query}
	if req.PropertyID != 0 {
		id := req.PropertyID
		filters.PropertyID = &id
	}

	results, err := bookingService.Availability().Search(checkIn, checkOut, req.Adults, req.Children, filters, req.IncludeSoldOut)
	if err != nil {
		respondAppError(c, err)
		return
	}

	out := make([]dto.RoomTypeAvailabilityResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.RoomTypeAvailabilityResponse{
			RoomType:       toRoomTypeResponse(r.RoomType, true),
			AvailableCount: r.AvailableCount,
			IsSoldOut:      r.IsSoldOut,
		})
	}

	response.Success(c, out)
}

// CalculatePrice quotes a stay without creating a booking.
func CalculatePrice(c *gin.Context) {
	var req dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid price request")
		return
	}

	checkIn, checkOut, err := validator.ValidateStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondAppError(c, err)
		return
	}
	if err := validator.ValidateGuests(req.Adults, req.Children); err != nil {
		respondAppError(c, err)
		return
	}

	quote, terms, err := bookingService.Pricing().QuoteStay(req.RoomTypeID, checkIn, checkOut,
		req.Adults, req.Children, req.CouponCode, req.ReferralCode)
	if err != nil {
		respondAppError(c, err)
		return
	}

	resp := dto.QuoteResponse{
		NumberOfNights:   quote.NumberOfNights,
		BaseAmount:       quote.BaseAmount,
		ExtraAdultAmount: quote.ExtraAdultAmount,
		ExtraChildAmount: quote.ExtraChildAmount,
		DiscountAmount:   quote.DiscountAmount,
		TaxAmount:        quote.TaxAmount,
		TotalAmount:      quote.TotalAmount,
		Currency:         quote.Currency,
	}
	if terms != nil {
		resp.DiscountSource = terms.Source
	}

	response.Success(c, resp)
}

// CreateBooking places a booking in PENDING_PAYMENT. The route carries
// optional auth: signed-in users book under their account, anonymous
// requests must supply guest contact details.
func CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid booking request")
		return
	}

	checkIn, checkOut, err := validator.ValidateStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondAppError(c, err)
		return
	}
	if err := validator.ValidateGuests(req.Adults, req.Children); err != nil {
		respondAppError(c, err)
		return
	}

	input := services.CreateBookingInput{
		RoomTypeID:   req.RoomTypeID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       req.Adults,
		Children:     req.Children,
		CouponCode:   req.CouponCode,
		ReferralCode: req.ReferralCode,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
	}

	if userID, exists := c.Get("userID"); exists {
		id := userID.(uint)
		input.UserID = &id
	} else {
		if err := validator.ValidateGuestContact(req.GuestName, req.GuestPhone, req.GuestEmail); err != nil {
			respondAppError(c, err)
			return
		}
	}

	booking, err := bookingService.Create(input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	broadcastBookingEvent(booking, "created")

	response.Success(c, toBookingResponse(booking))
}

// GetBookings lists bookings for operators, filterable by status,
// property and stay window.
func GetBookings(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Booking{}).
		Preload("RoomType").Preload("RoomType.Property").Preload("Room")

	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}
	if propertyStr := c.Query("propertyId"); propertyStr != "" {
		if propertyID, err := strconv.Atoi(propertyStr); err == nil {
			tx = tx.Where("room_type_id IN (?)",
				config.DB.Model(&models.RoomType{}).Select("id").Where("property_id = ?", propertyID))
		}
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if from, err := time.Parse(constants.DateLayout, fromStr); err == nil {
			tx = tx.Where("check_in_date >= ?", from)
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if to, err := time.Parse(constants.DateLayout, toStr); err == nil {
			tx = tx.Where("check_out_date <= ?", to)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

// GetBookingDetail loads one booking by numeric id or reference code.
func GetBookingDetail(c *gin.Context) {
	idParam := c.Param("id")

	tx := config.DB.Preload("RoomType").Preload("RoomType.Property").Preload("Room")

	var booking models.Booking
	if id, err := strconv.Atoi(idParam); err == nil {
		err = tx.First(&booking, id).Error
		if err != nil {
			response.NotFound(c)
			return
		}
	} else {
		if err := tx.Where("reference_code = ?", idParam).First(&booking).Error; err != nil {
			response.NotFound(c)
			return
		}
	}

	response.Success(c, toBookingResponse(&booking))
}

// GetBookingHistory lists the authenticated user's own bookings.
func GetBookingHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Booking{}).
		Preload("RoomType").Preload("RoomType.Property").Preload("Room").
		Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

// ChangeBookingStatus handles cancellation and front-desk check-in and
// check-out. Confirmation only happens through payment verification.
func ChangeBookingStatus(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid status payload")
		return
	}

	role := models.RoleGuest
	if userRole, exists := c.Get("userRole"); exists {
		role = userRole.(int)
	}
	var requesterID *uint
	if userID, exists := c.Get("userID"); exists {
		id := userID.(uint)
		requesterID = &id
	}

	var booking *models.Booking
	switch req.Status {
	case models.BookingStatusCancelled:
		booking, err = bookingService.Cancel(uint(bookingID), services.CancelRequest{
			RequesterID:   requesterID,
			Role:          role,
			ReferenceCode: req.ReferenceCode,
		})
	case models.BookingStatusCheckedIn, models.BookingStatusCheckedOut:
		if role != models.RoleSuperAdmin && role != models.RolePartnerAdmin && role != models.RoleReceptionist {
			response.Forbidden(c)
			return
		}
		booking, err = bookingService.SetStayStatus(uint(bookingID), req.Status)
	case models.BookingStatusConfirmed:
		response.Error(c, http.StatusBadRequest, string(errors.ErrCodeInvalidStatus),
			"bookings are confirmed through payment verification")
		return
	default:
		response.Error(c, http.StatusBadRequest, string(errors.ErrCodeInvalidStatus), "unsupported status")
		return
	}
	if err != nil {
		respondAppError(c, err)
		return
	}

	broadcastBookingEvent(booking, statusEventName(req.Status))

	response.Success(c, toBookingResponse(booking))
}

func statusEventName(status int) string {
	switch status {
	case models.BookingStatusCancelled:
		return "cancelled"
	case models.BookingStatusCheckedIn:
		return "checked in"
	case models.BookingStatusCheckedOut:
		return "checked out"
	case models.BookingStatusConfirmed:
		return "confirmed"
	default:
		return "updated"
	}
}

func broadcastBookingEvent(booking *models.Booking, event string) {
	if notifier == nil || booking == nil {
		return
	}
	msg := notification.NewBookingMessageBuilder(booking.ReferenceCode, event).Build()
	if err := notifier.SendMessage(msg); err == nil && booking.UserID != nil {
		config.DB.Create(&models.Notification{
			UserID:  *booking.UserID,
			Message: msg,
		})
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page = 0
	limit = 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}

func respondAppError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		response.Error(c, statusForAppError(appErr), string(appErr.Code), appErr.Message)
		return
	}
	response.ServerError(c)
}

func statusForAppError(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeDBNotFound, errors.ErrCodeUserNotFound,
		errors.ErrCodeCouponNotFound, errors.ErrCodeReferralNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNoRoomsAvailable:
		return http.StatusConflict
	case errors.ErrCodeUnauthorized:
		return http.StatusForbidden
	case errors.ErrCodeDBError, errors.ErrCodeGatewayError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		UserID:        b.UserID,
		CheckInDate:   b.CheckInDate.Format(constants.DateLayout),
		CheckOutDate:  b.CheckOutDate.Format(constants.DateLayout),
		Adults:        b.Adults,
		Children:      b.Children,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,

		BaseAmount:       b.BaseAmount,
		ExtraAdultAmount: b.ExtraAdultAmount,
		ExtraChildAmount: b.ExtraChildAmount,
		DiscountAmount:   b.DiscountAmount,
		TaxAmount:        b.TaxAmount,
		TotalAmount:      b.TotalAmount,
		Currency:         b.Currency,

		CouponCode:   b.CouponCode,
		ReferralCode: b.ReferralCode,

		Status:    b.Status,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}

	if b.RoomType.ID != 0 {
		resp.RoomType = dto.BookingRoomTypeResponse{
			ID:        b.RoomType.ID,
			Name:      b.RoomType.Name,
			BasePrice: b.RoomType.BasePrice,
			Currency:  b.RoomType.Currency,
		}
		if b.RoomType.Property.ID != 0 {
			resp.Property = dto.BookingPropertyResponse{
				ID:      b.RoomType.Property.ID,
				Name:    b.RoomType.Property.Name,
				Address: b.RoomType.Property.Address,
				City:    b.RoomType.Property.City,
				Avatar:  b.RoomType.Property.Avatar,
			}
		}
	}
	if b.Room.RoomID != 0 {
		resp.Room = dto.BookingRoomResponse{
			ID:         b.Room.RoomID,
			RoomNumber: b.Room.RoomNumber,
			Floor:      b.Room.Floor,
		}
	}

	return resp
}
