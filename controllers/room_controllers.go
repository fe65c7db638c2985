package controllers

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const roomTypeCacheTTL = 10 * time.Minute

// GetAllRoomTypes lists room types for operators, including hidden
// ones.
func GetAllRoomTypes(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.RoomType{}).Preload("Property").Preload("Rooms")

	if propertyStr := c.Query("propertyId"); propertyStr != "" {
		if propertyID, err := strconv.Atoi(propertyStr); err == nil {
			tx = tx.Where("property_id = ?", propertyID)
		}
	}
	if nameFilter := c.Query("name"); nameFilter != "" {
		decoded, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decoded+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var roomTypes []models.RoomType
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, toRoomTypeResponse(rt, true))
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

// GetRoomTypesUser lists visible room types for the public site. The
// per-property listing is cached.
func GetRoomTypesUser(c *gin.Context) {
	propertyStr := c.Query("propertyId")
	cacheKey := "roomtypes:user:" + propertyStr

	var out []dto.RoomTypeResponse
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &out); err == nil && len(out) > 0 {
		response.Success(c, out)
		return
	}

	tx := config.DB.Model(&models.RoomType{}).Preload("Property").Where("visible = ?", true)
	if propertyStr != "" {
		if propertyID, err := strconv.Atoi(propertyStr); err == nil {
			tx = tx.Where("property_id = ?", propertyID)
		}
	}

	var roomTypes []models.RoomType
	if err := tx.Order("base_price asc").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	out = make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, toRoomTypeResponse(rt, true))
	}

	_ = services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, out, roomTypeCacheTTL)

	response.Success(c, out)
}

func GetRoomTypeDetail(c *gin.Context) {
	var roomType models.RoomType
	if err := config.DB.Preload("Property").Preload("Rooms").First(&roomType, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toRoomTypeResponse(roomType, true))
}

func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid room type payload")
		return
	}

	imgJSON, err := json.Marshal(req.Img)
	if err != nil {
		response.BadRequest(c, "invalid image list")
		return
	}

	roomType := models.RoomType{
		PropertyID:        req.PropertyID,
		Name:              req.Name,
		MaxAdults:         req.MaxAdults,
		MaxChildren:       req.MaxChildren,
		FreeChildrenCount: req.FreeChildrenCount,
		StandardOccupancy: req.StandardOccupancy,
		BasePrice:         req.BasePrice,
		ExtraAdultPrice:   req.ExtraAdultPrice,
		ExtraChildPrice:   req.ExtraChildPrice,
		Currency:          req.Currency,
		Amenities:         req.Amenities,
		Avatar:            req.Avatar,
		Img:               imgJSON,
		Visible:           true,
	}
	if req.Visible != nil {
		roomType.Visible = *req.Visible
	}

	if err := validator.ValidateRoomType(&roomType); err != nil {
		respondAppError(c, err)
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, toRoomTypeResponse(roomType, false))
}

func UpdateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := config.DB.First(&roomType, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid room type payload")
		return
	}

	roomType.Name = req.Name
	roomType.MaxAdults = req.MaxAdults
	roomType.MaxChildren = req.MaxChildren
	roomType.FreeChildrenCount = req.FreeChildrenCount
	roomType.StandardOccupancy = req.StandardOccupancy
	roomType.BasePrice = req.BasePrice
	roomType.ExtraAdultPrice = req.ExtraAdultPrice
	roomType.ExtraChildPrice = req.ExtraChildPrice
	if req.Currency != "" {
		roomType.Currency = req.Currency
	}
	if req.Amenities != nil {
		roomType.Amenities = req.Amenities
	}
	if req.Avatar != "" {
		roomType.Avatar = req.Avatar
	}
	if req.Img != nil {
		imgJSON, err := json.Marshal(req.Img)
		if err != nil {
			response.BadRequest(c, "invalid image list")
			return
		}
		roomType.Img = imgJSON
	}
	if req.Visible != nil {
		roomType.Visible = *req.Visible
	}

	if err := validator.ValidateRoomType(&roomType); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, toRoomTypeResponse(roomType, false))
}

// DeleteRoomType refuses to remove a type that still has active
// bookings; inventory history would dangle otherwise.
func DeleteRoomType(c *gin.Context) {
	id := c.Param("id")

	var roomType models.RoomType
	if err := config.DB.First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var activeBookings int64
	err := config.DB.Model(&models.Booking{}).
		Where("room_type_id = ?", roomType.ID).
		Where("status IN ?", []int{models.BookingStatusPendingPayment, models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.Conflict(c, string(errors.ErrCodeInvalidStatus), "room type still has active bookings")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", roomType.ID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&roomType).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, nil)
}

// GetRoomTypeBookedDates returns the date ranges over the next 90 days
// where every room of the type is taken, for the booking calendar.
func GetRoomTypeBookedDates(c *gin.Context) {
	roomTypeID, err := strconv.Atoi(c.Query("roomTypeId"))
	if err != nil {
		response.BadRequest(c, "roomTypeId is required")
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Rooms").First(&roomType, roomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, 90)

	var bookings []models.Booking
	err = config.DB.
		Where("room_type_id = ?", roomTypeID).
		Where("status IN ?", []int{models.BookingStatusPendingPayment, models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", horizon, today).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	ranges := soldOutRanges(roomType.Rooms, bookings, today, horizon)
	response.Success(c, ranges)
}

// soldOutRanges walks the window day by day and merges consecutive
// fully booked nights into ranges.
func soldOutRanges(rooms []models.Room, bookings []models.Booking, from, to time.Time) []dto.BookedDateRange {
	ranges := []dto.BookedDateRange{}

	var start *time.Time
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		available := services.AvailableRoomCount(rooms, bookings, day, next)
		if available == 0 {
			if start == nil {
				d := day
				start = &d
			}
			continue
		}
		if start != nil {
			ranges = append(ranges, dto.BookedDateRange{
				CheckInDate:  start.Format(constants.DateLayout),
				CheckOutDate: day.Format(constants.DateLayout),
			})
			start = nil
		}
	}
	if start != nil {
		ranges = append(ranges, dto.BookedDateRange{
			CheckInDate:  start.Format(constants.DateLayout),
			CheckOutDate: to.Format(constants.DateLayout),
		})
	}

	return ranges
}

// GetRooms lists the physical rooms of a type.
func GetRooms(c *gin.Context) {
	tx := config.DB.Model(&models.Room{})
	if roomTypeStr := c.Query("roomTypeId"); roomTypeStr != "" {
		if roomTypeID, err := strconv.Atoi(roomTypeStr); err == nil {
			tx = tx.Where("room_type_id = ?", roomTypeID)
		}
	}

	var rooms []models.Room
	if err := tx.Order("room_id").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	response.Success(c, out)
}

func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid room payload")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room := models.Room{
		RoomTypeID: req.RoomTypeID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Status:     constants.RoomStatusAvailable,
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, toRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid room payload")
		return
	}

	if req.RoomNumber != "" {
		room.RoomNumber = req.RoomNumber
	}
	room.Floor = req.Floor
	if req.Status != nil {
		room.Status = *req.Status
		if err := room.ValidateStatus(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, toRoomResponse(room))
}

// ChangeRoomStatus flips a room between available and maintenance.
func ChangeRoomStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid status payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&room).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()

	response.Success(c, toRoomResponse(room))
}

func invalidateRoomTypeCache() {
	if config.RedisClient != nil {
		_ = services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "roomtypes:*")
	}
}

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.RoomID,
		RoomTypeID: room.RoomTypeID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Status:     room.Status,
	}
}

func toRoomTypeResponse(rt models.RoomType, withProperty bool) dto.RoomTypeResponse {
	var img interface{}
	if len(rt.Img) > 0 {
		_ = json.Unmarshal(rt.Img, &img)
	}

	resp := dto.RoomTypeResponse{
		ID:                rt.ID,
		PropertyID:        rt.PropertyID,
		Name:              rt.Name,
		MaxAdults:         rt.MaxAdults,
		MaxChildren:       rt.MaxChildren,
		FreeChildrenCount: rt.FreeChildrenCount,
		StandardOccupancy: rt.StandardOccupancy,
		BasePrice:         rt.BasePrice,
		ExtraAdultPrice:   rt.ExtraAdultPrice,
		ExtraChildPrice:   rt.ExtraChildPrice,
		Currency:          rt.Currency,
		Amenities:         rt.Amenities,
		Avatar:            rt.Avatar,
		Img:               img,
		Visible:           rt.Visible,
	}

	if withProperty && rt.Property.ID != 0 {
		resp.Property = &dto.PropertyShortResponse{
			ID:         rt.Property.ID,
			Name:       rt.Property.Name,
			Address:    rt.Property.Address,
			City:       rt.Property.City,
			State:      rt.Property.State,
			Country:    rt.Property.Country,
			StarRating: rt.Property.StarRating,
			Avatar:     rt.Property.Avatar,
		}
	}

	return resp
}
