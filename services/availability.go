package services

import (
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomTypeAvailability is one search result row: a room type together
// with how many of its physical rooms are free for the queried range.
type RoomTypeAvailability struct {
	RoomType       models.RoomType `json:"roomType"`
	AvailableCount int             `json:"availableCount"`
	IsSoldOut      bool            `json:"isSoldOut"`
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at
// least one night. Half-open semantics: a checkout on day X and a new
// check-in on day X do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateStayRange rejects malformed date ranges. Zero-night stays are
// invalid; there is no fallback to a default range here.
func ValidateStayRange(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "check-in and check-out dates are required", nil)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "check-out must be after check-in", nil)
	}
	return nil
}

// NumberOfNights counts whole nights in [checkIn, checkOut).
func NumberOfNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// FitsCapacity reports whether the party fits the room type's hard caps.
func FitsCapacity(rt models.RoomType, adults, children int) bool {
	return adults <= rt.MaxAdults && children <= rt.MaxChildren
}

// AvailableRoomCount counts rooms of one type not consumed by an active
// (pending or confirmed) booking overlapping [checkIn, checkOut).
// Rooms held for maintenance are never available.
func AvailableRoomCount(rooms []models.Room, bookings []models.Booking, checkIn, checkOut time.Time) int {
	count := 0
	for _, room := range rooms {
		if room.Status != constants.RoomStatusAvailable {
			continue
		}
		taken := false
		for _, b := range bookings {
			if b.RoomID != room.RoomID || !b.Active() {
				continue
			}
			if Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
				taken = true
				break
			}
		}
		if !taken {
			count++
		}
	}
	return count
}

// SearchFilters narrows an availability search.
type SearchFilters struct {
	PropertyID *uint  `json:"propertyId,omitempty"`
	City       string `json:"city,omitempty"`
	Query      string `json:"query,omitempty"`
}

type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Search returns the room types with at least one free room for the
// range, or all matching types when includeSoldOut is set.
func (s *AvailabilityService) Search(checkIn, checkOut time.Time, adults, children int, filters SearchFilters, includeSoldOut bool) ([]RoomTypeAvailability, error) {
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	if adults < 1 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "at least one adult is required", nil)
	}
	if children < 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "children count must not be negative", nil)
	}

	tx := s.db.Model(&models.RoomType{}).
		Preload("Rooms").
		Preload("Property").
		Where("visible = ?", true)
	if filters.PropertyID != nil {
		tx = tx.Where("property_id = ?", *filters.PropertyID)
	}
	if filters.City != "" {
		tx = tx.Where("property_id IN (?)",
			s.db.Model(&models.Property{}).Select("id").Where("LOWER(city) = LOWER(?)", filters.City))
	}

	var roomTypes []models.RoomType
	if err := tx.Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room types", err)
	}

	var roomIDs []uint
	for _, rt := range roomTypes {
		for _, room := range rt.Rooms {
			roomIDs = append(roomIDs, room.RoomID)
		}
	}

	bookingsByRoom := map[uint][]models.Booking{}
	if len(roomIDs) > 0 {
		var bookings []models.Booking
		err := s.db.
			Where("room_id IN ?", roomIDs).
			Where("status IN ?", []int{models.BookingStatusPendingPayment, models.BookingStatusConfirmed}).
			Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
			Find(&bookings).Error
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings", err)
		}
		for _, b := range bookings {
			bookingsByRoom[b.RoomID] = append(bookingsByRoom[b.RoomID], b)
		}
	}

	results := make([]RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if !FitsCapacity(rt, adults, children) {
			continue
		}
		var overlapping []models.Booking
		for _, room := range rt.Rooms {
			overlapping = append(overlapping, bookingsByRoom[room.RoomID]...)
		}
		available := AvailableRoomCount(rt.Rooms, overlapping, checkIn, checkOut)
		if available == 0 && !includeSoldOut {
			continue
		}
		results = append(results, RoomTypeAvailability{
			RoomType:       rt,
			AvailableCount: available,
			IsSoldOut:      available == 0,
		})
	}

	return results, nil
}

// FreeRoomForRange picks one free room of the type for the range, or
// nil when the type is sold out. Room rows are locked for the duration
// of the surrounding transaction so the final re-check before insert
// cannot race another checkout.
func (s *AvailabilityService) FreeRoomForRange(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) (*models.Room, error) {
	var rooms []models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_type_id = ? AND status = ?", roomTypeID, constants.RoomStatusAvailable).
		Order("room_id").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load rooms", err)
	}

	for _, room := range rooms {
		var count int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ?", room.RoomID).
			Where("status IN ?", []int{models.BookingStatusPendingPayment, models.BookingStatusConfirmed}).
			Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
			Count(&count).Error
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to check room bookings", err)
		}
		if count == 0 {
			r := room
			return &r, nil
		}
	}
	return nil, nil
}
