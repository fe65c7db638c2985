package dto

// SearchRoomsRequest is the surface of availability search. It binds
// from query parameters on the GET route and from a JSON body on the
// POST route.
type SearchRoomsRequest struct {
	CheckInDate    string `form:"checkInDate" json:"checkInDate" binding:"required"`
	CheckOutDate   string `form:"checkOutDate" json:"checkOutDate" binding:"required"`
	Adults         int    `form:"adults" json:"adults" binding:"required"`
	Children       int    `form:"children" json:"children"`
	PropertyID     uint   `form:"propertyId" json:"propertyId"`
	City           string `form:"city" json:"city"`
	Query          string `form:"query" json:"query"`
	IncludeSoldOut bool   `form:"includeSoldOut" json:"includeSoldOut"`
}

type RoomTypeAvailabilityResponse struct {
	RoomType       RoomTypeResponse `json:"roomType"`
	AvailableCount int              `json:"availableCount"`
	IsSoldOut      bool             `json:"isSoldOut"`
}

type RoomTypeResponse struct {
	ID         uint `json:"id"`
	PropertyID uint `json:"propertyId"`

	Name              string `json:"name"`
	MaxAdults         int    `json:"maxAdults"`
	MaxChildren       int    `json:"maxChildren"`
	FreeChildrenCount int    `json:"freeChildrenCount"`
	StandardOccupancy int    `json:"standardOccupancy"`

	BasePrice       float64 `json:"basePrice"`
	ExtraAdultPrice float64 `json:"extraAdultPrice"`
	ExtraChildPrice float64 `json:"extraChildPrice"`
	Currency        string  `json:"currency"`

	Amenities []string    `json:"amenities"`
	Avatar    string      `json:"avatar"`
	Img       interface{} `json:"img"`
	Visible   bool        `json:"visible"`

	Property *PropertyShortResponse `json:"property,omitempty"`
}

type CreateRoomTypeRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	Name       string `json:"name" binding:"required"`

	MaxAdults         int `json:"maxAdults" binding:"required"`
	MaxChildren       int `json:"maxChildren"`
	FreeChildrenCount int `json:"freeChildrenCount"`
	StandardOccupancy int `json:"standardOccupancy" binding:"required"`

	BasePrice       float64 `json:"basePrice" binding:"required"`
	ExtraAdultPrice float64 `json:"extraAdultPrice"`
	ExtraChildPrice float64 `json:"extraChildPrice"`
	Currency        string  `json:"currency"`

	Amenities []string `json:"amenities"`
	Avatar    string   `json:"avatar"`
	Img       []string `json:"img"`
	Visible   *bool    `json:"visible"`
}

type RoomResponse struct {
	ID         uint   `json:"id"`
	RoomTypeID uint   `json:"roomTypeId"`
	RoomNumber string `json:"roomNumber"`
	Floor      int    `json:"floor"`
	Status     int    `json:"status"`
}

type CreateRoomRequest struct {
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	Floor      int    `json:"floor"`
	Status     *int   `json:"status"`
}

// BookedDateRange is one occupied window of a room type, used by the
// date picker to grey out sold-out ranges.
type BookedDateRange struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}
