package dto

type PropertyShortResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	StarRating int    `json:"starRating"`
	Avatar     string `json:"avatar"`
}

type PropertyResponse struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	Country          string      `json:"country"`
	Avatar           string      `json:"avatar"`
	Img              interface{} `json:"img"`
	ShortDescription string      `json:"shortDescription"`
	Description      string      `json:"description"`
	StarRating       int         `json:"starRating"`
	Status           int         `json:"status"`
	TimeCheckIn      string      `json:"timeCheckIn"`
	TimeCheckOut     string      `json:"timeCheckOut"`
	Longitude        float64     `json:"longitude"`
	Latitude         float64     `json:"latitude"`

	RoomTypes []RoomTypeResponse `json:"roomTypes,omitempty"`
}

type CreatePropertyRequest struct {
	Name             string   `json:"name" binding:"required"`
	Address          string   `json:"address" binding:"required"`
	City             string   `json:"city" binding:"required"`
	State            string   `json:"state"`
	Country          string   `json:"country" binding:"required"`
	Avatar           string   `json:"avatar"`
	Img              []string `json:"img"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	StarRating       int      `json:"starRating" binding:"min=0,max=5"`
	TimeCheckIn      string   `json:"timeCheckIn"`
	TimeCheckOut     string   `json:"timeCheckOut"`
	Longitude        float64  `json:"longitude"`
	Latitude         float64  `json:"latitude"`
}

type UpdatePropertyStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=2"`
}
