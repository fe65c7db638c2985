package controllers

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

const propertyCacheTTL = 10 * time.Minute

// GetAllProperties lists properties for the public site. A free-text
// query switches to fuzzy matching over names, cities and star ratings
// so typos and partial phrases still find the right hotel.
func GetAllProperties(c *gin.Context) {
	page, limit := parsePagination(c)
	query := c.Query("query")

	cacheKey := "properties:all:" + c.Request.URL.RawQuery
	if query == "" && config.RedisClient != nil {
		var cached dto.PaginatedResponse[[]dto.PropertyResponse]
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && cached.Data != nil {
			response.SuccessWithPagination(c, cached.Data, cached.Pagination.Page, cached.Pagination.Limit, cached.Pagination.Total)
			return
		}
	}

	tx := config.DB.Model(&models.Property{}).Preload("RoomTypes").Where("status = ?", 1)

	if city := c.Query("city"); city != "" {
		decoded, err := url.QueryUnescape(city)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("LOWER(city) = LOWER(?)", decoded)
	}
	if starStr := c.Query("starRating"); starStr != "" {
		if star, err := strconv.Atoi(starStr); err == nil {
			tx = tx.Where("star_rating >= ?", star)
		}
	}

	var properties []models.Property
	if err := tx.Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	if query != "" {
		properties = rankProperties(query, properties)
	}

	total := len(properties)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]dto.PropertyResponse, 0, end-start)
	for _, p := range properties[start:end] {
		out = append(out, toPropertyResponse(p, false))
	}

	if query == "" && config.RedisClient != nil {
		cached := dto.PaginatedResponse[[]dto.PropertyResponse]{
			Data: out,
			Pagination: response.Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
			},
		}
		_ = services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, cached, propertyCacheTTL)
	}

	response.SuccessWithPagination(c, out, page, limit, total)
}

// rankProperties scores every property against the normalized query and
// keeps the ones that matched anything, best first.
func rankProperties(query string, properties []models.Property) []models.Property {
	normalized := services.NormalizeQuery(query)
	matcher := services.NewMatcher(services.UniqueCities(properties))

	type scored struct {
		property models.Property
		score    int
	}
	ranked := make([]scored, 0, len(properties))
	for _, p := range properties {
		if score := services.ScoreProperty(normalized, p, matcher); score > 0 {
			ranked = append(ranked, scored{property: p, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]models.Property, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.property)
	}
	return out
}

// SearchProperties serves full-text search from the Elasticsearch
// index.
func SearchProperties(c *gin.Context) {
	params := map[string]string{
		"search":     c.Query("search"),
		"city":       c.Query("city"),
		"state":      c.Query("state"),
		"country":    c.Query("country"),
		"status":     c.Query("status"),
		"starRating": c.Query("starRating"),
		"page":       c.Query("page"),
		"limit":      c.Query("limit"),
	}

	properties, total, err := services.SearchPropertiesES(params)
	if err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	out := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p, false))
	}
	response.SuccessWithPagination(c, out, page, limit, total)
}

func GetPropertyDetail(c *gin.Context) {
	var property models.Property
	if err := config.DB.Preload("RoomTypes", "visible = ?", true).First(&property, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toPropertyResponse(property, true))
}

func CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid property payload")
		return
	}

	imgJSON, err := json.Marshal(req.Img)
	if err != nil {
		response.BadRequest(c, "invalid image list")
		return
	}

	property := models.Property{
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Country:          req.Country,
		Avatar:           req.Avatar,
		Img:              imgJSON,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		StarRating:       req.StarRating,
		Status:           1,
		TimeCheckIn:      req.TimeCheckIn,
		TimeCheckOut:     req.TimeCheckOut,
		Longitude:        req.Longitude,
		Latitude:         req.Latitude,
	}

	if userID, exists := c.Get("userID"); exists {
		property.UserID = userID.(uint)
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.IndexProperty(property)
	invalidatePropertyCache()

	response.Success(c, toPropertyResponse(property, false))
}

func UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := config.DB.First(&property, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid property payload")
		return
	}

	property.Name = req.Name
	property.Address = req.Address
	property.City = req.City
	if req.State != "" {
		property.State = req.State
	}
	property.Country = req.Country
	if req.Avatar != "" {
		property.Avatar = req.Avatar
	}
	if req.Img != nil {
		imgJSON, err := json.Marshal(req.Img)
		if err != nil {
			response.BadRequest(c, "invalid image list")
			return
		}
		property.Img = imgJSON
	}
	property.ShortDescription = req.ShortDescription
	property.Description = req.Description
	property.StarRating = req.StarRating
	if req.TimeCheckIn != "" {
		property.TimeCheckIn = req.TimeCheckIn
	}
	if req.TimeCheckOut != "" {
		property.TimeCheckOut = req.TimeCheckOut
	}
	property.Longitude = req.Longitude
	property.Latitude = req.Latitude

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.IndexProperty(property)
	invalidatePropertyCache()

	response.Success(c, toPropertyResponse(property, false))
}

func ChangePropertyStatus(c *gin.Context) {
	var property models.Property
	if err := config.DB.First(&property, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid status payload")
		return
	}

	property.Status = req.Status
	if err := property.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&property).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	if req.Status == 1 {
		_ = services.IndexProperty(property)
	} else {
		_ = services.RemovePropertyFromIndex(property.ID)
	}
	invalidatePropertyCache()

	response.Success(c, toPropertyResponse(property, false))
}

// ReindexProperties rebuilds the whole search index. Admin tooling.
func ReindexProperties(c *gin.Context) {
	if err := services.IndexProperties(); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}

func invalidatePropertyCache() {
	if config.RedisClient != nil {
		_ = services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "properties:*")
	}
}

func toPropertyResponse(p models.Property, withRoomTypes bool) dto.PropertyResponse {
	var img interface{}
	if len(p.Img) > 0 {
		_ = json.Unmarshal(p.Img, &img)
	}

	resp := dto.PropertyResponse{
		ID:               p.ID,
		Name:             p.Name,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		Country:          p.Country,
		Avatar:           p.Avatar,
		Img:              img,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		StarRating:       p.StarRating,
		Status:           p.Status,
		TimeCheckIn:      p.TimeCheckIn,
		TimeCheckOut:     p.TimeCheckOut,
		Longitude:        p.Longitude,
		Latitude:         p.Latitude,
	}

	if withRoomTypes {
		resp.RoomTypes = make([]dto.RoomTypeResponse, 0, len(p.RoomTypes))
		for _, rt := range p.RoomTypes {
			resp.RoomTypes = append(resp.RoomTypes, toRoomTypeResponse(rt, false))
		}
	}

	return resp
}
