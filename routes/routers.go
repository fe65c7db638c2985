package routes

import (
	"context"
	"net/http"

	"stayhub/config"
	"stayhub/controllers"
	_ "stayhub/docs"
	middlewares "stayhub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/rooms/search", controllers.SearchRooms)
	v1.POST("/bookings/search", controllers.SearchRoomsBody)
	v1.POST("/bookings/calculate-price", controllers.CalculatePrice)
	v1.POST("/bookings", middlewares.OptionalAuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(1, 2, 3), controllers.GetBookings)
	v1.GET("/bookings/:id", controllers.GetBookingDetail)
	v1.PUT("/bookings/:id/status", middlewares.OptionalAuthMiddleware(), controllers.ChangeBookingStatus)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), controllers.GetBookingHistory)

	v1.POST("/payments/initiate", controllers.InitiatePayment)
	v1.POST("/payments/verify", controllers.VerifyPayment)

	v1.GET("/properties", controllers.GetAllProperties)
	v1.GET("/properties/search", controllers.SearchProperties)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.POST("/properties", middlewares.AuthMiddleware(1, 2), controllers.CreateProperty)
	v1.PUT("/properties/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateProperty)
	v1.PUT("/properties/:id/status", middlewares.AuthMiddleware(1, 2), controllers.ChangePropertyStatus)
	v1.POST("/properties/reindex", middlewares.AuthMiddleware(1), controllers.ReindexProperties)

	v1.GET("/roomTypes", middlewares.AuthMiddleware(1, 2, 3), controllers.GetAllRoomTypes)
	v1.GET("/roomTypesUser", controllers.GetRoomTypesUser)
	v1.GET("/roomTypes/:id", controllers.GetRoomTypeDetail)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(1, 2), controllers.CreateRoomType)
	v1.PUT("/roomTypes/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoomType)
	v1.DELETE("/roomTypes/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteRoomType)
	v1.GET("/checkRoomType", controllers.GetRoomTypeBookedDates)

	v1.GET("/rooms", middlewares.AuthMiddleware(1, 2, 3), controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2, 3), controllers.ChangeRoomStatus)

	v1.GET("/coupons", middlewares.AuthMiddleware(1, 2), controllers.GetCoupons)
	v1.GET("/coupons/:id", middlewares.AuthMiddleware(1, 2), controllers.GetCouponDetail)
	v1.POST("/coupons", middlewares.AuthMiddleware(1), controllers.CreateCoupon)
	v1.PUT("/coupons/:id", middlewares.AuthMiddleware(1), controllers.UpdateCoupon)
	v1.DELETE("/coupons/:id", middlewares.AuthMiddleware(1), controllers.DeleteCoupon)
	v1.PUT("/couponStatus", middlewares.AuthMiddleware(1), controllers.ChangeCouponStatus)

	v1.GET("/partners", middlewares.AuthMiddleware(1), controllers.GetPartners)
	v1.GET("/partners/:id", middlewares.AuthMiddleware(1, 2), controllers.GetPartnerDetail)
	v1.POST("/partners", middlewares.AuthMiddleware(1), controllers.CreatePartner)
	v1.PUT("/partners/:id", middlewares.AuthMiddleware(1), controllers.UpdatePartner)
	v1.PUT("/partners/:id/active", middlewares.AuthMiddleware(1), controllers.TogglePartnerActive)
	v1.GET("/partners/:id/revenue", middlewares.AuthMiddleware(1, 2), controllers.GetPartnerRevenue)

	v1.GET("/notifications", middlewares.AuthMiddleware(), controllers.GetMyNotifications)
	v1.GET("/notifications/unread-count", middlewares.AuthMiddleware(), controllers.CountUnreadNotifications)
	v1.PUT("/notifications/read", middlewares.AuthMiddleware(), controllers.MarkNotificationsRead)

	v1.GET("/exchange-rates", controllers.GetExchangeRates)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(1, 2), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files in request"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files in request"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(1, 2), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file in request"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
