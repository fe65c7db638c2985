package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func smtpCredentials() (from, password, host, port string) {
	return os.Getenv("SMTP_FROM"), os.Getenv("SMTP_PASSWORD"), "smtp.gmail.com", "587"
}

func sendVerificationEmail(email string, code string) error {
	from, password, host, port := smtpCredentials()
	to := []string{email}
	subject := "Subject: Your one-time verification code\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"><title>Verification code</title></head>
		<body>
			<p>Hello,</p>
			<p>Your one-time verification code is <strong>%s</strong>.</p>
			<p>The code expires in 10 minutes.</p>
		</body>
		</html>`, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendBookingEmail confirms a created booking to the guest.
func SendBookingEmail(email string, referenceCode string, totalAmount float64, currency, checkInDate, checkOutDate string) error {
	from, password, host, port := smtpCredentials()
	to := []string{email}
	subject := "Subject: Your booking is in\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head><meta charset="UTF-8"><title>Booking received</title></head>
	<body>
		<p>Hello,</p>
		<p>Thanks for booking with us. Your booking details:</p>
		<ul>
			<li>Reference: <strong>%s</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>%s %s</strong></li>
		</ul>
		<p>We will email you again once the payment is confirmed.</p>
	</body>
	</html>`, referenceCode, checkInDate, checkOutDate, formatCurrency(totalAmount), currency)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("%0.2f", amount)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user with phone number %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if isAccessToken {
		return token.SignedString(secretKey)
	}
	return token.SignedString(refreshSecretKey)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3600,
		"/",
		"",
		true,
		true,
	)
}

// CreateUser registers a new guest account and emails a verification code.
func CreateUser(input models.User) (models.User, error) {
	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, fmt.Errorf("email %s is already registered", input.Email)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}
	input.Password = hashed

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}
	input.Code = code
	input.CodeCreatedAt = time.Now()

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	if err := sendVerificationEmail(input.Email, code); err != nil {
		return input, fmt.Errorf("user created but verification email failed: %w", err)
	}
	return input, nil
}

// RegenerateVerificationCode issues a fresh code for an unverified user.
func RegenerateVerificationCode(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	if user.IsVerified {
		return fmt.Errorf("user %d is already verified", userID)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"code":            code,
		"code_created_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	return sendVerificationEmail(user.Email, code)
}

// CreateGoogleUser provisions a verified account from a Google sign-in.
// UpdatePassword hashes and stores a new password. Callers verify the
// one-time code first.
func UpdatePassword(user models.User, newPassword string) error {
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&user).Updates(map[string]interface{}{
		"password": hashed,
		"code":     "",
	}).Error
}

func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	user := models.User{
		Name:       name,
		Email:      email,
		Avatar:     avatar,
		IsVerified: true,
		Status:     constants.UserStatusActive,
		// Google accounts have no usable phone; store a placeholder
		// unique per email to satisfy the column constraint.
		PhoneNumber: fmt.Sprintf("g-%d", time.Now().UnixNano()%1e9),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
