package main

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/windeesel365/pph21-ter/config"
	"github.com/windeesel365/pph21-ter/ter"
)

const adminIssuer = "pph21-ter"

// admin login ด้วย basic auth แล้วออก JWT
func handleAdminLogin(cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, password, ok := c.Request().BasicAuth()
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Basic credentials are required")
		}
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
		}

		token, err := issueAdminToken(cfg.JWTSecret, username, cfg.JWTTTL, time.Now())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{"token": token})
	}
}

func issueAdminToken(secret []byte, subject string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    adminIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// middleware ตรวจ Bearer token ก่อนเข้า admin route
func requireAdminJWT(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
			}

			claims := new(jwt.RegisteredClaims)
			_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(adminIssuer))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set("admin", claims.Subject)
			return next(c)
		}
	}
}

// upperBound เป็น nil สำหรับ bracket สุดท้าย (ไม่มีเพดาน)
type bracketResponse struct {
	UpperBound *float64 `json:"upperBound"`
	Rate       float64  `json:"rate"`
}

func HandleGetTable(c echo.Context) error {
	category, err := ter.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown TER category. Use A, B or C")
	}

	table := ter.TableFor(category)
	brackets := make([]bracketResponse, 0, len(table))
	for _, b := range table {
		br := bracketResponse{Rate: b.Rate}
		if b.UpperBound != ter.Sentinel {
			upper := b.UpperBound
			br.UpperBound = &upper
		}
		brackets = append(brackets, br)
	}

	statuses := make([]string, 0, 4)
	for _, s := range category.Statuses() {
		statuses = append(statuses, s.Code())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"category": category.String(),
		"statuses": statuses,
		"brackets": brackets,
	})
}
