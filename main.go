package main

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/windeesel365/pph21-ter/config"
)

// data structure pattern ที่ client ส่งมา คำนวณ PPh 21 หนึ่งคน
// Income เก็บ raw token ไว้ตรวจรูปแบบก่อนแปลงเป็นตัวเลข
type TaxRequest struct {
	Income json.RawMessage `json:"income"`
	Status string          `json:"status"`
	Method string          `json:"method"`
}

func newServer(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Kalkulator PPh 21 Bulanan")
	})
	e.POST("/tax/calculations", HandleTaxCalculation)
	e.GET("/tax/ter-tables", HandleListCategories)

	if cfg.AdminEnabled() {
		admin := e.Group("/admin")
		admin.POST("/login", handleAdminLogin(cfg))
		admin.GET("/ter-tables/:category", HandleGetTable, requireAdminJWT(cfg.JWTSecret))
	} else {
		e.Logger.Warn("admin endpoints disabled: set ADMIN_USERNAME, ADMIN_PASSWORD and JWT_SECRET")
	}

	return e
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	e := newServer(cfg)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
