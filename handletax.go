// Handle tax calculation
package main

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/windeesel365/pph21-ter/ter"
)

func HandleTaxCalculation(c echo.Context) error {
	// Read body to a variable
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	defer c.Request().Body.Close()

	in, err := validateTaxRequest(body)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return c.JSON(he.Code, map[string]interface{}{"error": he.Message})
		}
		return err
	}

	response, result := CalculatePPh21(in)
	warnIfNotConverged(c.Logger(), result)

	return c.JSON(http.StatusOK, response)
}

// gross-up ที่ไม่ converge ยังตอบผลจาก rate สุดท้าย แต่ log ไว้ให้ตรวจ
func warnIfNotConverged(logger echo.Logger, r ter.Result) {
	if r.Converged {
		return
	}
	logger.Warnf("gross-up for income %d category %s did not converge after %d iterations, using rate %v",
		r.Income, r.Category, r.Iterations, r.Rate)
}

type categoryInfo struct {
	Category string   `json:"category"`
	Statuses []string `json:"statuses"`
}

// list TER categories กับ PTKP status ที่อยู่ในแต่ละ category
func HandleListCategories(c echo.Context) error {
	var out []categoryInfo
	for _, cat := range ter.Categories() {
		info := categoryInfo{Category: cat.String()}
		for _, s := range cat.Statuses() {
			info.Statuses = append(info.Statuses, s.Code())
		}
		out = append(out, info)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}
