package main

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/windeesel365/pph21-ter/input"
	"github.com/windeesel365/pph21-ter/jsonvalidate"
	"github.com/windeesel365/pph21-ter/ter"
)

var maxIncome = decimal.NewFromInt(input.MaxIncome)

// validated input ที่พร้อมส่งเข้า ter.Calculate
type calcInput struct {
	Income int64
	Status ter.Status
	Method ter.Method
}

// validation input data ของ tax calculation
func validateTaxRequest(body []byte) (calcInput, error) {
	//validate raw JSON not empty
	if len(body) == 0 {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Please provide input data")
	}

	//validate raw JSON root-level key count match กับ key count of correct pattern
	expectedKeys := []string{"income", "status", "method"}
	count, err := jsonvalidate.JsonRootLevelKeyCount(string(body))
	if err != nil {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	if count != len(expectedKeys) {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid input format, ensure input just income, status and method")
	}

	//validate raw JSON root-level key order
	if err := jsonvalidate.CheckJSONOrder(body, expectedKeys); err != nil {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req := new(TaxRequest)
	if err := json.Unmarshal(body, req); err != nil {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid input format: "+err.Error())
	}

	income, err := validateIncome(req.Income)
	if err != nil {
		return calcInput{}, err
	}

	status, err := ter.ParseStatus(req.Status)
	if err != nil {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid status. Use one of TK/0, TK/1, TK/2, TK/3, K/0, K/1, K/2, K/3")
	}

	method, err := ter.ParseMethod(req.Method)
	if err != nil {
		return calcInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid method. Use gross or gross-up")
	}

	return calcInput{Income: income, Status: status, Method: method}, nil
}

// income ต้องเป็นเลขจำนวนเต็มล้วน (JSON number หรือ string ก็ได้)
// ไม่รับ ทศนิยม ตัวคั่นหลักพัน exponent หรือเครื่องหมายลบ และไม่เกิน MaxIncome
func validateIncome(raw json.RawMessage) (int64, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid income format")
		}
	}

	if text == "" || text == "null" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Income is required")
	}
	if strings.ContainsAny(text, ".,") {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Income must be a whole number of Rupiah without decimals or thousands separators")
	}
	if strings.HasPrefix(text, "-") {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Income must not be negative")
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "Income must contain digits 0-9 only")
		}
	}

	income, err := decimal.NewFromString(text)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid income format")
	}
	if income.GreaterThan(maxIncome) {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Income must not exceed "+maxIncome.String())
	}
	return income.IntPart(), nil
}
