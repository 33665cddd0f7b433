package main

import (
	"github.com/windeesel365/pph21-ter/rupiah"
	"github.com/windeesel365/pph21-ter/ter"
)

type TaxResponse struct {
	Method       string         `json:"method"`
	Status       string         `json:"status"`
	Category     string         `json:"category"`
	Income       int64          `json:"income"`
	Rate         float64        `json:"rate"`
	Tax          int64          `json:"tax"`
	TaxAllowance int64          `json:"taxAllowance"`
	TotalIncome  int64          `json:"totalIncome"`
	TakeHomePay  int64          `json:"takeHomePay"`
	Converged    bool           `json:"converged"`
	Iterations   int            `json:"iterations"`
	Display      DisplayAmounts `json:"display"`
}

// แสดงผลลัพธ์ตามรูปแบบ Rupiah
type DisplayAmounts struct {
	Income       string `json:"income"`
	Rate         string `json:"rate"`
	Tax          string `json:"tax"`
	TaxAllowance string `json:"taxAllowance"`
	TotalIncome  string `json:"totalIncome"`
	TakeHomePay  string `json:"takeHomePay"`
}

// คำนวณ PPh 21 แล้วแปลง ter.Result เป็น response
func CalculatePPh21(in calcInput) (TaxResponse, ter.Result) {
	r := ter.CalculateFor(in.Income, in.Status, in.Method)

	return TaxResponse{
		Method:       r.Method.String(),
		Status:       in.Status.Code(),
		Category:     r.Category.String(),
		Income:       r.Income,
		Rate:         r.Rate,
		Tax:          r.Tax,
		TaxAllowance: r.Allowance,
		TotalIncome:  r.Total,
		TakeHomePay:  r.TakeHomePay(),
		Converged:    r.Converged,
		Iterations:   r.Iterations,
		Display: DisplayAmounts{
			Income:       rupiah.Format(r.Income),
			Rate:         rupiah.FormatRate(r.Rate),
			Tax:          rupiah.Format(r.Tax),
			TaxAllowance: rupiah.Format(r.Allowance),
			TotalIncome:  rupiah.Format(r.Total),
			TakeHomePay:  rupiah.Format(r.TakeHomePay()),
		},
	}, r
}
