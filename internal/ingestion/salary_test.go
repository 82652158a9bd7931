package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Salary
	}{
		{"hourly euro range", "30-40€/h", Salary{Min: ptr(30), Max: ptr(40), Currency: "EUR", RateType: RateHourly}},
		{"dollar k range per year", "Compensation: $80k–$120k per year", Salary{Min: ptr(80000), Max: ptr(120000), Currency: "USD", RateType: RateYearly}},
		{"french yearly single amount", "Salaire : 45 000 € brut par an", Salary{Min: ptr(45000), Currency: "EUR", RateType: RateYearly}},
		{"shared k multiplier", "80-120k€ /an", Salary{Min: ptr(80000), Max: ptr(120000), Currency: "EUR", RateType: RateYearly}},
		{"daily rate hint", "Mission de 6 mois, TJM 500€", Salary{Min: ptr(500), Currency: "EUR", RateType: RateDaily}},
		{"currency code", "4 200 EUR per month", Salary{Min: ptr(4200), Currency: "EUR", RateType: RateMonthly}},
		{"pound with decimals", "£12.50 an hour", Salary{Min: ptr(12.5), Currency: "GBP", RateType: RateHourly}},
		{"range with to", "50,000 to 60,000 USD", Salary{Min: ptr(50000), Max: ptr(60000), Currency: "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSalary(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSalary_NoCurrency(t *testing.T) {
	for _, text := range []string{
		"competitive salary offered",
		"2020 - 2023",
		"5 years of experience",
		"",
	} {
		t.Run(text, func(t *testing.T) {
			_, ok := ParseSalary(text)
			assert.False(t, ok)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw       string
		thousands bool
		want      float64
	}{
		{"30", false, 30},
		{"45 000", false, 45000},
		{"1,500", false, 1500},
		{"7.5", false, 7.5},
		{"40.000,50", false, 40000.5},
		{"80", true, 80000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseAmount(tt.raw, tt.thousands)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
