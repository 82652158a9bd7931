package ingestion

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary rate types
const (
	RateHourly  = "hourly"
	RateDaily   = "daily"
	RateMonthly = "monthly"
	RateYearly  = "yearly"
)

// Salary is a pay range read from posting text
type Salary struct {
	Min      *float64
	Max      *float64
	Currency string
	RateType string
}

const amountPattern = `(\d+(?:[.,\x{00A0} ]\d{3})*(?:[.,]\d{1,2})?)\s*(k)?`

var (
	// salaryRe matches "30-40€/h", "$80k–$120k per year", "45 000 € brut par an".
	// Groups: 1 leading symbol, 2-3 first amount, 4 second leading symbol,
	// 5-6 second amount, 7 trailing currency, 8 rate unit.
	salaryRe = regexp.MustCompile(`(?i)([€$£])?\s*` + amountPattern +
		`(?:\s*(?:[-–—]|to|à)\s*([€$£])?\s*` + amountPattern + `)?` +
		`\s*(€|\$|£|euros?\b|eur\b|usd\b|gbp\b|chf\b)?` +
		`(?:\s*(?:brut|gross|net))?` +
		`(?:\s*(?:/|per|par|an|a)?\s*(hour|hr|h|heure|day|d|jour|j|month|mo|mois|year|yr|annum|an|année)\b)?`)

	dailyHintRe = regexp.MustCompile(`(?i)\btjm\b|daily rate|taux journalier`)
)

var currencyCodes = map[string]string{
	"€": "EUR", "euro": "EUR", "euros": "EUR", "eur": "EUR",
	"$": "USD", "usd": "USD",
	"£": "GBP", "gbp": "GBP",
	"chf": "CHF",
}

var rateUnits = map[string]string{
	"hour": RateHourly, "hr": RateHourly, "h": RateHourly, "heure": RateHourly,
	"day": RateDaily, "d": RateDaily, "jour": RateDaily, "j": RateDaily,
	"month": RateMonthly, "mo": RateMonthly, "mois": RateMonthly,
	"year": RateYearly, "yr": RateYearly, "annum": RateYearly, "an": RateYearly, "année": RateYearly,
}

// ParseSalary finds the first amount or range in text that carries a
// currency. ok is false when there is none. A lone amount sets Min only.
func ParseSalary(text string) (Salary, bool) {
	for _, m := range salaryRe.FindAllStringSubmatch(text, -1) {
		currency := firstNonEmpty(m[1], m[4], m[7])
		if currency == "" {
			continue
		}
		code, ok := currencyCodes[strings.ToLower(currency)]
		if !ok {
			continue
		}

		lo, ok := parseAmount(m[2], m[3] != "")
		if !ok {
			continue
		}
		s := Salary{Min: &lo, Currency: code, RateType: rateUnits[strings.ToLower(m[8])]}

		if m[5] != "" {
			hi, ok := parseAmount(m[5], m[6] != "")
			if ok {
				// "80-120k": the multiplier applies to both bounds
				if m[6] != "" && m[3] == "" && lo < 1000 {
					lo *= 1000
				}
				s.Max = &hi
			}
		}

		if s.RateType == "" && dailyHintRe.MatchString(text) {
			s.RateType = RateDaily
		}
		return s, true
	}
	return Salary{}, false
}

// parseAmount reads "45 000", "1,500", "7.5" and "40.000,50". A separator
// followed by exactly three digits groups thousands; otherwise it is decimal.
func parseAmount(raw string, thousands bool) (float64, bool) {
	raw = strings.NewReplacer(" ", "", "\u00a0", "").Replace(raw)

	decimal := ""
	if idx := strings.LastIndexAny(raw, ".,"); idx >= 0 && len(raw)-idx-1 != 3 {
		decimal = raw[idx+1:]
		raw = raw[:idx]
	}
	raw = strings.NewReplacer(".", "", ",", "").Replace(raw)
	if decimal != "" {
		raw += "." + decimal
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if thousands {
		v *= 1000
	}
	return v, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
