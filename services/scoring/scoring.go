// Package scoring эвристики по атрибутам бронирования: тип поездки, риск оттока,
// вероятность мотива (leisure/business). Чистые функции без I/O.
package scoring

import (
	"strings"

	"github.com/salahou-dine/hon-hon/models"
)

const (
	TripShort  = "short"
	TripMedium = "medium"
	TripLong   = "long"

	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"

	MotiveLeisure  = "leisure"
	MotiveBusiness = "business"
)

// ScoreSummary итог эвристик для карточек после бронирования
type ScoreSummary struct {
	TripType   string             `json:"trip_type"`
	ChurnRisk  string             `json:"churn_risk"`
	MotiveProb map[string]float64 `json:"motive_prob"`
}

func daysBetween(d1, d2 models.Date) int {
	n := d1.DaysUntil(d2)
	if n < 0 {
		return -n
	}
	return n
}

// InferTripType без даты возврата считаем поездку средней
func InferTripType(depart models.Date, ret *models.Date) string {
	if ret == nil {
		return TripMedium
	}
	duration := daysBetween(depart, *ret)
	if duration <= 3 {
		return TripShort
	}
	if duration <= 10 {
		return TripMedium
	}
	return TripLong
}

// InferMotiveProb ageBucket: "under_30" / "30_60" / "over_60" / nil.
// Точный возраст не храним.
func InferMotiveProb(ageBucket *string) map[string]float64 {
	if ageBucket == nil {
		return map[string]float64{MotiveLeisure: 0.65, MotiveBusiness: 0.35}
	}
	if *ageBucket == "30_60" {
		return map[string]float64{MotiveLeisure: 0.35, MotiveBusiness: 0.65}
	}
	return map[string]float64{MotiveLeisure: 0.75, MotiveBusiness: 0.25}
}

// InferChurnRisk economy +2, long +1, disloyal +2.
// Неизвестные cabin/tripType просто не добавляют очков, это не валидация.
func InferChurnRisk(cabin, tripType string, loyalty *string) string {
	score := 0
	if strings.ToLower(cabin) == "economy" {
		score += 2
	}
	if tripType == TripLong {
		score += 1
	}
	if loyalty != nil && *loyalty == "disloyal" {
		score += 2
	}

	if score >= 4 {
		return RiskHigh
	}
	if score >= 2 {
		return RiskMedium
	}
	return RiskLow
}

func ComputeScores(depart models.Date, ret *models.Date, cabin string, ageBucket, loyalty *string) ScoreSummary {
	tripType := InferTripType(depart, ret)
	return ScoreSummary{
		TripType:   tripType,
		ChurnRisk:  InferChurnRisk(cabin, tripType, loyalty),
		MotiveProb: InferMotiveProb(ageBucket),
	}
}
