// Package timeline фазы поездки и статичный контент для экранов "Мои поездки".
package timeline

import "github.com/salahou-dine/hon-hon/models"

const (
	PhasePreDeparture = "pre_departure"
	PhaseCheckIn      = "check_in"
	PhaseDepartureDay = "departure_day"
	PhaseArrival      = "arrival"
	PhaseStay         = "stay"
	PhasePostTrip     = "post_trip"
)

// Phases в порядке прохождения
var Phases = []string{
	PhasePreDeparture,
	PhaseCheckIn,
	PhaseDepartureDay,
	PhaseArrival,
	PhaseStay,
	PhasePostTrip,
}

// ComputePhase текущая фаза поездки на дату today.
// Все сравнения по календарным дням.
func ComputePhase(today, depart models.Date, ret *models.Date) string {
	today, depart = models.NewDate(today.Time), models.NewDate(depart.Time)

	dMinus7 := depart.AddDays(-7)
	dMinus1 := depart.AddDays(-1)

	if today.Before(dMinus7) {
		return PhasePreDeparture
	}
	if !today.Before(dMinus7) && !today.After(dMinus1) {
		return PhaseCheckIn
	}
	if today.Equal(depart) {
		return PhaseDepartureDay
	}

	// oneway: после вылета сутки прилета, затем до пяти дней пребывания
	if ret == nil {
		if today.After(depart) && !today.After(depart.AddDays(1)) {
			return PhaseArrival
		}
		if !today.After(depart.AddDays(5)) {
			return PhaseStay
		}
		return PhasePostTrip
	}

	r := models.NewDate(ret.Time)
	if today.After(depart) && !today.After(depart.AddDays(1)) {
		return PhaseArrival
	}
	if !today.Before(depart.AddDays(2)) && !today.After(r) {
		return PhaseStay
	}
	if today.After(r) {
		return PhasePostTrip
	}

	// окна выше покрывают все даты, ветка оставлена как значение по умолчанию
	return PhasePreDeparture
}
