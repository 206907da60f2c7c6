package timeline

import "github.com/salahou-dine/hon-hon/models"

// Symbolic actions, фронтенд сам сопоставляет их с экранами
const (
	ActionOpenPostBookingReco = "OPEN_POST_BOOKING_RECO"
	ActionOpenBaggageOptions  = "OPEN_BAGGAGE_OPTIONS"
	ActionOpenSeatMap         = "OPEN_SEAT_MAP"
	ActionOpenCheckInInfo     = "OPEN_CHECKIN_INFO"
	ActionAddFastTrack        = "ADD_FAST_TRACK"
	ActionOpenAirportTips     = "OPEN_AIRPORT_TIPS"
	ActionOpenLoungeInfo      = "OPEN_LOUNGE_INFO"
	ActionOpenArrivalReco     = "OPEN_ARRIVAL_RECO"
	ActionOpenFeedback        = "OPEN_FEEDBACK"
	ActionOpenPreferences     = "OPEN_PREFERENCES"
)

type Step struct {
	Phase       string   `json:"phase"`
	Active      bool     `json:"active"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

type Dates struct {
	DepartDate models.Date  `json:"depart_date"`
	ReturnDate *models.Date `json:"return_date"`
}

type Timeline struct {
	BookingID   string `json:"booking_id"`
	Destination string `json:"destination"`
	Origin      string `json:"origin"`
	TripType    string `json:"trip_type"`
	Cabin       string `json:"cabin"`
	Status      string `json:"status"`
	Dates       Dates  `json:"dates"`
	Steps       []Step `json:"steps"`
}

func stepTemplates() []Step {
	return []Step{
		{
			Phase:       PhasePreDeparture,
			Title:       "Pré-départ",
			Description: "Préparez votre voyage : documents, bagages, options de confort.",
			Actions:     []string{ActionOpenPostBookingReco, ActionOpenBaggageOptions, ActionOpenSeatMap},
		},
		{
			Phase:       PhaseCheckIn,
			Title:       "Check-in",
			Description: "Finalisez avant le départ : check-in, infos aéroport, fast track.",
			Actions:     []string{ActionOpenCheckInInfo, ActionAddFastTrack, ActionOpenAirportTips},
		},
		{
			Phase:       PhaseDepartureDay,
			Title:       "Jour du départ",
			Description: "Derniers rappels : porte d’embarquement, temps d’attente, services.",
			Actions:     []string{ActionOpenAirportTips, ActionAddFastTrack, ActionOpenLoungeInfo},
		},
		{
			Phase:       PhaseArrival,
			Title:       "Arrivée",
			Description: "À votre arrivée : transport, hôtel, restaurants, activités.",
			Actions:     []string{ActionOpenArrivalReco},
		},
		{
			Phase:       PhaseStay,
			Title:       "Séjour",
			Description: "Profitez : activités, restaurants, retours pour améliorer vos recommandations.",
			Actions:     []string{ActionOpenArrivalReco, ActionOpenFeedback},
		},
		{
			Phase:       PhasePostTrip,
			Title:       "Après le voyage",
			Description: "Aidez-nous à améliorer : feedback global, préférences, récapitulatif.",
			Actions:     []string{ActionOpenFeedback, ActionOpenPreferences},
		},
	}
}

// BuildSteps все шесть шагов, активен ровно шаг с фазой current
func BuildSteps(current string) []Step {
	steps := stepTemplates()
	for i := range steps {
		steps[i].Active = steps[i].Phase == current
	}
	return steps
}

func BuildTimeline(b *models.Booking, today models.Date) Timeline {
	current := ComputePhase(today, b.DepartDate, b.ReturnDate)
	return Timeline{
		BookingID:   b.ID,
		Destination: b.Destination,
		Origin:      b.Origin,
		TripType:    b.TripType,
		Cabin:       b.Cabin,
		Status:      current,
		Dates: Dates{
			DepartDate: b.DepartDate,
			ReturnDate: b.ReturnDate,
		},
		Steps: BuildSteps(current),
	}
}
