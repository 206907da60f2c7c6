// Package recommender карточки допродаж после бронирования.
package recommender

import (
	"strings"

	"github.com/salahou-dine/hon-hon/services/scoring"
)

// MaxCards больше карточек интерфейс не показывает
const MaxCards = 5

type CTA struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

type Card struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Why        string   `json:"why"`
	Tags       []string `json:"tags"`
	Confidence float64  `json:"confidence"`
	CTA        CTA      `json:"cta"`
}

// PostBookingResponse ответ /recommendations/post-booking
type PostBookingResponse struct {
	BookingID string               `json:"booking_id"`
	Summary   scoring.ScoreSummary `json:"summary"`
	Cards     []Card               `json:"cards"`
}

// BuildPostBookingCards правила проверяются по порядку, каждое добавляет максимум одну карточку
func BuildPostBookingCards(scores scoring.ScoreSummary, cabin string) []Card {
	cards := make([]Card, 0, 4)

	if scores.TripType == scoring.TripLong && strings.ToLower(cabin) == "economy" {
		cards = append(cards, Card{
			ID:         "seat_plus",
			Type:       "upsell",
			Title:      "Siège avec plus d’espace",
			Subtitle:   "Plus de confort sur votre vol long-courrier",
			Why:        "Vol long + cabine économique → confort recommandé",
			Tags:       []string{"Confort", "Vol long"},
			Confidence: 0.78,
			CTA:        CTA{Label: "Voir options", Action: "OPEN_SEAT_MAP"},
		})
	}

	if scores.ChurnRisk == scoring.RiskMedium || scores.ChurnRisk == scoring.RiskHigh {
		cards = append(cards, Card{
			ID:         "fast_track",
			Type:       "service",
			Title:      "Accès Fast Track",
			Subtitle:   "Réduisez l’attente aux contrôles",
			Why:        "Risque d’insatisfaction estimé → réduire les frictions à l’aéroport",
			Tags:       []string{"Aéroport", "Gain de temps"},
			Confidence: 0.70,
			CTA:        CTA{Label: "Ajouter", Action: "ADD_FAST_TRACK"},
		})
	}

	if scores.TripType == scoring.TripMedium || scores.TripType == scoring.TripLong {
		cards = append(cards, Card{
			ID:         "extra_baggage",
			Type:       "upsell",
			Title:      "Bagage supplémentaire",
			Subtitle:   "Plus simple pour un séjour de plusieurs jours",
			Why:        "Durée estimée du voyage → probabilité de besoin de bagage ↑",
			Tags:       []string{"Pratique"},
			Confidence: 0.62,
			CTA:        CTA{Label: "Voir tarifs", Action: "OPEN_BAGGAGE_OPTIONS"},
		})
	}

	business := scores.MotiveProb[scoring.MotiveBusiness]
	if business >= 0.6 {
		cards = append(cards, Card{
			ID:         "lounge",
			Type:       "service",
			Title:      "Salon (Lounge) avant embarquement",
			Subtitle:   "Espace calme, wifi, confort",
			Why:        "Motif probable business → attente de confort et productivité",
			Tags:       []string{"Business", "Confort"},
			Confidence: business,
			CTA:        CTA{Label: "Découvrir", Action: "OPEN_LOUNGE_INFO"},
		})
	}

	if len(cards) > MaxCards {
		cards = cards[:MaxCards]
	}
	return cards
}
