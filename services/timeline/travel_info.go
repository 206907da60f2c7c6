package timeline

import "github.com/salahou-dine/hon-hon/models"

type InfoItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tag         *string `json:"tag"`
}

// TravelInfo памятка для фаз check_in и departure_day.
// Поля бронирования заполняются только если передан booking.
type TravelInfo struct {
	BookingID   *string      `json:"booking_id"`
	Phase       string       `json:"phase"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Origin      *string      `json:"origin"`
	Destination *string      `json:"destination"`
	DepartDate  *models.Date `json:"depart_date"`
	Checklist   []InfoItem   `json:"checklist"`
	Tips        []InfoItem   `json:"tips"`
	Services    []InfoItem   `json:"services"`
}

func item(id, title, description, tag string) InfoItem {
	it := InfoItem{ID: id, Title: title, Description: description}
	if tag != "" {
		it.Tag = &tag
	}
	return it
}

func (ti *TravelInfo) withBooking(b *models.Booking) TravelInfo {
	if b != nil {
		id, origin, dest, depart := b.ID, b.Origin, b.Destination, b.DepartDate
		ti.BookingID = &id
		ti.Origin = &origin
		ti.Destination = &dest
		ti.DepartDate = &depart
	}
	return *ti
}

func CheckInInfo(b *models.Booking) TravelInfo {
	info := &TravelInfo{
		Phase:    PhaseCheckIn,
		Title:    "Check-in",
		Subtitle: "Finalisez avant le depart : check-in, infos aeroport, fast track.",
		Checklist: []InfoItem{
			item("doc_id", "Piece d'identite", "Passeport ou CNI selon destination.", "document"),
			item("boarding_pass", "Carte d'embarquement", "Check-in en ligne recommande pour gagner du temps.", "check-in"),
			item("baggage", "Bagages", "Respecter les limites de poids et dimensions.", "bagage"),
		},
		Tips: []InfoItem{
			item("online_window", "Fenetre check-in", "Ouvre 24h avant le depart (selon vol).", ""),
			item("airport_time", "Arriver tot", "Prevoir 2h (vol national) ou 3h (international).", ""),
		},
		Services: []InfoItem{
			item("fast_track", "Fast Track", "Acces prioritaire aux controles de securite.", "service"),
			item("seat", "Choisir mon siege", "Selection de siege selon disponibilite.", "confort"),
		},
	}
	return info.withBooking(b)
}

func DepartureDayInfo(b *models.Booking) TravelInfo {
	info := &TravelInfo{
		Phase:    PhaseDepartureDay,
		Title:    "Jour du depart",
		Subtitle: "Derniers rappels : porte d'embarquement, attente, services.",
		Checklist: []InfoItem{
			item("gate", "Porte d'embarquement", "Verifier l'ecran d'affichage regulierement.", "embarquement"),
			item("security", "Controle de securite", "Prevoir du temps selon l'affluence.", "aeroport"),
			item("boarding_time", "Heure d'embarquement", "Se presenter avant l'heure indiquee.", "horaires"),
		},
		Tips: []InfoItem{
			item("documents", "Documents a portee", "Passeport et carte d'embarquement faciles d'acces.", ""),
			item("carry_on", "Bagage cabine", "Objets essentiels uniquement pour accelerer le controle.", ""),
		},
		Services: []InfoItem{
			item("fast_track", "Fast Track", "Option pour reduire l'attente aux controles.", "service"),
			item("lounge", "Acces lounge", "Espace calme avec wifi et rafraichissements.", "confort"),
		},
	}
	return info.withBooking(b)
}
