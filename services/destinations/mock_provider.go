package destinations

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/salahou-dine/hon-hon/models"
)

type mockEntry struct {
	name    string
	address string
	price   string
}

var mockCatalog = map[string][]mockEntry{
	models.CategoryHotel: {
		{"Budget Inn", "22 Rue Éco", "€"},
		{"Eco Lodge", "9 Rue Simple", "€"},
		{"City Hostel", "3 Rue Centrale", "€"},
		{"Cheap Stay", "14 Avenue Populaire", "€"},
		{"Simple Rooms", "18 Bd Urbain", "€"},

		{"Hôtel Central", "12 Rue du Centre", "€€"},
		{"Riad Atlas", "4 Derb Tradition", "€€"},
		{"Comfort Hotel", "6 Avenue Calme", "€€"},
		{"Medina Stay", "11 Rue Kasbah", "€€"},

		{"Skyline Hotel", "8 Avenue Panorama", "€€€"},
		{"Business Suites", "1 Bd Affaires", "€€€"},
		{"Grand Palace", "2 Avenue Prestige", "€€€"},
	},
	models.CategoryRestaurant: {
		{"Street Bites", "2 Place Populaire", "€"},
		{"Snack Express", "7 Rue Marché", "€"},
		{"Souk Grill", "1 Rue Souk", "€"},
		{"Pasta Corner", "13 Rue Étudiante", "€"},

		{"Café Medina", "17 Rue Ancienne", "€€"},
		{"Sea & Spice", "10 Avenue du Port", "€€"},
		{"Vegan Corner", "19 Rue Verte", "€€"},
		{"Brasserie du Centre", "4 Bd Central", "€€"},

		{"Le Gourmet", "5 Rue des Saveurs", "€€€"},
		{"Chef’s Table", "8 Avenue Luxe", "€€€"},
	},
	models.CategoryActivity: {
		{"Musée National", "3 Avenue Culture", "€"},
		{"City Walk (Free Tour)", "Point de départ Centre", "€"},
		{"Parc & Jardin", "Boulevard Verdure", "€"},

		{"Tour City View", "1 Place Horizon", "€€"},
		{"Atelier Cuisine", "6 Rue Atelier", "€€"},
		{"Excursion Nature", "Route des Montagnes", "€€"},
		{"Croisière Sunset", "Quai Principal", "€€"},

		{"Spectacle Soirée", "12 Avenue Arts", "€€€"},
		{"Experience VIP", "Avenue Prestige", "€€€"},
	},
	models.CategoryTransport: {
		{"Navette Aéroport", "Terminal Arrivées", "€"},
		{"Métro / Tram", "Station Centrale", "€"},
		{"Bus Urbain", "Arrêt Principal", "€"},

		{"Taxi Officiel", "Zone taxis", "€€"},
		{"VTC", "Point de prise", "€€"},
		{"Transfert Privé", "Réservation en ligne", "€€"},

		{"Location Voiture", "Agence Centre", "€€€"},
		{"Chauffeur Premium", "Service sur demande", "€€€"},
	},
}

// budgetPriceLevels допустимые ценовые уровни для бюджета
var budgetPriceLevels = map[string]map[string]bool{
	models.BudgetLow:  {"€": true},
	models.BudgetMid:  {"€": true, "€€": true},
	models.BudgetHigh: {"€€": true, "€€€": true},
}

// MockProvider статичный каталог шаблонов; рейтинг и расстояние
// детерминированно выводятся из id, повторные запросы дают одинаковый ответ.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	entries, ok := mockCatalog[category]
	if !ok {
		return []models.DestinationItem{}, nil
	}

	if b := normalizeBudgetPtr(budget); b != nil {
		allowed := budgetPriceLevels[*b]
		filtered := make([]mockEntry, 0, len(entries))
		for _, e := range entries {
			if allowed[e.price] {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	items := make([]models.DestinationItem, 0, len(entries))
	for _, e := range entries {
		id := fmt.Sprintf("%s_%s_%s", category, slug(city), slug(e.name))
		rating, distance := mockMetrics(id)
		image := fmt.Sprintf("https://picsum.photos/seed/%s/400/250", id)
		items = append(items, models.DestinationItem{
			ID:         id,
			Category:   category,
			Name:       fmt.Sprintf("%s — %s", e.name, city),
			Rating:     rating,
			PriceLevel: e.price,
			DistanceKm: distance,
			Address:    fmt.Sprintf("%s, %s", e.address, city),
			ImageURL:   &image,
			Source:     "mock",
		})
	}

	return nearestFirst(items, limit), nil
}

// mockMetrics рейтинг 3.6..4.9 и расстояние 0.3..6.5 км с шагом 0.1
func mockMetrics(id string) (float64, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum64()
	rating := float64(36+sum%14) / 10
	distance := float64(3+(sum>>16)%63) / 10
	return rating, distance
}
