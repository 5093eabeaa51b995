package store

import (
	"sort"
	"strings"

	"boutique_back_end/internal/models"
)

// Produits intégrés, immuables à l'exécution
var baseProducts = []models.Product{
	{Name: "T-Shirt", Price: 15, ImageURL: "images/1.webp", Rating: 4},
	{Name: "T-Shirt", Price: 15, ImageURL: "images/2.png", Rating: 4},
	{Name: "T-Shirt", Price: 15, ImageURL: "images/3.webp", Rating: 4},
	{Name: "Shirt", Price: 20, ImageURL: "images/4.avif", Rating: 4},
	{Name: "Shirt", Price: 20, ImageURL: "images/6.jpeg", Rating: 4},
	{Name: "Shirt", Price: 20, ImageURL: "images/7.avif", Rating: 4},
}

// BaseProducts retourne une copie du catalogue intégré
func BaseProducts() []models.Product {
	out := make([]models.Product, len(baseProducts))
	copy(out, baseProducts)
	return out
}

// Entry est un produit du catalogue combiné avec son origine.
// CustomIndex vaut -1 pour un produit intégré.
type Entry struct {
	models.Product
	CustomIndex int
}

func (e Entry) IsCustom() bool { return e.CustomIndex >= 0 }

// SortKey est la valeur du sélecteur de tri
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey ramène toute valeur inconnue à l'ordre stocké
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortKey(s)
	}
	return SortNone
}

// buildCatalog concatène intégrés puis personnalisés, dans cet ordre
func buildCatalog(base, custom []models.Product) []Entry {
	entries := make([]Entry, 0, len(base)+len(custom))
	for _, p := range base {
		entries = append(entries, Entry{Product: p, CustomIndex: -1})
	}
	for i, p := range custom {
		entries = append(entries, Entry{Product: p, CustomIndex: i})
	}
	return entries
}

// FilterEntries garde les produits dont le nom contient la requête (casse ignorée)
func FilterEntries(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// SortEntries trie une copie par prix, l'ordre stocké n'est jamais modifié
func SortEntries(entries []Entry, key SortKey) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// Stars rend la note sur cinq étoiles
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > models.MaxRating {
		rating = models.MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.MaxRating-rating)
}

// RenderCatalog construit les cartes produits. Les boutons Edit/Delete ne
// sont proposés qu'à l'admin et uniquement sur les produits personnalisés.
func RenderCatalog(entries []Entry, admin bool) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(entries))
	for _, e := range entries {
		card := models.ProductCard{
			Name:     e.Name,
			Price:    e.Price,
			ImageURL: e.ImageURL,
			Rating:   e.Rating,
			Stars:    Stars(e.Rating),
		}
		if e.IsCustom() {
			idx := e.CustomIndex
			card.CustomIndex = &idx
			card.AdminControls = admin
		}
		cards = append(cards, card)
	}
	return cards
}
