package models

// CartItem a exactement la forme d'un Product : pas de quantité,
// un même produit ajouté deux fois apparaît deux fois.
type CartItem Product

// Cart est la séquence ordonnée des articles du panier
type Cart []CartItem

// Total recalcule la somme des prix, jamais mise en cache
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c {
		total += item.Price
	}
	return total
}
