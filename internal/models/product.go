package models

// Product est un article du catalogue (intégré ou ajouté par l'admin).
// Les tags JSON reprennent le format déjà persisté par la boutique.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Rating   int     `json:"rating"`
}

// MaxRating borne la note affichée en étoiles
const MaxRating = 5

// ProductForm contient les champs bruts du formulaire admin, tels que saisis
type ProductForm struct {
	Name     string `json:"name" form:"name"`
	Price    string `json:"price" form:"price"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
	Rating   string `json:"rating" form:"rating"`
}

// FormFromProduct pré-remplit le formulaire admin à partir d'un produit
func FormFromProduct(p Product) ProductForm {
	return ProductForm{
		Name:     p.Name,
		Price:    formatPrice(p.Price),
		ImageURL: p.ImageURL,
		Rating:   formatInt(p.Rating),
	}
}
