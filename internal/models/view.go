package models

// ProductCard est une carte de la grille produits telle que rendue au client
type ProductCard struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Rating   int     `json:"rating"`
	Stars    string  `json:"stars"`
	// CustomIndex n'est renseigné que pour les produits ajoutés par l'admin
	CustomIndex   *int `json:"customIndex,omitempty"`
	AdminControls bool `json:"adminControls"`
}

type CartLine struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

type UserArea struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Statuses regroupe les messages affichés dans la page
type Statuses struct {
	Order    string `json:"order"`
	Login    string `json:"login"`
	Register string `json:"register"`
	Admin    string `json:"admin"`
	Notice   string `json:"notice"`
}

type Modals struct {
	Checkout bool `json:"checkout"`
	Login    bool `json:"login"`
	Register bool `json:"register"`
	Admin    bool `json:"admin"`
}

type AdminPanel struct {
	Editing   bool        `json:"editing"`
	EditIndex int         `json:"editIndex"`
	Form      ProductForm `json:"form"`
}

// View est l'état complet de la vitrine, reconstruit à chaque rendu
type View struct {
	Products []ProductCard `json:"products"`
	Cart     CartView      `json:"cart"`
	User     UserArea      `json:"user"`
	Status   Statuses      `json:"status"`
	Modals   Modals        `json:"modals"`
	Admin    AdminPanel    `json:"admin"`
	Slide    int           `json:"slide"`
}
