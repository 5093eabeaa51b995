package store

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"boutique_back_end/internal/models"
)

func (s *State) requireAdminLocked() error {
	if !models.IsAdmin(s.session) {
		return ErrNotAdmin
	}
	return nil
}

func (s *State) resetEditLocked() {
	s.edit = editSession{index: -1}
	s.form = models.ProductForm{}
}

// ToggleAdminPanel ouvre ou ferme le panneau ; le formulaire et l'édition
// en cours sont réinitialisés dans les deux cas.
func (s *State) ToggleAdminPanel() error {
	return s.apply(func() (bool, error) {
		if err := s.requireAdminLocked(); err != nil {
			return false, err
		}
		s.modals.Admin = !s.modals.Admin
		s.resetEditLocked()
		return true, nil
	})
}

// EditProduct pré-remplit le formulaire avec le produit personnalisé index
func (s *State) EditProduct(index int) error {
	return s.apply(func() (bool, error) {
		if err := s.requireAdminLocked(); err != nil {
			return false, err
		}
		if err := checkIndex(index, len(s.custom)); err != nil {
			return false, err
		}
		s.form = models.FormFromProduct(s.custom[index])
		s.edit = editSession{active: true, index: index}
		s.modals.Admin = true
		return true, nil
	})
}

// AddOrUpdateProduct valide le formulaire puis remplace le produit en cours
// d'édition ou en ajoute un nouveau. Un formulaire invalide est ignoré sans message.
func (s *State) AddOrUpdateProduct(ctx context.Context, form models.ProductForm) error {
	product, err := ParseProductForm(form)
	if err != nil {
		return err
	}

	return s.apply(func() (bool, error) {
		if err := s.requireAdminLocked(); err != nil {
			return false, err
		}

		updating := s.edit.active
		next := cloneProducts(s.custom)
		if updating {
			if err := checkIndex(s.edit.index, len(next)); err != nil {
				return false, err
			}
			next[s.edit.index] = product
		} else {
			next = append(next, product)
		}

		if err := s.repo.SaveCustomProducts(ctx, next); err != nil {
			return false, fmt.Errorf("sauvegarde des produits: %w", err)
		}
		s.custom = next
		s.resetEditLocked()

		msg := MsgProductAdded
		if updating {
			msg = MsgProductUpdated
		}
		log.Printf("✅ %s %q", msg, product.Name)
		s.flashLocked(statusAdmin, msg, s.opts.AdminStatusDelay, func() {
			// une nouvelle édition ouverte entre-temps garde le panneau
			if !s.edit.active {
				s.modals.Admin = false
			}
		})
		s.notifyCatalogLocked()
		return true, nil
	})
}

// DeleteProduct retire un produit personnalisé après confirmation. L'édition
// en cours est recalée pour ne jamais pointer sur un index périmé.
func (s *State) DeleteProduct(ctx context.Context, index int, confirmed bool) error {
	return s.apply(func() (bool, error) {
		if err := s.requireAdminLocked(); err != nil {
			return false, err
		}
		if !confirmed {
			return false, ErrConfirmationRequired
		}
		if err := checkIndex(index, len(s.custom)); err != nil {
			return false, err
		}

		next := make([]models.Product, 0, len(s.custom)-1)
		next = append(next, s.custom[:index]...)
		next = append(next, s.custom[index+1:]...)
		if err := s.repo.SaveCustomProducts(ctx, next); err != nil {
			return false, fmt.Errorf("sauvegarde des produits: %w", err)
		}
		removed := s.custom[index]
		s.custom = next

		if s.edit.active {
			switch {
			case s.edit.index == index:
				s.resetEditLocked()
			case s.edit.index > index:
				s.edit.index--
			}
		}

		log.Printf("🗑️ Produit supprimé: %q", removed.Name)
		s.notifyCatalogLocked()
		return true, nil
	})
}

// Usernames liste les comptes enregistrés, triés
func (s *State) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.users))
	for u := range s.users {
		names = append(names, u)
	}
	sort.Strings(names)
	return names
}

// ParseProductForm reprend la validation du formulaire admin : les quatre
// champs doivent être renseignés, prix et note non nuls.
func ParseProductForm(form models.ProductForm) (models.Product, error) {
	if form.Name == "" || form.ImageURL == "" {
		return models.Product{}, ErrInvalidProduct
	}

	price, err := parseLeadingFloat(form.Price)
	if err != nil || math.IsInf(price, 0) || price <= 0 {
		return models.Product{}, fmt.Errorf("%w: prix %q", ErrInvalidProduct, form.Price)
	}

	rating, err := parseLeadingInt(form.Rating)
	if err != nil || rating <= 0 || rating > models.MaxRating {
		return models.Product{}, fmt.Errorf("%w: note %q", ErrInvalidProduct, form.Rating)
	}

	return models.Product{
		Name:     form.Name,
		Price:    price,
		ImageURL: form.ImageURL,
		Rating:   rating,
	}, nil
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseLeadingFloat lit le nombre en tête de saisie et ignore la suite :
// "15abc" vaut 15, "abc" est refusé.
func parseLeadingFloat(raw string) (float64, error) {
	m := leadingFloat.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, ErrInvalidProduct
	}
	return strconv.ParseFloat(m, 64)
}

// parseLeadingInt lit l'entier en tête de saisie : "4.7" vaut 4, "3 stars" vaut 3
func parseLeadingInt(raw string) (int, error) {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, ErrInvalidProduct
	}
	return strconv.Atoi(m)
}
