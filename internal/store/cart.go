package store

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"boutique_back_end/internal/models"
)

// AddToCart ajoute le premier produit du catalogue portant exactement ce nom
func (s *State) AddToCart(ctx context.Context, name string) error {
	return s.apply(func() (bool, error) {
		var found *models.Product
		for _, e := range buildCatalog(s.base, s.custom) {
			if e.Name == name {
				p := e.Product
				found = &p
				break
			}
		}
		if found == nil {
			return false, fmt.Errorf("%w: %q", ErrProductNotFound, name)
		}

		next := append(cloneCart(s.cart), models.CartItem(*found))
		if err := s.repo.SaveCart(ctx, next); err != nil {
			return false, fmt.Errorf("sauvegarde du panier: %w", err)
		}
		s.cart = next
		return true, nil
	})
}

// RemoveFromCart retire la ligne à l'index donné
func (s *State) RemoveFromCart(ctx context.Context, index int) error {
	return s.apply(func() (bool, error) {
		if err := checkIndex(index, len(s.cart)); err != nil {
			return false, err
		}
		next := make(models.Cart, 0, len(s.cart)-1)
		next = append(next, s.cart[:index]...)
		next = append(next, s.cart[index+1:]...)
		if err := s.repo.SaveCart(ctx, next); err != nil {
			return false, fmt.Errorf("sauvegarde du panier: %w", err)
		}
		s.cart = next
		return true, nil
	})
}

// Cart rend le panier courant avec son total
func (s *State) Cart() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return renderCart(s.cart)
}

// OpenCheckout ouvre la fenêtre de commande, réservée aux utilisateurs connectés
func (s *State) OpenCheckout() error {
	return s.apply(func() (bool, error) {
		if s.session == "" {
			s.flashLocked(statusNotice, MsgLoginBeforeCheckout, s.opts.OrderStatusDelay, nil)
			return true, ErrLoginRequired
		}
		s.modals.Checkout = true
		return true, nil
	})
}

func (s *State) CloseCheckout() {
	_ = s.apply(func() (bool, error) {
		s.modals.Checkout = false
		return true, nil
	})
}

// PlaceOrder vide le panier sans paiement ni contrôle du contenu et
// retourne une référence de commande. Le message de succès s'efface seul.
func (s *State) PlaceOrder(ctx context.Context) (string, error) {
	var ref string
	err := s.apply(func() (bool, error) {
		if s.session == "" {
			s.flashLocked(statusNotice, MsgLoginBeforeCheckout, s.opts.OrderStatusDelay, nil)
			return true, ErrLoginRequired
		}
		if err := s.repo.SaveCart(ctx, models.Cart{}); err != nil {
			return false, fmt.Errorf("sauvegarde du panier: %w", err)
		}
		count, total := len(s.cart), s.cart.Total()
		s.cart = models.Cart{}
		ref = uuid.NewString()
		log.Printf("✅ Commande %s passée par %s (%d articles, total %.2f)", ref, s.session, count, total)

		s.flashLocked(statusOrder, MsgOrderPlaced, s.opts.OrderStatusDelay, func() {
			s.modals.Checkout = false
		})
		return true, nil
	})
	return ref, err
}

func renderCart(cart models.Cart) models.CartView {
	lines := make([]models.CartLine, 0, len(cart))
	for i, item := range cart {
		lines = append(lines, models.CartLine{
			Index:    i,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})
	}
	return models.CartView{
		Items: lines,
		Count: len(cart),
		Total: cart.Total(),
	}
}

func cloneCart(in models.Cart) models.Cart {
	out := make(models.Cart, len(in), len(in)+1)
	copy(out, in)
	return out
}
