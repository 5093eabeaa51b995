package store

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound      = errors.New("produit introuvable")
	ErrIndexOutOfRange      = errors.New("index hors limites")
	ErrLoginRequired        = errors.New("connexion requise")
	ErrUserExists           = errors.New("utilisateur déjà existant")
	ErrInvalidCredentials   = errors.New("identifiants invalides")
	ErrInvalidProduct       = errors.New("produit invalide")
	ErrConfirmationRequired = errors.New("confirmation requise")
	ErrNotAdmin             = errors.New("accès réservé à l'administrateur")
)

// Messages visibles côté client, repris tels quels de la page d'origine
const (
	MsgLoginBeforeCheckout = "Please login before checkout."
	MsgOrderPlaced         = "Order placed successfully!"
	MsgUserExists          = "Username already exists"
	MsgRegistered          = "Registered successfully. You can now login."
	MsgInvalidCredentials  = "Invalid credentials."
	MsgLoggedOut           = "You have been logged out."
	MsgProductAdded        = "Product added!"
	MsgProductUpdated      = "Product updated!"
	MsgConfirmDelete       = "Are you sure you want to delete this product?"
)

// LoadError signale une valeur persistée illisible pour une clé donnée
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("chargement de %q impossible: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
