package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"boutique_back_end/internal/database"
	"boutique_back_end/internal/models"
)

// Clés persistées, identiques à celles du localStorage de la page d'origine
const (
	KeyCart           = "cart"
	KeyCustomProducts = "customProducts"
	KeyUsers          = "users"
	KeyLoggedInUser   = "loggedInUser"
)

// Repository charge et sauvegarde chaque collection de la vitrine.
// Une sauvegarde réécrit toujours la collection entière.
type Repository interface {
	LoadCart(ctx context.Context) (models.Cart, error)
	SaveCart(ctx context.Context, cart models.Cart) error
	LoadCustomProducts(ctx context.Context) ([]models.Product, error)
	SaveCustomProducts(ctx context.Context, products []models.Product) error
	LoadUsers(ctx context.Context) (models.Credentials, error)
	SaveUsers(ctx context.Context, users models.Credentials) error
	LoadSession(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, username string) error
}

// KVRepository implémente Repository au-dessus d'un stockage clé/valeur,
// avec des valeurs JSON (sauf loggedInUser, stocké en chaîne brute).
type KVRepository struct {
	kv database.KeyValue
}

func NewRepository(kv database.KeyValue) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) LoadCart(ctx context.Context) (models.Cart, error) {
	cart := models.Cart{}
	if err := r.loadJSON(ctx, KeyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *KVRepository) SaveCart(ctx context.Context, cart models.Cart) error {
	if cart == nil {
		cart = models.Cart{}
	}
	return r.saveJSON(ctx, KeyCart, cart)
}

func (r *KVRepository) LoadCustomProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.loadJSON(ctx, KeyCustomProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *KVRepository) SaveCustomProducts(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return r.saveJSON(ctx, KeyCustomProducts, products)
}

func (r *KVRepository) LoadUsers(ctx context.Context) (models.Credentials, error) {
	users := models.Credentials{}
	if err := r.loadJSON(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = models.Credentials{}
	}
	return users, nil
}

func (r *KVRepository) SaveUsers(ctx context.Context, users models.Credentials) error {
	if users == nil {
		users = models.Credentials{}
	}
	return r.saveJSON(ctx, KeyUsers, users)
}

func (r *KVRepository) LoadSession(ctx context.Context) (string, error) {
	data, err := r.kv.Get(ctx, KeyLoggedInUser)
	if errors.Is(err, database.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", &LoadError{Key: KeyLoggedInUser, Err: err}
	}
	return string(data), nil
}

// SaveSession supprime la clé quand personne n'est connecté
func (r *KVRepository) SaveSession(ctx context.Context, username string) error {
	if username == "" {
		if err := r.kv.Delete(ctx, KeyLoggedInUser); err != nil {
			return fmt.Errorf("suppression de %q: %w", KeyLoggedInUser, err)
		}
		return nil
	}
	if err := r.kv.Set(ctx, KeyLoggedInUser, []byte(username)); err != nil {
		return fmt.Errorf("écriture de %q: %w", KeyLoggedInUser, err)
	}
	return nil
}

func (r *KVRepository) loadJSON(ctx context.Context, key string, dst interface{}) error {
	data, err := r.kv.Get(ctx, key)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return &LoadError{Key: key, Err: err}
	}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &LoadError{Key: key, Err: err}
	}
	return nil
}

func (r *KVRepository) saveJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encodage de %q: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("écriture de %q: %w", key, err)
	}
	return nil
}
