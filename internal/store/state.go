package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"boutique_back_end/internal/models"
)

const (
	DefaultOrderStatusDelay = 3 * time.Second
	DefaultAdminStatusDelay = 1500 * time.Millisecond
)

// Listener reçoit la vue complète après chaque mutation, dans l'ordre des
// mutations. Il ne doit pas rappeler State.
type Listener func(models.View)

// CatalogObserver est prévenu quand le catalogue combiné change.
// L'appel est fait sous verrou : l'implémentation ne doit pas bloquer.
type CatalogObserver interface {
	CatalogChanged(catalog []models.Product)
}

type Options struct {
	OrderStatusDelay time.Duration
	AdminStatusDelay time.Duration
	Observer         CatalogObserver
}

type editSession struct {
	active bool
	index  int
}

// State possède toute la vitrine : catalogue, panier, comptes, session,
// édition admin et messages transitoires. Chaque opération est sérialisée.
type State struct {
	mu   sync.Mutex
	repo Repository
	opts Options

	base    []models.Product
	custom  []models.Product
	cart    models.Cart
	users   models.Credentials
	session string

	edit   editSession
	form   models.ProductForm
	status models.Statuses
	modals models.Modals
	slide  int

	flashGen map[statusKind]uint64

	// bmu ordonne les diffusions, il est pris avant de relâcher mu
	bmu       sync.Mutex
	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// New crée l'état et le charge depuis le dépôt
func New(ctx context.Context, repo Repository, opts Options) (*State, error) {
	if opts.OrderStatusDelay <= 0 {
		opts.OrderStatusDelay = DefaultOrderStatusDelay
	}
	if opts.AdminStatusDelay <= 0 {
		opts.AdminStatusDelay = DefaultAdminStatusDelay
	}
	s := &State{
		repo:      repo,
		opts:      opts,
		base:      BaseProducts(),
		edit:      editSession{index: -1},
		flashGen:  make(map[statusKind]uint64),
		listeners: make(map[int]Listener),
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load remplace l'état en mémoire par les collections persistées.
// En cas d'erreur l'état courant est conservé.
func (s *State) Load(ctx context.Context) error {
	cart, err := s.repo.LoadCart(ctx)
	if err != nil {
		return err
	}
	custom, err := s.repo.LoadCustomProducts(ctx)
	if err != nil {
		return err
	}
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return err
	}
	session, err := s.repo.LoadSession(ctx)
	if err != nil {
		return err
	}

	return s.apply(func() (bool, error) {
		s.cart = cart
		s.custom = custom
		s.users = users
		s.session = session
		s.resetEditLocked()
		log.Printf("✅ Vitrine chargée: %d produits perso, %d articles au panier, %d comptes",
			len(custom), len(cart), len(users))
		return true, nil
	})
}

// Subscribe enregistre un listener et retourne la fonction de désabonnement
func (s *State) Subscribe(l Listener) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *State) broadcast(v models.View) {
	s.lmu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.lmu.Unlock()

	for _, l := range listeners {
		l(v)
	}
}

// apply exécute fn sous verrou puis, si fn a modifié l'état, diffuse la
// nouvelle vue. bmu est pris avant de relâcher mu : les vues partent dans
// l'ordre des mutations et la dernière reçue est toujours l'état courant.
func (s *State) apply(fn func() (bool, error)) error {
	s.mu.Lock()
	changed, err := fn()
	if !changed {
		s.mu.Unlock()
		return err
	}
	v := s.viewLocked()
	s.bmu.Lock()
	s.mu.Unlock()

	s.broadcast(v)
	s.bmu.Unlock()
	return err
}

// View reconstruit la vue complète depuis l'état courant
func (s *State) View() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *State) viewLocked() models.View {
	admin := models.IsAdmin(s.session)
	editIndex := -1
	if s.edit.active {
		editIndex = s.edit.index
	}
	return models.View{
		Products: RenderCatalog(buildCatalog(s.base, s.custom), admin),
		Cart:     renderCart(s.cart),
		User: models.UserArea{
			LoggedIn: s.session != "",
			Username: s.session,
			IsAdmin:  admin,
		},
		Status: s.status,
		Modals: s.modals,
		Admin: models.AdminPanel{
			Editing:   s.edit.active,
			EditIndex: editIndex,
			Form:      s.form,
		},
		Slide: s.slide,
	}
}

// Session retourne l'utilisateur connecté ("" si personne)
func (s *State) Session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *State) IsAdmin() bool {
	return models.IsAdmin(s.Session())
}

// Catalog retourne le catalogue combiné dans l'ordre stocké
func (s *State) Catalog() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildCatalog(s.base, s.custom)
}

// CustomProducts retourne une copie de la liste personnalisée
func (s *State) CustomProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.custom)
}

// Filter rend les produits dont le nom contient query, sans toucher au catalogue
func (s *State) Filter(query string) []models.ProductCard {
	return s.Browse(query, SortNone)
}

// Sort rend une copie du catalogue triée par prix
func (s *State) Sort(key SortKey) []models.ProductCard {
	return s.Browse("", key)
}

// Browse combine filtre puis tri
func (s *State) Browse(query string, key SortKey) []models.ProductCard {
	s.mu.Lock()
	entries := buildCatalog(s.base, s.custom)
	admin := models.IsAdmin(s.session)
	s.mu.Unlock()

	if query != "" {
		entries = FilterEntries(entries, query)
	}
	return RenderCatalog(SortEntries(entries, key), admin)
}

// SetSlide est appelé par le carrousel à chaque avancée
func (s *State) SetSlide(index int) {
	_ = s.apply(func() (bool, error) {
		if s.slide == index {
			return false, nil
		}
		s.slide = index
		return true, nil
	})
}

func (s *State) notifyCatalogLocked() {
	if s.opts.Observer == nil {
		return
	}
	catalog := make([]models.Product, 0, len(s.base)+len(s.custom))
	catalog = append(catalog, s.base...)
	catalog = append(catalog, s.custom...)
	s.opts.Observer.CatalogChanged(catalog)
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d (taille %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}
