package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/utils"
)

// ErrMissingUsername est renvoyé quand le formulaire arrive sans nom
var ErrMissingUsername = errors.New("nom d'utilisateur requis")

// Register crée un compte si le nom est libre. Aucune règle sur le mot de passe.
func (s *State) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return ErrMissingUsername
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hachage du mot de passe: %w", err)
	}

	return s.apply(func() (bool, error) {
		if _, exists := s.users[username]; exists {
			s.status.Register = MsgUserExists
			return true, fmt.Errorf("%w: %q", ErrUserExists, username)
		}

		next := make(models.Credentials, len(s.users)+1)
		for u, p := range s.users {
			next[u] = p
		}
		next[username] = hashed
		if err := s.repo.SaveUsers(ctx, next); err != nil {
			return false, fmt.Errorf("sauvegarde des comptes: %w", err)
		}
		s.users = next
		s.status.Register = MsgRegistered
		log.Printf("✅ Compte créé: %s", username)
		return true, nil
	})
}

// Login ouvre la session si le mot de passe correspond. Le nom doit
// correspondre exactement, alors que le rôle admin ignore la casse.
func (s *State) Login(ctx context.Context, username, password string) error {
	return s.apply(func() (bool, error) {
		stored, ok := s.users[username]
		if !ok || !utils.CheckPassword(password, stored) {
			s.status.Login = MsgInvalidCredentials
			return true, ErrInvalidCredentials
		}
		if err := s.repo.SaveSession(ctx, username); err != nil {
			return false, fmt.Errorf("sauvegarde de la session: %w", err)
		}
		s.session = username
		s.status.Login = ""
		s.modals.Login = false
		return true, nil
	})
}

// Logout ferme la session ; le panneau admin est refermé avec elle
func (s *State) Logout(ctx context.Context) error {
	return s.apply(func() (bool, error) {
		if err := s.repo.SaveSession(ctx, ""); err != nil {
			return false, fmt.Errorf("suppression de la session: %w", err)
		}
		s.session = ""
		s.modals.Admin = false
		s.modals.Checkout = false
		s.resetEditLocked()
		s.flashLocked(statusNotice, MsgLoggedOut, s.opts.OrderStatusDelay, nil)
		return true, nil
	})
}

func (s *State) ShowLogin() { s.setModal(func(m *models.Modals) { m.Login = true }) }

func (s *State) HideLogin() { s.setModal(func(m *models.Modals) { m.Login = false }) }

func (s *State) ShowRegister() { s.setModal(func(m *models.Modals) { m.Register = true }) }

func (s *State) HideRegister() { s.setModal(func(m *models.Modals) { m.Register = false }) }

func (s *State) setModal(fn func(*models.Modals)) {
	_ = s.apply(func() (bool, error) {
		fn(&s.modals)
		return true, nil
	})
}
