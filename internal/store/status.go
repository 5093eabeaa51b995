package store

import "time"

type statusKind int

const (
	statusOrder statusKind = iota
	statusAdmin
	statusNotice
)

func (s *State) setStatusLocked(kind statusKind, msg string) {
	switch kind {
	case statusOrder:
		s.status.Order = msg
	case statusAdmin:
		s.status.Admin = msg
	case statusNotice:
		s.status.Notice = msg
	}
}

// flashLocked affiche msg puis l'efface après delay. onExpire s'exécute
// sous verrou au moment de l'effacement. Un nouveau message du même type
// annule l'effacement du précédent.
func (s *State) flashLocked(kind statusKind, msg string, delay time.Duration, onExpire func()) {
	s.flashGen[kind]++
	gen := s.flashGen[kind]
	s.setStatusLocked(kind, msg)

	time.AfterFunc(delay, func() {
		_ = s.apply(func() (bool, error) {
			if s.flashGen[kind] != gen {
				return false, nil
			}
			s.setStatusLocked(kind, "")
			if onExpire != nil {
				onExpire()
			}
			return true, nil
		})
	})
}
