package carousel

import (
	"context"
	"sync"
	"time"
)

// Carousel fait défiler les diapositives de la page d'accueil à intervalle fixe
type Carousel struct {
	interval time.Duration
	slides   int
	onChange func(int)

	mu      sync.Mutex
	current int
}

// New crée un carrousel ; onChange reçoit l'index après chaque avancée
func New(interval time.Duration, slides int, onChange func(int)) *Carousel {
	return &Carousel{interval: interval, slides: slides, onChange: onChange}
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Next avance d'une diapositive, modulo leur nombre
func (c *Carousel) Next() int {
	c.mu.Lock()
	if c.slides > 0 {
		c.current = (c.current + 1) % c.slides
	}
	current := c.current
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(current)
	}
	return current
}

// Run avance à chaque tick jusqu'à l'annulation du contexte
func (c *Carousel) Run(ctx context.Context) {
	if c.slides <= 0 || c.interval <= 0 {
		return
	}
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Next()
		}
	}
}
