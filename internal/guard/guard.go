// Package guard gates protected views on the presence of a session
// identity. The access decision itself is a pure function; the Guard
// type is the reactive host that applies its effects and re-evaluates
// whenever the session changes.
package guard

import (
	"sync"

	"github.com/izaj/izaj-golang/internal/session"
)

// Root is where denied navigations are sent.
const Root = "/"

// Decision is the declared effect list for one evaluation. The host
// applies the effects; Evaluate never performs them itself.
type Decision struct {
	Admit          bool
	ShowAuthPrompt bool
	RedirectTo     *string
}

// Evaluate decides access for the given identity and location. Absent
// identity: deny, ask the host to open the auth prompt, and redirect to
// root unless already there. Present identity: admit with no effects.
func Evaluate(identity *session.Identity, path string) Decision {
	if identity != nil {
		return Decision{Admit: true}
	}

	d := Decision{ShowAuthPrompt: true}
	if path != Root {
		root := Root
		d.RedirectTo = &root
	}
	return d
}

// Effects is what the host UI must provide: a way to open the auth
// prompt and a way to change location.
type Effects interface {
	ShowAuthPrompt()
	Redirect(path string)
}

// Guard wires Evaluate to a session store and an effects sink. While a
// protected view is mounted, a login completing elsewhere admits it
// immediately; the prompt fires at most once per denied visit, and at
// most one redirect is issued.
type Guard struct {
	sessions *session.Store
	effects  Effects

	mu       sync.Mutex
	path     string
	mounted  bool
	prompted bool
	admitted bool
}

// New builds a guard and subscribes it to session changes.
func New(sessions *session.Store, effects Effects) *Guard {
	g := &Guard{sessions: sessions, effects: effects}
	sessions.Subscribe(func(identity *session.Identity) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.mounted {
			g.applyLocked(identity)
		}
	})
	return g
}

// Visit evaluates access to the given path and applies the resulting
// effects. It returns whether the view is admitted.
func (g *Guard) Visit(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.path = path
	g.mounted = true
	g.prompted = false
	g.applyLocked(g.sessions.Current())
	return g.admitted
}

// Leave unmounts the guard; session changes no longer re-evaluate.
func (g *Guard) Leave() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mounted = false
	g.admitted = false
}

// Admitted reports the outcome of the latest evaluation.
func (g *Guard) Admitted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.admitted
}

func (g *Guard) applyLocked(identity *session.Identity) {
	d := Evaluate(identity, g.path)

	if d.ShowAuthPrompt && !g.prompted {
		g.prompted = true
		g.effects.ShowAuthPrompt()
	}
	if d.RedirectTo != nil {
		// Track the new location so a repeated evaluation does not
		// redirect again.
		g.path = *d.RedirectTo
		g.effects.Redirect(*d.RedirectTo)
	}
	g.admitted = d.Admit
	if d.Admit {
		// Re-arm the prompt so a fresh denial (say, a logout while
		// mounted) prompts again.
		g.prompted = false
	}
}
