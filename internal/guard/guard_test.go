package guard_test

import (
	"testing"

	"github.com/izaj/izaj-golang/internal/guard"
	"github.com/izaj/izaj-golang/internal/kv"
	"github.com/izaj/izaj-golang/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the effects the guard asks the host to perform.
type recorder struct {
	prompts   int
	redirects []string
}

func (r *recorder) ShowAuthPrompt()      { r.prompts++ }
func (r *recorder) Redirect(path string) { r.redirects = append(r.redirects, path) }

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(kv.NewMemoryStore(), kv.NewMemoryStore())
}

func TestEvaluate(t *testing.T) {
	identity := &session.Identity{FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com"}

	t.Run("present identity admits with no effects", func(t *testing.T) {
		d := guard.Evaluate(identity, "/my-profile")
		assert.True(t, d.Admit)
		assert.False(t, d.ShowAuthPrompt)
		assert.Nil(t, d.RedirectTo)
	})

	t.Run("absent identity away from root prompts and redirects", func(t *testing.T) {
		d := guard.Evaluate(nil, "/my-profile")
		assert.False(t, d.Admit)
		assert.True(t, d.ShowAuthPrompt)
		require.NotNil(t, d.RedirectTo)
		assert.Equal(t, "/", *d.RedirectTo)
	})

	t.Run("absent identity at root prompts without redirect", func(t *testing.T) {
		d := guard.Evaluate(nil, "/")
		assert.False(t, d.Admit)
		assert.True(t, d.ShowAuthPrompt)
		assert.Nil(t, d.RedirectTo)
	})
}

func TestAnonymousVisitPromptsOnceAndRedirectsOnce(t *testing.T) {
	store := newStore(t)
	effects := &recorder{}
	g := guard.New(store, effects)

	admitted := g.Visit("/my-purchases")

	assert.False(t, admitted)
	assert.Equal(t, 1, effects.prompts)
	assert.Equal(t, []string{"/"}, effects.redirects)
}

func TestAnonymousVisitAtRootDoesNotRedirect(t *testing.T) {
	store := newStore(t)
	effects := &recorder{}
	g := guard.New(store, effects)

	g.Visit("/")

	assert.Equal(t, 1, effects.prompts)
	assert.Empty(t, effects.redirects)
}

func TestAuthenticatedVisitAdmitsSilently(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Login(t.Context(), session.Identity{FirstName: "Ana", Email: "ana@example.com"}, "tok", true))

	effects := &recorder{}
	g := guard.New(store, effects)

	assert.True(t, g.Visit("/my-profile"))
	assert.Zero(t, effects.prompts)
	assert.Empty(t, effects.redirects)
}

// A login completing while the guard is mounted must admit the view
// without a manual navigation.
func TestLoginWhileMountedAdmits(t *testing.T) {
	store := newStore(t)
	effects := &recorder{}
	g := guard.New(store, effects)

	require.False(t, g.Visit("/my-profile"))
	require.NoError(t, store.Login(t.Context(), session.Identity{FirstName: "Ana", Email: "ana@example.com"}, "tok", false))

	assert.True(t, g.Admitted())
	// No extra prompt or redirect from the re-evaluation.
	assert.Equal(t, 1, effects.prompts)
	assert.Equal(t, []string{"/"}, effects.redirects)
}

func TestLogoutWhileMountedDeniesAndPromptsAgain(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Login(t.Context(), session.Identity{FirstName: "Ana", Email: "ana@example.com"}, "tok", false))

	effects := &recorder{}
	g := guard.New(store, effects)
	require.True(t, g.Visit("/my-profile"))

	require.NoError(t, store.Logout(t.Context()))

	assert.False(t, g.Admitted())
	assert.Equal(t, 1, effects.prompts)
	assert.Equal(t, []string{"/"}, effects.redirects)
}

func TestLeaveStopsReacting(t *testing.T) {
	store := newStore(t)
	effects := &recorder{}
	g := guard.New(store, effects)

	g.Visit("/my-profile")
	g.Leave()

	require.NoError(t, store.Login(t.Context(), session.Identity{FirstName: "Ana", Email: "ana@example.com"}, "tok", false))
	assert.False(t, g.Admitted())
}
