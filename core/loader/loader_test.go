package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &stubFeature{name: "a", enabled: true}
	b := &stubFeature{name: "b", enabled: false}
	c := &stubFeature{name: "c", enabled: true}

	mgr := NewManager()
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(c)

	loaded, err := mgr.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, loaded)
	assert.False(t, b.loaded)
}

func TestManager_LoadAllErrors(t *testing.T) {
	t.Run("LoadFailure", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "bad", enabled: true, err: errors.New("boom")})

		_, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature bad: boom")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "x", enabled: true})
		mgr.Register(&stubFeature{name: "x", enabled: true})

		loaded, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "registered twice")
		assert.Equal(t, []string{"x"}, loaded)
	})
}
