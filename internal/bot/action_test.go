package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	t.Run("strips the callback prefix", func(t *testing.T) {
		a := parseAction("\f" + cbAddStart)
		assert.Equal(t, ActionAddStart, a.Kind)
		assert.Empty(t, a.Payload)
	})

	t.Run("splits unique from payload", func(t *testing.T) {
		a := parseAction("\f" + cbAddCategory + "|flower")
		assert.Equal(t, ActionAddCategory, a.Kind)
		assert.Equal(t, "flower", a.Payload)
	})

	t.Run("payload may contain the separator", func(t *testing.T) {
		a := parseAction(cbEditValue + "|a|b")
		assert.Equal(t, ActionEditValue, a.Kind)
		assert.Equal(t, "a|b", a.Payload)
	})

	t.Run("unknown unique maps to ActionUnknown", func(t *testing.T) {
		a := parseAction("\fsomething_else|42")
		assert.Equal(t, ActionUnknown, a.Kind)
	})

	t.Run("empty data maps to ActionUnknown", func(t *testing.T) {
		a := parseAction("")
		assert.Equal(t, ActionUnknown, a.Kind)
	})
}
