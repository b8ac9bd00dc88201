package locale_test

import (
	"net/url"
	"strings"
	"testing"

	"go-pestcontrol-web/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRightToLeft(t *testing.T) {
	assert.True(t, locale.IsRightToLeft(locale.Arabic))
	assert.False(t, locale.IsRightToLeft(locale.English))

	assert.Equal(t, "rtl", locale.Direction(locale.Arabic))
	assert.Equal(t, "ltr", locale.Direction(locale.English))
}

func TestParseFallsBackToDefault(t *testing.T) {
	assert.Equal(t, locale.English, locale.Parse("en"))
	assert.Equal(t, locale.English, locale.Parse("EN"))
	assert.Equal(t, locale.Arabic, locale.Parse("ar"))
	assert.Equal(t, locale.Arabic, locale.Parse(""))
	assert.Equal(t, locale.Arabic, locale.Parse("fr"))
}

func TestResolve(t *testing.T) {
	t.Run("arabic prefers primary", func(t *testing.T) {
		got := locale.Resolve(locale.Arabic, "مكافحة الصراصير", "Cockroach Control")
		assert.Equal(t, "مكافحة الصراصير", got)
	})

	t.Run("english prefers fallback", func(t *testing.T) {
		got := locale.Resolve(locale.English, "مكافحة الصراصير", "Cockroach Control")
		assert.Equal(t, "Cockroach Control", got)
	})

	t.Run("missing primary degrades to fallback", func(t *testing.T) {
		got := locale.Resolve(locale.Arabic, "", "Cockroach Control")
		assert.Equal(t, "Cockroach Control", got)
	})

	t.Run("missing fallback degrades to primary", func(t *testing.T) {
		got := locale.Resolve(locale.English, "مكافحة الصراصير", "")
		assert.Equal(t, "مكافحة الصراصير", got)
	})
}

func TestBuildMessagingLink(t *testing.T) {
	t.Run("strips non-digits from handle", func(t *testing.T) {
		link := locale.BuildMessagingLink("+966 55 530-1460", "hello")
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/966555301460", u.Path)
	})

	t.Run("arabic message round-trips through encoding", func(t *testing.T) {
		msg := "مرحبا، أحتاج مكافحة حشرات في حي الحمراء"
		link := locale.BuildMessagingLink("+966555301460", msg)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, msg, u.Query().Get("text"))

		// The raw link itself must stay ASCII-safe
		assert.False(t, strings.ContainsAny(link, " \n"))
	})

	t.Run("digitless handle still yields a well-formed URL", func(t *testing.T) {
		link := locale.BuildMessagingLink("no-digits", "msg")
		_, err := url.Parse(link)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/?"))
	})
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, "/services/cockroaches", locale.PathFor(locale.Arabic, "/services/cockroaches"))
	assert.Equal(t, "/en/services/cockroaches", locale.PathFor(locale.English, "/services/cockroaches"))
	assert.Equal(t, "/", locale.PathFor(locale.Arabic, "/"))
	assert.Equal(t, "/en", locale.PathFor(locale.English, "/"))
	assert.Equal(t, "/en/contact", locale.PathFor(locale.English, "contact"))
}
