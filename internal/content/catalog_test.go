package content_test

import (
	"testing"

	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := content.NewCatalog()

	svc, ok := c.ServiceBySlug("cockroaches")
	require.True(t, ok)
	assert.Equal(t, "Cockroach Control", svc.Name.En)
	assert.NotEmpty(t, svc.Name.Ar)

	_, ok = c.ServiceBySlug("dragons")
	assert.False(t, ok)

	post, ok := c.PostBySlug("termite-signs")
	require.True(t, ok)
	assert.NotEmpty(t, post.TOC)
	assert.NotEmpty(t, post.Related)

	d, ok := c.DistrictBySlug("al-hamra")
	require.True(t, ok)
	assert.Equal(t, "Al-Hamra", d.Name.En)

	assert.NotEmpty(t, c.Testimonials())
	assert.NotEmpty(t, c.HeroImages())
}

func TestEveryRecordCarriesBothLocales(t *testing.T) {
	c := content.NewCatalog()

	for _, svc := range c.Services() {
		assert.NotEmpty(t, svc.Name.Ar, "service %s missing arabic name", svc.Slug)
		assert.NotEmpty(t, svc.Name.En, "service %s missing english name", svc.Slug)
		assert.NotEmpty(t, svc.Description.Ar, svc.Slug)
		assert.NotEmpty(t, svc.Description.En, svc.Slug)
		for _, f := range svc.FAQs {
			assert.NotEmpty(t, f.Question.Ar)
			assert.NotEmpty(t, f.Answer.En)
		}
	}
	for _, post := range c.Posts() {
		assert.NotEmpty(t, post.Title.Ar, post.Slug)
		assert.NotEmpty(t, post.Title.En, post.Slug)
	}
}

func TestTranslationCatalog(t *testing.T) {
	t.Run("known key resolves per locale", func(t *testing.T) {
		assert.Equal(t, "خدماتنا", content.T(locale.Arabic, "nav.services"))
		assert.Equal(t, "Services", content.T(locale.English, "nav.services"))
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "nav.missing", content.T(locale.Arabic, "nav.missing"))
	})
}
