package seo_test

import (
	"encoding/json"
	"testing"

	"go-pestcontrol-web/pkg/seo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s seo.Schema) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s.JSON()), &m))
	return m
}

func TestArticleSchema(t *testing.T) {
	s := seo.Article(seo.ArticleData{
		Title:       "Signs of a Termite Infestation",
		Description: "How to spot termites early.",
		Author:      "Al-Ameen Pest Control",
		PublishedAt: "2025-11-03",
		Image:       "https://alameen-pest.com/images/termites.webp",
		URL:         "https://alameen-pest.com/en/blog/termite-signs",
	})

	m := decode(t, s)
	assert.Equal(t, "Article", m["@type"])
	assert.Equal(t, "Signs of a Termite Infestation", m["headline"])
	assert.Equal(t, "2025-11-03", m["datePublished"])

	author, ok := m["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Al-Ameen Pest Control", author["name"])
}

func TestArticleSchemaOmitsMissingFields(t *testing.T) {
	// Best effort: an incomplete record produces an incomplete schema,
	// never an error.
	m := decode(t, seo.Article(seo.ArticleData{Title: "Untitled"}))

	assert.Equal(t, "Untitled", m["headline"])
	assert.NotContains(t, m, "description")
	assert.NotContains(t, m, "author")
	assert.NotContains(t, m, "image")
}

func TestServiceSchema(t *testing.T) {
	m := decode(t, seo.Service(seo.ServiceData{
		Name:        "مكافحة الصراصير",
		Description: "رش وإبادة الصراصير مع ضمان",
		ServiceType: "Pest Control",
		Provider:    "Al-Ameen Pest Control",
		AreaServed:  "Jeddah",
	}))

	assert.Equal(t, "Service", m["@type"])
	assert.Equal(t, "مكافحة الصراصير", m["name"])
	provider, ok := m["provider"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "LocalBusiness", provider["@type"])
}

func TestFAQSchemaPreservesOrder(t *testing.T) {
	m := decode(t, seo.FAQ([]seo.QA{
		{Question: "هل الرش آمن للأطفال؟", Answer: "نعم، نستخدم مبيدات مرخصة وآمنة."},
		{Question: "How long does treatment take?", Answer: "Usually under two hours."},
	}))

	assert.Equal(t, "FAQPage", m["@type"])
	entities, ok := m["mainEntity"].([]interface{})
	require.True(t, ok)
	require.Len(t, entities, 2)

	first := entities[0].(map[string]interface{})
	assert.Equal(t, "هل الرش آمن للأطفال؟", first["name"])
}
