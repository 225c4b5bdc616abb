package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcesForSubject_MateriaConocida(t *testing.T) {
	r := ResourcesForSubject("Matemáticas")
	assert.Equal(t, defaultCatalog["matemáticas"], r)

	// insensible a mayúsculas y espacios
	assert.Equal(t, r, ResourcesForSubject("  MATEMÁTICAS "))
}

func TestResourcesForSubject_FallbackGenerico(t *testing.T) {
	r := ResourcesForSubject("Filosofía")
	assert.Equal(t, genericResources, r)
	assert.NotEmpty(t, r.VideoURL)
	assert.NotEmpty(t, r.DocumentURL)
	assert.NotEmpty(t, r.PracticeURL)
}

func TestResourcesForSubject_CatalogoCompleto(t *testing.T) {
	for subject, res := range defaultCatalog {
		assert.NotEmpty(t, res.VideoURL, subject)
		assert.NotEmpty(t, res.DocumentURL, subject)
		assert.NotEmpty(t, res.PracticeURL, subject)
	}
}
