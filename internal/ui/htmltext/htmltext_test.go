// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenParagraphs(t *testing.T) {
	in := "<p>Hola, soy Eulogio.</p><p>¿En qué puedo ayudarte?</p>"
	want := "Hola, soy Eulogio.\n\n¿En qué puedo ayudarte?"
	assert.Equal(t, want, Flatten(in))
}

func TestFlattenInlineMarkup(t *testing.T) {
	in := "<p><strong>Nota:</strong> lleva el <em>DNI</em> original.</p>"
	assert.Equal(t, "Nota: lleva el DNI original.", Flatten(in))
}

func TestFlattenUnorderedList(t *testing.T) {
	in := "<p>Documentos:</p><ul><li>DNI o NIE</li><li>Padrón municipal</li></ul>"
	want := "Documentos:\n\n• DNI o NIE\n• Padrón municipal"
	assert.Equal(t, want, Flatten(in))
}

func TestFlattenOrderedList(t *testing.T) {
	in := "<ol><li>Pide cita previa</li><li>Reúne los papeles</li></ol>"
	want := "1. Pide cita previa\n2. Reúne los papeles"
	assert.Equal(t, want, Flatten(in))
}

func TestFlattenLineBreak(t *testing.T) {
	in := "<p>Primera línea<br>Segunda línea</p>"
	assert.Equal(t, "Primera línea\nSegunda línea", Flatten(in))
}

func TestFlattenLinkKeepsTarget(t *testing.T) {
	in := `<p>Consulta la <a href="https://sede.seg-social.gob.es">sede electrónica</a>.</p>`
	assert.Equal(t, "Consulta la sede electrónica (https://sede.seg-social.gob.es).", Flatten(in))
}

func TestFlattenLinkMatchingTextOmitsTarget(t *testing.T) {
	in := `<p>Visita <a href="https://example.org">https://example.org</a> hoy.</p>`
	assert.Equal(t, "Visita https://example.org hoy.", Flatten(in))
}

func TestFlattenLinkWithoutHref(t *testing.T) {
	in := `<p>Un <a>enlace roto</a> queda como texto.</p>`
	assert.Equal(t, "Un enlace roto queda como texto.", Flatten(in))
}

func TestFlattenPlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "sin etiquetas", Flatten("sin etiquetas"))
}

func TestFlattenCollapsesSourceWhitespace(t *testing.T) {
	in := "<p>Hola,\n   soy   Eulogio.</p>"
	assert.Equal(t, "Hola, soy Eulogio.", Flatten(in))
}
