// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// In-band bot notices. Every provider-facing failure class gets its own
// user-visible HTML message, matching the assistant's language.
const (
	// Session creation failed despite configured credentials.
	NoticeSessionInitFailed = "<p>Error al iniciar sesión de IA.</p>"

	// No stream could be opened for the greeting handshake.
	NoticeGreetingNoStream = "<p>Error al generar el saludo inicial.</p>"

	// The greeting stream failed mid-flight.
	NoticeGreetingFailed = "<p>Error al cargar el saludo del asistente.</p>"

	// No stream could be opened for a reply.
	NoticeReplyNoStream = "<p>Error al obtener respuesta del stream.</p>"

	// The reply stream failed mid-flight.
	NoticeReplyFailed = "<p>Hubo un error al obtener la respuesta.</p>"

	// The stream completed without usable text.
	NoticeEmptyResponse = "<p>El asistente no ha devuelto ninguna respuesta. Inténtalo de nuevo.</p>"

	// Send attempted with no provider credentials configured.
	NoticeAPIKeyMissing = "<p>Configuración de API key incompleta.</p>"

	// Send attempted with credentials but no live session.
	NoticeNoSession = "<p>Error: Sesión de chat no iniciada.</p>"
)
