// Package i18n provides internationalization support for the carton service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,es;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.timeout":                  "Request timed out",
			"error.validation.items":         "items: must be a non-empty list with positive dimensions and quantities",
			"error.no_fitting_box":           "No box in the catalog can hold the requested items",
			"error.last_package":             "A plan must keep at least one package",
			"error.box_not_found":            "Box not found",
			"error.recommendation_not_found": "No recommendation stored for this order",
		},
		"es": {
			"error.invalid_request":          "Solicitud inválida",
			"error.invalid_request_body":     "Cuerpo de la solicitud inválido",
			"error.internal_error":           "Ocurrió un error inesperado",
			"error.not_found":                "No encontrado",
			"error.rate_limit_exceeded":      "Demasiadas solicitudes, inténtelo de nuevo más tarde",
			"error.conflict":                 "Conflicto",
			"error.timeout":                  "La solicitud expiró",
			"error.validation.items":         "items: debe ser una lista no vacía con dimensiones y cantidades positivas",
			"error.no_fitting_box":           "Ninguna caja del catálogo puede contener los artículos solicitados",
			"error.last_package":             "Un plan debe conservar al menos un paquete",
			"error.box_not_found":            "Caja no encontrada",
			"error.recommendation_not_found": "No hay recomendación almacenada para este pedido",
		},
	}
}
