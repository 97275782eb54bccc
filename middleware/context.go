package middleware

import (
	"cruise_manager/constants"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AppContext resolves the request language and the calling member id.
// Handlers read both from Locals instead of any shared state.
func AppContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(constants.LocalLang, resolveLang(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage)))
		c.Locals(constants.LocalMemberID, strings.TrimSpace(c.Get("X-Member-Id")))
		return c.Next()
	}
}

func resolveLang(query, acceptLanguage string) string {
	if l := normalizeLang(query); l != "" {
		return l
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if l := normalizeLang(tag); l != "" {
			return l
		}
	}
	return constants.DefaultLang
}

func normalizeLang(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case tag == "":
		return ""
	case strings.HasPrefix(tag, constants.LangEN):
		return constants.LangEN
	case strings.HasPrefix(tag, constants.LangFR):
		return constants.LangFR
	}
	return ""
}

// Lang returns the language AppContext stored, French by default.
func Lang(c *fiber.Ctx) string {
	if l, ok := c.Locals(constants.LocalLang).(string); ok && l != "" {
		return l
	}
	return constants.DefaultLang
}

func MemberID(c *fiber.Ctx) string {
	id, _ := c.Locals(constants.LocalMemberID).(string)
	return id
}
