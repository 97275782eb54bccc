package pricing

import (
	"fmt"
	"strings"
)

// DefaultCharterBase is the conventional passenger count a private-only
// cruise price is quoted on.
const DefaultCharterBase = 8

var DefaultPrivateOnlyDestinations = []string{"greece", "caribbean"}

// DestinationPolicy flags destinations that can only be booked as a full
// charter. It changes labeling only; the quote arithmetic is the same.
type DestinationPolicy struct {
	privateOnly map[string]struct{}
	CharterBase int
}

func NewDestinationPolicy(privateOnly []string, charterBase int) DestinationPolicy {
	if charterBase <= 0 {
		charterBase = DefaultCharterBase
	}
	p := DestinationPolicy{privateOnly: make(map[string]struct{}, len(privateOnly)), CharterBase: charterBase}
	for _, d := range privateOnly {
		d = normalizeDestination(d)
		if d != "" {
			p.privateOnly[d] = struct{}{}
		}
	}
	return p
}

func DefaultDestinationPolicy() DestinationPolicy {
	return NewDestinationPolicy(DefaultPrivateOnlyDestinations, DefaultCharterBase)
}

func (p DestinationPolicy) IsPrivateOnly(destination string) bool {
	_, ok := p.privateOnly[normalizeDestination(destination)]
	return ok
}

// Notice is the disclosure shown next to a private-only quote.
func (p DestinationPolicy) Notice(lang string) string {
	if lang == "en" {
		return fmt.Sprintf("This cruise is only available as a full private charter (base %d passengers). The displayed price is per person on this basis.", p.CharterBase)
	}
	return fmt.Sprintf("Cette croisière est uniquement disponible en privatisation complète (base %d passagers). Le prix affiché est par personne sur cette base.", p.CharterBase)
}

func normalizeDestination(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}
