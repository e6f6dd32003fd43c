package matching

import "github.com/inkmatch/inkmatch/backend/internal/models"

// TypeCompatible reports whether a provider's tattoo type satisfies the
// requester's preference:
//
//	monochrome preference excludes color-only providers,
//	color preference excludes monochrome-only providers,
//	both excludes nothing.
//
// A provider offering "both" is never excluded.
func TypeCompatible(preference, offered models.TattooType) bool {
	switch preference {
	case models.TattooTypeMonochrome:
		return offered != models.TattooTypeColor
	case models.TattooTypeColor:
		return offered != models.TattooTypeMonochrome
	default:
		return true
	}
}
