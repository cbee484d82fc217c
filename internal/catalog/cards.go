package catalog

import "github.com/barquest/barquest/internal/model"

// SpanishDeck returns a fresh copy of the themed card catalog used by the
// mini-games. Ranks are not contiguous and the rank 3 appears twice; the
// games must cope with both.
func SpanishDeck() model.Deck {
	return model.Deck{
		{Name: "As de Oros", Rank: 1, ImageURL: "/images/cards/as-de-oros.png"},
		{Name: "Tres de Bastos", Rank: 3, ImageURL: "/images/cards/tres-de-bastos.png"},
		{Name: "Tres de Copas", Rank: 3, ImageURL: "/images/cards/tres-de-copas.png"},
		{Name: "Seis de Copas", Rank: 6, ImageURL: "/images/cards/seis-de-copas.png"},
		{Name: "Siete de Espadas", Rank: 7, ImageURL: "/images/cards/siete-de-espadas.png"},
		{Name: "Sota de Oros", Rank: 10, ImageURL: "/images/cards/sota-de-oros.png"},
		{Name: "Caballo de Oros", Rank: 11, ImageURL: "/images/cards/caballo-de-oros.png"},
		{Name: "Rey de Bastos", Rank: 12, ImageURL: "/images/cards/rey-de-bastos.png"},
	}
}
