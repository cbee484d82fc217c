// Package catalog holds the static data the app ships with: the venue list,
// the badge definitions, the card deck, and the truth-or-dare prompts. All of
// it is immutable and loaded once at startup.
package catalog

import "github.com/barquest/barquest/internal/model"

// The venue catalog is centered on a fixed reference point; individual venues
// are placed as small offsets around it.
const (
	centerLat = 41.380841369044106
	centerLon = 2.1845503791450893
)

// VenueCatalog is an immutable, indexed set of venues
type VenueCatalog struct {
	venues []model.Venue
	byID   map[model.VenueID]model.Venue
}

// NewVenueCatalog builds an indexed catalog from a venue list
func NewVenueCatalog(venues []model.Venue) *VenueCatalog {
	byID := make(map[model.VenueID]model.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}
	return &VenueCatalog{venues: venues, byID: byID}
}

// All returns a copy of the venue list in catalog order
func (c *VenueCatalog) All() []model.Venue {
	out := make([]model.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// Get looks up a venue by id
func (c *VenueCatalog) Get(id model.VenueID) (model.Venue, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Len returns the number of venues in the catalog
func (c *VenueCatalog) Len() int {
	return len(c.venues)
}

// DefaultVenues returns a copy of the built-in venue list
func DefaultVenues() []model.Venue {
	out := make([]model.Venue, len(defaultVenues))
	copy(out, defaultVenues)
	return out
}

var defaultVenues = []model.Venue{
	{
		ID:          "1",
		Name:        "El Portal Tapas Bar",
		Latitude:    centerLat + 0.0009,
		Longitude:   centerLon - 0.0015,
		Address:     "Calle Mayor 12, Barcelona",
		Description: "Authentic Spanish tapas in the heart of Barcelona. Known for their patatas bravas and vermouth.",
		ImageURL:    "/images/venues/el-portal-tapas-bar.jpg",
		Rating:      4.5,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "2",
		Name:        "La Terraza del Urban",
		Latitude:    centerLat - 0.0006,
		Longitude:   centerLon + 0.0008,
		Address:     "Carrera de San Jerónimo 34, Barcelona",
		Description: "Rooftop bar with stunning city views. Perfect for sunset cocktails.",
		ImageURL:    "/images/venues/la-terraza-del-urban.jpg",
		Rating:      4.8,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "3",
		Name:        "Café de Oriente",
		Latitude:    centerLat + 0.0014,
		Longitude:   centerLon - 0.0022,
		Address:     "Plaza de Oriente 2, Barcelona",
		Description: "Historic café facing the Royal Palace. Elegant atmosphere and excellent coffee.",
		ImageURL:    "/images/venues/cafe-de-oriente.jpg",
		Rating:      4.6,
		Category:    model.VenueCategoryCafe,
	},
	{
		ID:          "4",
		Name:        "Mercado de San Miguel",
		Latitude:    centerLat - 0.0011,
		Longitude:   centerLon + 0.0012,
		Address:     "Plaza de San Miguel, Barcelona",
		Description: "Iconic market hall with gourmet food stands and wine bars.",
		ImageURL:    "/images/venues/mercado-de-san-miguel.jpg",
		Rating:      4.7,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "5",
		Name:        "The Passenger Bar",
		Latitude:    centerLat + 0.0035,
		Longitude:   centerLon - 0.0006,
		Address:     "Calle Pez 16, Malasaña, Barcelona",
		Description: "Trendy cocktail bar in Malasaña. Known for creative drinks and live music.",
		ImageURL:    "/images/venues/the-passenger-bar.jpg",
		Rating:      4.4,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "6",
		Name:        "Botín Restaurant",
		Latitude:    centerLat - 0.0021,
		Longitude:   centerLon + 0.0016,
		Address:     "Calle Cuchilleros 17, Barcelona",
		Description: "World's oldest restaurant according to Guinness. Famous for roast suckling pig.",
		ImageURL:    "/images/venues/botin-restaurant.jpg",
		Rating:      4.9,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "7",
		Name:        "Salmon Guru",
		Latitude:    centerLat + 0.0026,
		Longitude:   centerLon + 0.0002,
		Address:     "Calle Echegaray 21, Barcelona",
		Description: "Award-winning cocktail bar. Innovative mixology in a vibrant setting.",
		ImageURL:    "/images/venues/salmon-guru.jpg",
		Rating:      4.8,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "8",
		Name:        "Federal Café",
		Latitude:    centerLat + 0.0040,
		Longitude:   centerLon - 0.0028,
		Address:     "Plaza de las Comendadoras 9, Barcelona",
		Description: "Australian-style brunch spot. Great coffee and healthy options.",
		ImageURL:    "/images/venues/federal-cafe.jpg",
		Rating:      4.5,
		Category:    model.VenueCategoryCafe,
	},
	{
		ID:          "9",
		Name:        "Casa Lucio",
		Latitude:    centerLat - 0.0028,
		Longitude:   centerLon - 0.0011,
		Address:     "Cava Baja 35, Barcelona",
		Description: "Traditional Spanish cuisine. Famous for their huevos rotos.",
		ImageURL:    "/images/venues/casa-lucio.jpg",
		Rating:      4.7,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "10",
		Name:        "Ojala Beach Club",
		Latitude:    centerLat + 0.0039,
		Longitude:   centerLon + 0.0024,
		Address:     "Calle San Andrés 1, Barcelona",
		Description: "Beach-themed bar with sand floor. Tropical cocktails and chill vibes.",
		ImageURL:    "/images/venues/ojala-beach-club.jpg",
		Rating:      4.6,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "11",
		Name:        "Bar Manolo",
		Latitude:    centerLat + 0.0052,
		Longitude:   centerLon + 0.0035,
		Address:     "Calle Serrano 52, Barcelona",
		Description: "Avant-garde Asian street food. Michelin-starred chef's casual concept.",
		ImageURL:    "/images/venues/bar-manolo.jpg",
		Rating:      4.9,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "12",
		Name:        "Maricastaña Bar",
		Latitude:    centerLat + 0.0019,
		Longitude:   centerLon - 0.0003,
		Address:     "Calle Arenal 16, Barcelona",
		Description: "Vintage cocktail bar with 1920s décor. Expert bartenders and classic drinks.",
		ImageURL:    "/images/venues/maricastana-bar.jpg",
		Rating:      4.5,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "13",
		Name:        "Bar Nova",
		Latitude:    centerLat - 0.0009,
		Longitude:   centerLon + 0.0005,
		Address:     "Carrer dels Pensaments 3",
		Description: "Cozy neighborhood bar with local beers.",
		ImageURL:    "/images/venues/bar-nova.jpg",
		Rating:      4.2,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "14",
		Name:        "Tapas & Tonic",
		Latitude:    centerLat - 0.0015,
		Longitude:   centerLon - 0.0010,
		Address:     "Plaça Falsa 7",
		Description: "Small tapas place and great tonics.",
		ImageURL:    "/images/venues/tapas-and-tonic.jpg",
		Rating:      4.3,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "15",
		Name:        "Corner Coffee",
		Latitude:    centerLat + 0.0007,
		Longitude:   centerLon + 0.0020,
		Address:     "Carrer de la Llum 10",
		Description: "Friendly café with excellent espresso.",
		ImageURL:    "/images/venues/corner-coffee.jpg",
		Rating:      4.1,
		Category:    model.VenueCategoryCafe,
	},
	{
		ID:          "16",
		Name:        "Rooftop Beats",
		Latitude:    centerLat + 0.0022,
		Longitude:   centerLon - 0.0025,
		Address:     "Carrer del Cel 2",
		Description: "Rooftop bar with DJs and cocktails.",
		ImageURL:    "/images/venues/rooftop-beats.jpg",
		Rating:      4.4,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "17",
		Name:        "The Old Cellar",
		Latitude:    centerLat - 0.0032,
		Longitude:   centerLon + 0.0013,
		Address:     "Carrer del Vi 5",
		Description: "Wine bar with a curated selection and small plates.",
		ImageURL:    "/images/venues/the-old-cellar.jpg",
		Rating:      4.6,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "18",
		Name:        "Bistro Azul",
		Latitude:    centerLat + 0.0045,
		Longitude:   centerLon - 0.0009,
		Address:     "Carrer del Mar 22",
		Description: "Casual bistro serving Mediterranean dishes.",
		ImageURL:    "/images/venues/bistro-azul.jpg",
		Rating:      4.0,
		Category:    model.VenueCategoryRestaurant,
	},
	{
		ID:          "19",
		Name:        "Late Night Lounge",
		Latitude:    centerLat + 0.0011,
		Longitude:   centerLon + 0.0030,
		Address:     "Carrer Nocturn 9",
		Description: "Open late with cocktails and live music.",
		ImageURL:    "/images/venues/late-night-lounge.jpg",
		Rating:      4.3,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "20",
		Name:        "Green Garden Café",
		Latitude:    centerLat - 0.0025,
		Longitude:   centerLon - 0.0018,
		Address:     "Jardins 4",
		Description: "Bright café with plant-filled interior and brunch menu.",
		ImageURL:    "/images/venues/green-garden-cafe.jpg",
		Rating:      4.2,
		Category:    model.VenueCategoryCafe,
	},
	{
		ID:          "21",
		Name:        "Sunset Tapas",
		Latitude:    centerLat - 0.0019,
		Longitude:   centerLon + 0.0026,
		Address:     "Passeig del Sol 1",
		Description: "Tapas spot ideal for watching sunsets with a drink.",
		ImageURL:    "/images/venues/sunset-tapas.jpg",
		Rating:      4.5,
		Category:    model.VenueCategoryBar,
	},
	{
		ID:          "22",
		Name:        "Plaza Coffee House",
		Latitude:    centerLat + 0.0029,
		Longitude:   centerLon - 0.0004,
		Address:     "Plaça Major 11",
		Description: "Classic coffee house with pastries and quiet corners.",
		ImageURL:    "/images/venues/plaza-coffee-house.jpg",
		Rating:      4.1,
		Category:    model.VenueCategoryCafe,
	},
}
