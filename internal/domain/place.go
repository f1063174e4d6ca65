package domain

// Place is one point of interest on the discover page
type Place struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// Places is the fixed discover catalog; it ships with the binary, no fetch needed.
var Places = []Place{
	{
		Title:       "Millennium Park",
		Image:       "images/discover/site-1.webp",
		Address:     "5 Usuma Street, Maitama, Abuja",
		Description: "A lush urban park with shaded walkways, open lawns, and cultural event spaces for families.",
	},
	{
		Title:       "Jabi Lake Waterfront",
		Image:       "images/discover/site-2.webp",
		Address:     "Jabi District, Abuja",
		Description: "A lively lakeside destination with dining, retail, and sunset views over Abuja's skyline.",
	},
	{
		Title:       "Aso Rock Viewpoint",
		Image:       "images/discover/site-3.webp",
		Address:     "Three Arms Zone, Abuja",
		Description: "Iconic granite monolith backdrop to Nigeria's capital with panoramic views and photo spots.",
	},
	{
		Title:       "National Mosque",
		Image:       "images/discover/site-4.webp",
		Address:     "Independence Avenue, Central District",
		Description: "One of the city's most recognizable landmarks featuring striking domes and tranquil courtyards.",
	},
	{
		Title:       "Arts & Crafts Village",
		Image:       "images/discover/site-5.webp",
		Address:     "Zone 5, Wuse, Abuja",
		Description: "A marketplace showcasing handcrafted textiles, beadwork, sculptures, and artisan workshops.",
	},
	{
		Title:       "Central Business District",
		Image:       "images/discover/site-6.webp",
		Address:     "Ahmadu Bello Way, Abuja",
		Description: "The commercial heart of the city with premium offices, banking hubs, and government agencies.",
	},
	{
		Title:       "Abuja Innovation District",
		Image:       "images/discover/site-7.webp",
		Address:     "Airport Road Tech Corridor, Abuja",
		Description: "Emerging technology zone with co-working spaces, accelerators, and research institutions.",
	},
	{
		Title:       "National Stadium Complex",
		Image:       "images/discover/site-8.webp",
		Address:     "National Stadium Road, Abuja",
		Description: "Multi-sport venue hosting major events, fitness programs, and regional tournaments.",
	},
}
