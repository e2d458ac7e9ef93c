package devserver

// SeedProducts is the development catalog. Prices are decimal currency
// units, as the production API serves them. A couple of records carry the
// malformed image fields the resolver has to cope with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Oversized Logo Tee",
			Description: "Heavyweight cotton tee with screen-printed chest logo.",
			Price:       19.99,
			CategoryID:  101,
			ImageURL:    "/images/products/logo-tee.jpg",
			ProductSize: sizes(map[string]int{"S": 12, "M": 20, "L": 8, "XL": 0}),
		},
		{
			ID:          2,
			Name:        "Boxy Graphic Tee",
			Description: "Boxy fit, garment washed, backprint graphic.",
			Price:       24.50,
			CategoryID:  101,
			ImageURL:    "images/products/graphic-tee.jpg",
			ProductSize: sizes(map[string]int{"S": 5, "M": 0, "L": 3}),
		},
		{
			ID:          3,
			Name:        "Court Low Sneaker",
			Description: "Low-top court silhouette in tumbled leather.",
			Price:       89.00,
			CategoryID:  106,
			ImageURL:    "//cdn.example.com/products/court-low.jpg",
			ProductSize: sizes(map[string]int{"41": 4, "42": 6, "43": 2, "44": 0}),
		},
		{
			ID:          4,
			Name:        "Fleece Crewneck",
			Description: "400gsm brushed-back fleece crewneck.",
			Price:       54.00,
			CategoryID:  107,
			ImageURL:    "https://http://cdn.example.com/products/crewneck.jpg",
			ProductSize: sizes(map[string]int{"M": 9, "L": 9, "XL": 4}),
		},
		{
			ID:          5,
			Name:        "Wide Cargo Pant",
			Description: "Wide-leg ripstop cargo with adjustable hem.",
			Price:       72.00,
			CategoryID:  108,
			ImageURL:    "/images/products/cargo-pant.jpg",
			ProductSize: sizes(map[string]int{"30": 3, "32": 7, "34": 5}),
		},
		{
			ID:          6,
			Name:        "Coach Jacket",
			Description: "Water-resistant nylon coach jacket, snap front.",
			Price:       98.00,
			CategoryID:  109,
			ImageURL:    "",
			ProductSize: sizes(map[string]int{"M": 2, "L": 0, "XL": 1}),
		},
		{
			ID:          7,
			Name:        "Shoulder Bag",
			Description: "Compact crossbody shoulder bag, three pockets.",
			Price:       32.00,
			CategoryID:  111,
			ImageURL:    "/images/products/shoulder-bag.jpg",
		},
	}
}

// sizes keeps the seed readable; iteration order of the map does not matter
// for dev data.
func sizes(stock map[string]int) []ProductSize {
	out := make([]ProductSize, 0, len(stock))
	for size, n := range stock {
		out = append(out, ProductSize{Stock: n, Size: SizeName{Size: size}})
	}
	return out
}
