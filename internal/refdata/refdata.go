// Package refdata holds the storefront's static reference tables. The data
// is read-only and lives in the binary; accessors hand out copies so callers
// cannot mutate the tables.
package refdata

// ShippingCity is one deliverable city with its flat shipping rate.
type ShippingCity struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// PCBuilderCategory is one slot of the PC-builder configurator. Slots are
// presented in Order; Required slots must be filled before checkout.
type PCBuilderCategory struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CategorySlug string `json:"categorySlug"`
	Order        int    `json:"order"`
	Required     bool   `json:"required"`
	MaxItems     int    `json:"maxItems"`
}

var shippingCities = []ShippingCity{
	{Code: "TUN", Name: "Tunis", Rate: 7},
	{Code: "ARI", Name: "Ariana", Rate: 7},
	{Code: "BEN", Name: "Ben Arous", Rate: 7},
	{Code: "MAN", Name: "Manouba", Rate: 8},
	{Code: "NAB", Name: "Nabeul", Rate: 8},
	{Code: "BIZ", Name: "Bizerte", Rate: 8},
	{Code: "SOU", Name: "Sousse", Rate: 9},
	{Code: "MON", Name: "Monastir", Rate: 9},
	{Code: "MAH", Name: "Mahdia", Rate: 10},
	{Code: "SFA", Name: "Sfax", Rate: 10},
	{Code: "KAI", Name: "Kairouan", Rate: 10},
	{Code: "GAB", Name: "Gabes", Rate: 12},
	{Code: "MED", Name: "Medenine", Rate: 12},
	{Code: "GAF", Name: "Gafsa", Rate: 12},
	{Code: "TOZ", Name: "Tozeur", Rate: 13},
	{Code: "KEB", Name: "Kebili", Rate: 13},
	{Code: "TAT", Name: "Tataouine", Rate: 13},
	{Code: "BEJ", Name: "Beja", Rate: 9},
	{Code: "JEN", Name: "Jendouba", Rate: 10},
	{Code: "KEF", Name: "Le Kef", Rate: 10},
	{Code: "SIL", Name: "Siliana", Rate: 10},
	{Code: "ZAG", Name: "Zaghouan", Rate: 8},
	{Code: "KAS", Name: "Kasserine", Rate: 11},
	{Code: "SID", Name: "Sidi Bouzid", Rate: 11},
}

var pcBuilderCategories = []PCBuilderCategory{
	{Code: "cpu", Name: "Processor", CategorySlug: "processeurs", Order: 1, Required: true, MaxItems: 1},
	{Code: "motherboard", Name: "Motherboard", CategorySlug: "cartes-meres", Order: 2, Required: true, MaxItems: 1},
	{Code: "ram", Name: "Memory", CategorySlug: "memoire-ram", Order: 3, Required: true, MaxItems: 4},
	{Code: "gpu", Name: "Graphics Card", CategorySlug: "cartes-graphiques", Order: 4, Required: false, MaxItems: 1},
	{Code: "storage", Name: "Storage", CategorySlug: "stockage", Order: 5, Required: true, MaxItems: 4},
	{Code: "psu", Name: "Power Supply", CategorySlug: "alimentations", Order: 6, Required: true, MaxItems: 1},
	{Code: "case", Name: "Case", CategorySlug: "boitiers", Order: 7, Required: true, MaxItems: 1},
	{Code: "cooling", Name: "Cooling", CategorySlug: "refroidissement", Order: 8, Required: false, MaxItems: 2},
}

// ShippingCities returns the deliverable city table.
func ShippingCities() []ShippingCity {
	out := make([]ShippingCity, len(shippingCities))
	copy(out, shippingCities)
	return out
}

// PCBuilderCategories returns the configurator slot table.
func PCBuilderCategories() []PCBuilderCategory {
	out := make([]PCBuilderCategory, len(pcBuilderCategories))
	copy(out, pcBuilderCategories)
	return out
}
