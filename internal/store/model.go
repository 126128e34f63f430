// Package store owns the storefront state: the product catalog with its
// category set, the session cart, and the presentation settings. All state
// lives in memory and is mirrored wholesale to Redis on every mutation.
package store

// Product is one catalog entry. The SKU is derived from the name plus a
// timestamp salt; it is time-salted, not guaranteed globally unique.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// CartItem is a product line in the session cart. Quantity is always >= 1;
// a line whose quantity would drop below one is removed instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Alignment positions the hero text block.
type Alignment string

const (
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
)

func (a Alignment) valid() bool {
	switch a {
	case AlignRight, AlignCenter, AlignLeft:
		return true
	}
	return false
}

// Config holds the storefront presentation settings. Singleton, replaced
// wholesale by the admin settings form.
type Config struct {
	BackgroundImage   string    `json:"backgroundImage"`
	ContactNumber     string    `json:"contactNumber"`
	HeroTitle         string    `json:"heroTitle"`
	HeroSubtitle      string    `json:"heroSubtitle"`
	HeroTitleColor    string    `json:"heroTitleColor"`
	HeroSubtitleColor string    `json:"heroSubtitleColor"`
	HeroTitleSize     int       `json:"heroTitleSize"`
	HeroSubtitleSize  int       `json:"heroSubtitleSize"`
	HeroAlignment     Alignment `json:"heroAlignment"`
}

// normalized fills absent or invalid fields with their defaults so a partial
// or stale persisted snapshot can never leave the config incomplete.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.BackgroundImage == "" {
		c.BackgroundImage = def.BackgroundImage
	}
	if c.ContactNumber == "" {
		c.ContactNumber = def.ContactNumber
	}
	if c.HeroTitle == "" {
		c.HeroTitle = def.HeroTitle
	}
	if c.HeroSubtitle == "" {
		c.HeroSubtitle = def.HeroSubtitle
	}
	if c.HeroTitleColor == "" {
		c.HeroTitleColor = def.HeroTitleColor
	}
	if c.HeroSubtitleColor == "" {
		c.HeroSubtitleColor = def.HeroSubtitleColor
	}
	if c.HeroTitleSize <= 0 {
		c.HeroTitleSize = def.HeroTitleSize
	}
	if c.HeroSubtitleSize <= 0 {
		c.HeroSubtitleSize = def.HeroSubtitleSize
	}
	if !c.HeroAlignment.valid() {
		c.HeroAlignment = def.HeroAlignment
	}
	return c
}

// AllCategories is the sentinel category selecting the whole catalog.
const AllCategories = "الكل"

// fallbackCategory is assigned when a product is added with no category and
// the category list is empty.
const fallbackCategory = "عام"

// defaultDescription is assigned when a product is added without one.
const defaultDescription = "وصف رائع لمنتج مميز من متجر جمال الفاخر."

// DefaultCategories returns the seed category set.
func DefaultCategories() []string {
	return []string{"بدل", "قمصان", "بناطيل", "إكسسوارات", "أحذية"}
}

// DefaultConfig returns the seed presentation settings.
func DefaultConfig() Config {
	return Config{
		BackgroundImage:   "https://images.unsplash.com/photo-1490114538077-0a7f8cb49891?q=80&w=2070&auto=format&fit=crop",
		ContactNumber:     "+20 123 456 789",
		HeroTitle:         "تشكيلة جمال الفاخرة",
		HeroSubtitle:      "الأناقة ليست مجرد ملابس، بل هي أسلوب حياة. اكتشف مجموعتنا الجديدة للرجل الذي يبحث عن التميز.",
		HeroTitleColor:    "#ffffff",
		HeroSubtitleColor: "#e2e8f0",
		HeroTitleSize:     72,
		HeroSubtitleSize:  18,
		HeroAlignment:     AlignCenter,
	}
}

// SeedProducts returns the catalog entries shipped with a fresh store.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			SKU:         "GML-CL-001",
			Name:        "بدلة كلاسيكية سوداء",
			Price:       1200,
			Category:    "بدل",
			Image:       "https://images.unsplash.com/photo-1594932224827-c447e9c11823?q=80&w=800&auto=format&fit=crop",
			Description: "بدلة صوفية فاخرة تناسب الاجتماعات الرسمية والمناسبات الخاصة.",
		},
		{
			ID:          "2",
			SKU:         "GML-SH-002",
			Name:        "قميص أبيض قطني",
			Price:       350,
			Category:    "قمصان",
			Image:       "https://images.unsplash.com/photo-1620012253295-c05718565d6d?q=80&w=800&auto=format&fit=crop",
			Description: "قميص مريح مصنوع من أجود أنواع القطن المصري.",
		},
		{
			ID:          "3",
			SKU:         "GML-FO-003",
			Name:        "حذاء جلدي بني",
			Price:       550,
			Category:    "أحذية",
			Image:       "https://images.unsplash.com/photo-1533867617858-e7b97e060509?q=80&w=800&auto=format&fit=crop",
			Description: "حذاء كلاسيكي يجمع بين الراحة والأناقة.",
		},
	}
}
