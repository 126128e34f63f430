package store

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	errx "github.com/gamal-store/server/internal/core/error"
)

// requiredFieldsMessage is the admin-form validation notice, surfaced before
// any provider call is attempted.
const requiredFieldsMessage = "يرجى ملء الاسم والسعر ورابط الصورة على الأقل."

// Catalog holds the product list, the category set, and the active category
// filter. Single writer; no concurrent mutation.
type Catalog struct {
	products   []Product
	categories []string
	selected   string
}

// NewCatalog builds a catalog over the given state. The active filter starts
// at the all-products sentinel.
func NewCatalog(products []Product, categories []string) *Catalog {
	return &Catalog{
		products:   products,
		categories: categories,
		selected:   AllCategories,
	}
}

// Products returns the catalog entries, newest first.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the category names in insertion order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Find returns the product with the given id.
func (c *Catalog) Find(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Select sets the active category filter.
func (c *Catalog) Select(category string) {
	c.selected = category
}

// Selected returns the active category filter.
func (c *Catalog) Selected() string {
	return c.selected
}

// Filtered returns the products in the active category, or everything when
// the all-products sentinel is selected.
func (c *Catalog) Filtered() []Product {
	if c.selected == AllCategories || c.selected == "" {
		return c.Products()
	}
	var out []Product
	for _, p := range c.products {
		if p.Category == c.selected {
			out = append(out, p)
		}
	}
	return out
}

// Add validates and prepends a product. Missing id, SKU, category and
// description are filled in; a missing name, price, or image rejects the
// product with a user-facing validation error.
func (c *Catalog) Add(p Product) (Product, error) {
	p, err := c.prepare(p)
	if err != nil {
		return Product{}, err
	}
	c.products = append([]Product{p}, c.products...)
	return p, nil
}

// Update validates and replaces the product with the same id, keeping the
// existing SKU.
func (c *Catalog) Update(p Product) (Product, error) {
	p, err := c.prepare(p)
	if err != nil {
		return Product{}, err
	}
	for i, existing := range c.products {
		if existing.ID == p.ID {
			p.SKU = existing.SKU
			c.products[i] = p
			return p, nil
		}
	}
	return Product{}, errx.New(nil, http.StatusNotFound, fmt.Sprintf("product %s not found", p.ID))
}

// Delete removes the product with the given id. Deleting an unknown id is a
// no-op.
func (c *Catalog) Delete(id string) {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// AddCategory appends a category name; duplicates are ignored. Reports
// whether the set changed.
func (c *Catalog) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range c.categories {
		if existing == name {
			return false
		}
	}
	c.categories = append(c.categories, name)
	return true
}

// DeleteCategory removes a category name. Deleting the active category
// resets the filter to the all-products sentinel.
func (c *Catalog) DeleteCategory(name string) {
	for i, existing := range c.categories {
		if existing == name {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			break
		}
	}
	if c.selected == name {
		c.selected = AllCategories
	}
}

func (c *Catalog) prepare(p Product) (Product, error) {
	if p.Name == "" || p.Price <= 0 || p.Image == "" {
		return Product{}, errx.NewValidation(requiredFieldsMessage)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.SKU == "" {
		p.SKU = NewSKU(p.Name, time.Now())
	}
	if p.Category == "" {
		if len(c.categories) > 0 {
			p.Category = c.categories[0]
		} else {
			p.Category = fallbackCategory
		}
	}
	if p.Description == "" {
		p.Description = defaultDescription
	}
	return p, nil
}

var skuStrip = regexp.MustCompile(`[^a-zA-Z\s]`)

// NewSKU derives a stock-keeping code from the product name and a timestamp
// salt: GML-<up to 3 latin letters of the name, or GML>-<last 6 digits of
// the unix-milli timestamp>.
func NewSKU(name string, now time.Time) string {
	clean := strings.TrimSpace(skuStrip.ReplaceAllString(name, ""))
	prefix := "GML"
	if clean != "" {
		if len(clean) > 3 {
			clean = clean[:3]
		}
		prefix = strings.ToUpper(clean)
	}
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("GML-%s-%s", prefix, ms[len(ms)-6:])
}
