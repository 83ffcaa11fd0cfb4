// internal/domain/product/filter.go
package product

import (
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange is a catalogue price bucket, in millions of VND
type PriceRange string

const (
	PriceRange2To5   PriceRange = "2-5"
	PriceRange5To10  PriceRange = "5-10"
	PriceRange10To20 PriceRange = "10-20"
	PriceRange20To50 PriceRange = "20-50"
	PriceRange50Plus PriceRange = "50+"
)

var million = decimal.NewFromInt(1_000_000)

// lower and upper bounds in millions; upper 0 means unbounded
var priceRangeBounds = map[PriceRange][2]int64{
	PriceRange2To5:   {2, 5},
	PriceRange5To10:  {5, 10},
	PriceRange10To20: {10, 20},
	PriceRange20To50: {20, 50},
	PriceRange50Plus: {50, 0},
}

// Valid reports whether r is a known price bucket
func (r PriceRange) Valid() bool {
	_, ok := priceRangeBounds[r]
	return ok
}

// Bounds returns the half-open interval [lo, hi) in VND. bounded is false for open-ended ranges.
func (r PriceRange) Bounds() (lo, hi decimal.Decimal, bounded bool) {
	b := priceRangeBounds[r]
	lo = decimal.NewFromInt(b[0]).Mul(million)
	if b[1] == 0 {
		return lo, decimal.Zero, false
	}
	return lo, decimal.NewFromInt(b[1]).Mul(million), true
}

// Contains reports whether price falls in the range
func (r PriceRange) Contains(price decimal.Decimal) bool {
	if !r.Valid() {
		return false
	}
	lo, hi, bounded := r.Bounds()
	if price.LessThan(lo) {
		return false
	}
	return !bounded || price.LessThan(hi)
}

// SortOrder selects the catalogue ordering
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortName      SortOrder = "name"
)

// ParseSortOrder returns the sort order for s, defaulting to newest first
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortName:
		return SortName
	default:
		return SortNewest
	}
}

func (o SortOrder) less(a, b *Product) bool {
	switch o {
	case SortPriceAsc:
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
	case SortPriceDesc:
		if !a.Price.Equal(b.Price) {
			return a.Price.GreaterThan(b.Price)
		}
	case SortName:
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
	default:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
	return a.ID < b.ID
}

func (o SortOrder) orderClause() string {
	switch o {
	case SortPriceAsc:
		return "price ASC, id ASC"
	case SortPriceDesc:
		return "price DESC, id ASC"
	case SortName:
		return "LOWER(name) ASC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// Filter narrows the catalogue. Values are OR'd within a field and AND'd across fields.
// Text values are compared case-insensitively.
type Filter struct {
	Search              string
	Brands              []string
	Genders             []string
	Movements           []string
	StrapTypes          []string
	WaterResistanceAtms []int
	PriceRanges         []PriceRange
	Sort                SortOrder
}

// ParseFilter reads a filter from query parameters. Multi-valued fields accept
// repeated parameters, comma-separated values, or both.
func ParseFilter(query url.Values) Filter {
	f := Filter{
		Search:     strings.TrimSpace(query.Get("search")),
		Brands:     splitValues(query["brand"]),
		Genders:    splitValues(query["gender"]),
		Movements:  splitValues(query["movement"]),
		StrapTypes: splitValues(query["strap"]),
		Sort:       ParseSortOrder(query.Get("sort")),
	}

	for _, v := range splitValues(query["atm"]) {
		if atm, err := strconv.Atoi(v); err == nil {
			f.WaterResistanceAtms = append(f.WaterResistanceAtms, atm)
		}
	}

	for _, v := range splitValues(query["price"]) {
		if r := PriceRange(v); r.Valid() {
			f.PriceRanges = append(f.PriceRanges, r)
		}
	}

	return f
}

func splitValues(raw []string) []string {
	var values []string
	for _, item := range raw {
		for _, v := range strings.Split(item, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// Match reports whether p satisfies every criterion of the filter
func (f Filter) Match(p *Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if len(f.Brands) > 0 && !equalFoldAny(p.Brand, f.Brands) {
		return false
	}
	if len(f.Genders) > 0 && !equalFoldAny(p.Gender, f.Genders) {
		return false
	}
	if len(f.Movements) > 0 && !containsFoldAny(p.Movement, f.Movements) {
		return false
	}
	if len(f.StrapTypes) > 0 && !containsFoldAny(p.StrapType, f.StrapTypes) {
		return false
	}
	if len(f.WaterResistanceAtms) > 0 {
		if p.WaterResistanceAtm == nil || !slices.Contains(f.WaterResistanceAtms, *p.WaterResistanceAtm) {
			return false
		}
	}
	if ranges := f.validRanges(); len(ranges) > 0 {
		inAny := false
		for _, r := range ranges {
			if r.Contains(p.Price) {
				inAny = true
				break
			}
		}
		if !inAny {
			return false
		}
	}
	return true
}

// Apply filters and sorts products in memory. The input slice is not modified.
func Apply(products []Product, f Filter) []Product {
	result := make([]Product, 0, len(products))
	for i := range products {
		if f.Match(&products[i]) {
			result = append(result, products[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return f.Sort.less(&result[i], &result[j])
	})
	return result
}

// BuildFacets collects the distinct filterable values of products
func BuildFacets(products []Product) *Facets {
	facets := &Facets{
		Brands:              []string{},
		Genders:             []string{},
		Movements:           []string{},
		StrapTypes:          []string{},
		WaterResistanceAtms: []int{},
	}
	seen := map[string]bool{}
	add := func(field string, value string, dst *[]string) {
		key := field + "\x00" + strings.ToLower(value)
		if value == "" || seen[key] {
			return
		}
		seen[key] = true
		*dst = append(*dst, value)
	}
	atms := map[int]bool{}

	for _, p := range products {
		add("brand", p.Brand, &facets.Brands)
		add("gender", p.Gender, &facets.Genders)
		add("movement", p.Movement, &facets.Movements)
		add("strap", p.StrapType, &facets.StrapTypes)
		if p.WaterResistanceAtm != nil && !atms[*p.WaterResistanceAtm] {
			atms[*p.WaterResistanceAtm] = true
			facets.WaterResistanceAtms = append(facets.WaterResistanceAtms, *p.WaterResistanceAtm)
		}
	}

	sort.Strings(facets.Brands)
	sort.Strings(facets.Genders)
	sort.Strings(facets.Movements)
	sort.Strings(facets.StrapTypes)
	sort.Ints(facets.WaterResistanceAtms)
	return facets
}

func (f Filter) validRanges() []PriceRange {
	var ranges []PriceRange
	for _, r := range f.PriceRanges {
		if r.Valid() {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// condition is one SQL predicate with its bind arguments
type condition struct {
	query string
	args  []interface{}
}

// conditions translates the filter into SQL predicates over the products table
func (f Filter) conditions() []condition {
	var conds []condition

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		conds = append(conds, condition{
			query: "(LOWER(name) LIKE ? OR LOWER(brand) LIKE ?)",
			args:  []interface{}{pattern, pattern},
		})
	}
	if len(f.Brands) > 0 {
		conds = append(conds, condition{query: "LOWER(brand) IN ?", args: []interface{}{lowerAll(f.Brands)}})
	}
	if len(f.Genders) > 0 {
		conds = append(conds, condition{query: "LOWER(gender) IN ?", args: []interface{}{lowerAll(f.Genders)}})
	}
	if len(f.Movements) > 0 {
		conds = append(conds, likeAny("movement", f.Movements))
	}
	if len(f.StrapTypes) > 0 {
		conds = append(conds, likeAny("strap_type", f.StrapTypes))
	}
	if len(f.WaterResistanceAtms) > 0 {
		conds = append(conds, condition{query: "water_resistance_atm IN ?", args: []interface{}{f.WaterResistanceAtms}})
	}
	if query, args := priceRangeCondition(f.validRanges()); query != "" {
		conds = append(conds, condition{query: query, args: args})
	}

	return conds
}

// priceRangeCondition builds the OR'd half-open price predicate for ranges
func priceRangeCondition(ranges []PriceRange) (string, []interface{}) {
	if len(ranges) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(ranges))
	args := make([]interface{}, 0, len(ranges)*2)
	for _, r := range ranges {
		lo, hi, bounded := r.Bounds()
		if bounded {
			parts = append(parts, "(price >= ? AND price < ?)")
			args = append(args, lo, hi)
		} else {
			parts = append(parts, "(price >= ?)")
			args = append(args, lo)
		}
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func likeAny(column string, values []string) condition {
	parts := make([]string, 0, len(values))
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		parts = append(parts, "LOWER("+column+") LIKE ?")
		args = append(args, "%"+escapeLike(strings.ToLower(v))+"%")
	}
	return condition{query: "(" + strings.Join(parts, " OR ") + ")", args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func equalFoldAny(value string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(value, c) {
			return true
		}
	}
	return false
}

func containsFoldAny(value string, candidates []string) bool {
	lv := strings.ToLower(value)
	for _, c := range candidates {
		if strings.Contains(lv, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
