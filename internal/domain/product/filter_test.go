package product

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atm(v int) *int { return &v }

func catalogue() []Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, Name: "Seamaster Diver 300M", Brand: "Omega", Price: decimal.NewFromInt(3_500_000), Movement: "Đồng hồ cơ", StrapType: "Thép không rỉ", Gender: "Nam", WaterResistanceAtm: atm(20), CreatedAt: base},
		{ID: 2, Name: "Submariner Date", Brand: "Rolex", Price: decimal.NewFromInt(8_500_000), Movement: "Đồng hồ cơ", StrapType: "Thép không rỉ", Gender: "Nam", WaterResistanceAtm: atm(20), CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Santos de Cartier", Brand: "Cartier", Price: decimal.NewFromInt(15_500_000), Movement: "Đồng hồ cơ", StrapType: "Dây da", Gender: "Đôi", WaterResistanceAtm: atm(10), CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Name: "Nautilus 5711", Brand: "Patek Philippe", Price: decimal.NewFromInt(95_000_000), Movement: "Đồng hồ cơ", StrapType: "Thép không rỉ", Gender: "Nam", WaterResistanceAtm: atm(10), CreatedAt: base.Add(3 * time.Hour)},
		{ID: 5, Name: "Tank Must", Brand: "Cartier", Price: decimal.NewFromInt(5_000_000), Movement: "Quartz", StrapType: "Dây da", Gender: "Nữ", CreatedAt: base.Add(4 * time.Hour)},
	}
}

func ids(products []Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestPriceRangeContainsIsHalfOpen(t *testing.T) {
	assert.True(t, PriceRange2To5.Contains(decimal.NewFromInt(2_000_000)))
	assert.True(t, PriceRange2To5.Contains(decimal.NewFromInt(4_999_999)))
	assert.False(t, PriceRange2To5.Contains(decimal.NewFromInt(5_000_000)))
	assert.True(t, PriceRange5To10.Contains(decimal.NewFromInt(5_000_000)))
	assert.True(t, PriceRange50Plus.Contains(decimal.NewFromInt(950_000_000)))
	assert.False(t, PriceRange50Plus.Contains(decimal.NewFromInt(49_999_999)))
	assert.False(t, PriceRange("1-2").Contains(decimal.NewFromInt(1_500_000)))
}

func TestApplyDefaultsToNewestFirst(t *testing.T) {
	result := Apply(catalogue(), Filter{})
	assert.Equal(t, []uint{5, 4, 3, 2, 1}, ids(result))
}

func TestApplySorts(t *testing.T) {
	products := catalogue()

	assert.Equal(t, []uint{1, 5, 2, 3, 4}, ids(Apply(products, Filter{Sort: SortPriceAsc})))
	assert.Equal(t, []uint{4, 3, 2, 5, 1}, ids(Apply(products, Filter{Sort: SortPriceDesc})))
	assert.Equal(t, []uint{4, 3, 1, 2, 5}, ids(Apply(products, Filter{Sort: SortName})))
}

func TestApplyFilters(t *testing.T) {
	products := catalogue()

	tests := []struct {
		name   string
		filter Filter
		want   []uint
	}{
		{"brand is case-insensitive", Filter{Brands: []string{"cartier"}}, []uint{5, 3}},
		{"brands are OR'd", Filter{Brands: []string{"Omega", "ROLEX"}}, []uint{2, 1}},
		{"gender exact match", Filter{Genders: []string{"nữ"}}, []uint{5}},
		{"movement substring", Filter{Movements: []string{"cơ"}}, []uint{4, 3, 2, 1}},
		{"strap substring", Filter{StrapTypes: []string{"da"}}, []uint{5, 3}},
		{"atm skips unknown ratings", Filter{WaterResistanceAtms: []int{10}}, []uint{4, 3}},
		{"price ranges are OR'd", Filter{PriceRanges: []PriceRange{PriceRange2To5, PriceRange50Plus}}, []uint{4, 1}},
		{"price lower bound is inclusive", Filter{PriceRanges: []PriceRange{PriceRange5To10}}, []uint{5, 2}},
		{"fields are AND'd", Filter{Brands: []string{"Cartier"}, StrapTypes: []string{"dây da"}, PriceRanges: []PriceRange{PriceRange10To20}}, []uint{3}},
		{"search matches name or brand", Filter{Search: "PATEK"}, []uint{4}},
		{"unknown price range ignored", Filter{PriceRanges: []PriceRange{"cheap"}}, []uint{5, 4, 3, 2, 1}},
		{"no match", Filter{Brands: []string{"Seiko"}}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(products, tt.filter)))
		})
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	products := catalogue()
	Apply(products, Filter{Sort: SortPriceDesc})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(products))
}

func TestParseFilter(t *testing.T) {
	query := url.Values{
		"brand":  {"Rolex,Omega", "Cartier"},
		"gender": {"Nam"},
		"atm":    {"10,x,20"},
		"price":  {"2-5,bogus", "50+"},
		"strap":  {" , "},
		"search": {"  sub "},
		"sort":   {"PRICE-DESC"},
	}

	f := ParseFilter(query)

	assert.Equal(t, []string{"Rolex", "Omega", "Cartier"}, f.Brands)
	assert.Equal(t, []string{"Nam"}, f.Genders)
	assert.Equal(t, []int{10, 20}, f.WaterResistanceAtms)
	assert.Equal(t, []PriceRange{PriceRange2To5, PriceRange50Plus}, f.PriceRanges)
	assert.Empty(t, f.StrapTypes)
	assert.Equal(t, "sub", f.Search)
	assert.Equal(t, SortPriceDesc, f.Sort)
	assert.Equal(t, SortNewest, ParseFilter(url.Values{}).Sort)
}

func TestPriceRangeCondition(t *testing.T) {
	query, args := priceRangeCondition([]PriceRange{PriceRange2To5, PriceRange50Plus})

	assert.Equal(t, "((price >= ? AND price < ?) OR (price >= ?))", query)
	require.Len(t, args, 3)
	assert.True(t, decimal.NewFromInt(2_000_000).Equal(args[0].(decimal.Decimal)))
	assert.True(t, decimal.NewFromInt(5_000_000).Equal(args[1].(decimal.Decimal)))
	assert.True(t, decimal.NewFromInt(50_000_000).Equal(args[2].(decimal.Decimal)))

	query, args = priceRangeCondition(nil)
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestConditions(t *testing.T) {
	f := Filter{
		Search:              "50%_off",
		Brands:              []string{"Rolex"},
		Movements:           []string{"Cơ", "Quartz"},
		WaterResistanceAtms: []int{5},
		PriceRanges:         []PriceRange{PriceRange10To20},
	}

	conds := f.conditions()
	require.Len(t, conds, 5)

	assert.Equal(t, "(LOWER(name) LIKE ? OR LOWER(brand) LIKE ?)", conds[0].query)
	assert.Equal(t, []interface{}{`%50\%\_off%`, `%50\%\_off%`}, conds[0].args)
	assert.Equal(t, "LOWER(brand) IN ?", conds[1].query)
	assert.Equal(t, []interface{}{[]string{"rolex"}}, conds[1].args)
	assert.Equal(t, "(LOWER(movement) LIKE ? OR LOWER(movement) LIKE ?)", conds[2].query)
	assert.Equal(t, []interface{}{"%cơ%", "%quartz%"}, conds[2].args)
	assert.Equal(t, "water_resistance_atm IN ?", conds[3].query)
	assert.Equal(t, "((price >= ? AND price < ?))", conds[4].query)

	assert.Empty(t, Filter{}.conditions())
}

func TestBuildFacets(t *testing.T) {
	facets := BuildFacets(catalogue())

	assert.Equal(t, []string{"Cartier", "Omega", "Patek Philippe", "Rolex"}, facets.Brands)
	assert.Equal(t, []string{"Nam", "Nữ", "Đôi"}, facets.Genders)
	assert.Equal(t, []string{"Quartz", "Đồng hồ cơ"}, facets.Movements)
	assert.Equal(t, []int{10, 20}, facets.WaterResistanceAtms)
}
