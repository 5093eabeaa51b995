package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boutique_back_end/internal/models"
)

func TestCatalog(t *testing.T) {
	t.Run("BaseProducts_ReturnsCopy", func(t *testing.T) {
		products := BaseProducts()
		require.Len(t, products, 6)
		products[0].Name = "changé"
		require.Equal(t, "T-Shirt", BaseProducts()[0].Name)
	})

	t.Run("BuildCatalog_BaseThenCustom", func(t *testing.T) {
		entries := buildCatalog(BaseProducts(), []models.Product{{Name: "Hat", Price: 5}})
		require.Len(t, entries, 7)
		require.False(t, entries[0].IsCustom())
		require.True(t, entries[6].IsCustom())
		require.Equal(t, 0, entries[6].CustomIndex)
	})

	t.Run("SortEntries_NonDecreasingAndNonMutating", func(t *testing.T) {
		entries := buildCatalog(nil, []models.Product{
			{Name: "a", Price: 20}, {Name: "b", Price: 15}, {Name: "c", Price: 20}, {Name: "d", Price: 15},
		})

		asc := SortEntries(entries, SortPriceAsc)
		for i := 1; i < len(asc); i++ {
			require.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
		}
		// tri stable : les ex aequo gardent leur ordre
		require.Equal(t, []string{"b", "d", "a", "c"}, names(asc))

		desc := SortEntries(entries, SortPriceDesc)
		require.Equal(t, []string{"a", "c", "b", "d"}, names(desc))

		require.Equal(t, []string{"a", "b", "c", "d"}, names(entries))
		require.Equal(t, []string{"a", "b", "c", "d"}, names(SortEntries(entries, SortNone)))
	})

	t.Run("ParseSortKey_UnknownMeansStoredOrder", func(t *testing.T) {
		require.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
		require.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
		require.Equal(t, SortNone, ParseSortKey("name"))
		require.Equal(t, SortNone, ParseSortKey(""))
	})

	t.Run("FilterEntries_KeepsCustomIndex", func(t *testing.T) {
		entries := buildCatalog(BaseProducts(), []models.Product{{Name: "Hat"}, {Name: "Top Hat"}})

		out := FilterEntries(entries, "HAT")
		require.Len(t, out, 2)
		require.Equal(t, 1, out[1].CustomIndex)
		require.Len(t, FilterEntries(entries, ""), 8)
	})

	t.Run("Stars_ClampsRating", func(t *testing.T) {
		require.Equal(t, "★★★★☆", Stars(4))
		require.Equal(t, "☆☆☆☆☆", Stars(-2))
		require.Equal(t, "★★★★★", Stars(9))
	})

	t.Run("RenderCatalog_AdminControlsOnlyOnCustom", func(t *testing.T) {
		entries := buildCatalog(BaseProducts()[:1], []models.Product{{Name: "Hat", Rating: 2}})

		cards := RenderCatalog(entries, true)
		require.Nil(t, cards[0].CustomIndex)
		require.False(t, cards[0].AdminControls)
		require.NotNil(t, cards[1].CustomIndex)
		require.True(t, cards[1].AdminControls)
		require.Equal(t, "★★☆☆☆", cards[1].Stars)

		require.False(t, RenderCatalog(entries, false)[1].AdminControls)
	})
}

func TestParseProductForm(t *testing.T) {
	cases := []struct {
		name string
		form models.ProductForm
		want models.Product
		ok   bool
	}{
		{"Valid", models.ProductForm{Name: "Hat", Price: "9.99", ImageURL: "h.png", Rating: "5"}, models.Product{Name: "Hat", Price: 9.99, ImageURL: "h.png", Rating: 5}, true},
		{"FractionalRatingTruncated", models.ProductForm{Name: "Hat", Price: "3", ImageURL: "h.png", Rating: "4.7"}, models.Product{Name: "Hat", Price: 3, ImageURL: "h.png", Rating: 4}, true},
		{"TrailingTextAfterPrice", models.ProductForm{Name: "Hat", Price: " 15abc", ImageURL: "h.png", Rating: "3 stars"}, models.Product{Name: "Hat", Price: 15, ImageURL: "h.png", Rating: 3}, true},
		{"ExponentPrice", models.ProductForm{Name: "Hat", Price: "1.5e1€", ImageURL: "h.png", Rating: "2"}, models.Product{Name: "Hat", Price: 15, ImageURL: "h.png", Rating: 2}, true},
		{"LeadingDotPrice", models.ProductForm{Name: "Hat", Price: ".5", ImageURL: "h.png", Rating: "1"}, models.Product{Name: "Hat", Price: 0.5, ImageURL: "h.png", Rating: 1}, true},
		{"TextBeforePrice", models.ProductForm{Name: "Hat", Price: "€15", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"TextOnlyRating", models.ProductForm{Name: "Hat", Price: "3", ImageURL: "h.png", Rating: "five"}, models.Product{}, false},
		{"MissingName", models.ProductForm{Price: "3", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"MissingImage", models.ProductForm{Name: "Hat", Price: "3", Rating: "4"}, models.Product{}, false},
		{"ZeroPrice", models.ProductForm{Name: "Hat", Price: "0", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"NegativePrice", models.ProductForm{Name: "Hat", Price: "-1", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"NotANumber", models.ProductForm{Name: "Hat", Price: "abc", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"InfinitePrice", models.ProductForm{Name: "Hat", Price: "Inf", ImageURL: "h.png", Rating: "4"}, models.Product{}, false},
		{"ZeroRating", models.ProductForm{Name: "Hat", Price: "3", ImageURL: "h.png", Rating: "0"}, models.Product{}, false},
		{"RatingAboveFive", models.ProductForm{Name: "Hat", Price: "3", ImageURL: "h.png", Rating: "6"}, models.Product{}, false},
		{"RatingBelowOne", models.ProductForm{Name: "Hat", Price: "3", ImageURL: "h.png", Rating: "0.5"}, models.Product{}, false},
	}

	for _, tc := range cases {
		t.Run("ParseProductForm_"+tc.name, func(t *testing.T) {
			got, err := ParseProductForm(tc.form)
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidProduct)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
