package validate_test

import (
	"testing"

	"ecycle/internal/validate"
)

func TestQty(t *testing.T) {
	cases := map[string]int{"": 1, "0": 1, "-3": 1, "2": 2, "999": 50, "abc": 1}
	for in, want := range cases {
		if got := validate.Qty(in); got != want {
			t.Fatalf("Qty(%q): want %d, got %d", in, want, got)
		}
	}
}

func TestQuantityKeepsNonPositive(t *testing.T) {
	if n, ok := validate.Quantity("0"); !ok || n != 0 {
		t.Fatal("exact quantity must pass 0 through for the store to no-op")
	}
	if _, ok := validate.Quantity("nope"); ok {
		t.Fatal("unparseable quantity must be rejected")
	}
}

func TestProductID(t *testing.T) {
	if id, ok := validate.ProductID("12"); !ok || id != 12 {
		t.Fatal("valid id rejected")
	}
	for _, bad := range []string{"", "0", "-1", "abc", "1; DROP TABLE"} {
		if _, ok := validate.ProductID(bad); ok {
			t.Fatalf("ProductID(%q) must fail", bad)
		}
	}
}

func TestFacetAndToken(t *testing.T) {
	if _, ok := validate.Facet("Very Good"); !ok {
		t.Fatal("display facet value rejected")
	}
	if _, ok := validate.Facet("<script>"); ok {
		t.Fatal("markup must not validate as a facet")
	}
	if _, ok := validate.Token("smartphone"); !ok {
		t.Fatal("table key rejected")
	}
	if _, ok := validate.Token("Smart Phone"); ok {
		t.Fatal("tokens are lowercase single words")
	}
}

func TestAgeAndPrice(t *testing.T) {
	if _, ok := validate.Age("0"); ok {
		t.Fatal("age below 1 must fail")
	}
	if n, ok := validate.Age("5"); !ok || n != 5 {
		t.Fatal("valid age rejected")
	}
	if _, ok := validate.Price("-1"); ok {
		t.Fatal("negative price must fail")
	}
	if v, ok := validate.Price("649.99"); !ok || v != 649.99 {
		t.Fatal("valid price rejected")
	}
}
