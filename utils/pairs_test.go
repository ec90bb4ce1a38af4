package utils_test

import (
	"reflect"
	"testing"

	"github.com/valeriaulyamaeva/fxhub-backend/utils"
)

func TestParsePair(t *testing.T) {
	base, quote, err := utils.ParsePair(" usd / uah ")
	if err != nil {
		t.Fatalf("ошибка разбора пары: %v", err)
	}
	if base != "USD" || quote != "UAH" {
		t.Errorf("ожидали USD/UAH, получили %s/%s", base, quote)
	}
}

func TestParsePairInvalid(t *testing.T) {
	for _, pair := range []string{"", "USDUAH", "USD/", "/UAH", " / "} {
		if _, _, err := utils.ParsePair(pair); err == nil {
			t.Errorf("%q: ожидали ошибку разбора", pair)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := utils.SplitCSV(" USD/UAH , EUR/UAH ,, ")
	want := []string{"USD/UAH", "EUR/UAH"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ожидали %v, получили %v", want, got)
	}
	if utils.SplitCSV("  ") != nil {
		t.Errorf("пустая строка должна давать nil")
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.005:              1.01,
		-3.846153:          -3.85,
		31.5 - 30.0:        1.5,
		0.0001:             0.0,
		41.799999999999997: 41.8,
	}
	for in, want := range cases {
		if got := utils.Round2(in); got != want {
			t.Errorf("Round2(%v): ожидали %v, получили %v", in, want, got)
		}
	}
}
