package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/handlers"
	"github.com/valeriaulyamaeva/fxhub-backend/internal/rates"
	"github.com/valeriaulyamaeva/fxhub-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStore — минимальное хранилище для тестов HTTP-слоя.
type stubStore struct {
	channels []models.Channel
	rates    []models.Rate
	fail     bool
	pingErr  error
}

func (s *stubStore) Channels(ctx context.Context) ([]models.Channel, error) {
	if s.fail {
		return nil, errors.New("хранилище недоступно")
	}
	return s.channels, nil
}

func (s *stubStore) Rates(ctx context.Context, filter rates.RateFilter) ([]models.Rate, error) {
	if s.fail {
		return nil, errors.New("хранилище недоступно")
	}
	var out []models.Rate
	for _, r := range s.rates {
		if filter.CurrencyA != "" && r.CurrencyA != filter.CurrencyA {
			continue
		}
		if filter.CurrencyB != "" && r.CurrencyB != filter.CurrencyB {
			continue
		}
		if len(filter.ChannelIDs) > 0 {
			found := false
			for _, id := range filter.ChannelIDs {
				if id == r.ChannelID {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Edited.After(out[j].Edited) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *stubStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func fptr(v float64) *float64 { return &v }

func testStore() *stubStore {
	now := time.Now().UTC()
	return &stubStore{
		channels: []models.Channel{
			{ID: 1, Name: "ExchangeA"},
			{ID: 2, Name: "ExchangeB"},
		},
		rates: []models.Rate{
			{ChannelID: 1, CurrencyA: "USD", CurrencyB: "UAH", Buy: fptr(41.50), Sell: fptr(42.00), Edited: now},
			{ChannelID: 2, CurrencyA: "USD", CurrencyB: "UAH", Buy: fptr(41.80), Sell: fptr(41.90), Edited: now.Add(-time.Minute)},
			{ChannelID: 1, CurrencyA: "EUR", CurrencyB: "UAH", Buy: fptr(48.00), Sell: nil, Edited: now},
		},
	}
}

func serveRequest(store rates.Store, method, target string) *httptest.ResponseRecorder {
	svc := rates.NewService(store, 100, 0.0001)
	r := gin.New()
	r.GET("/rates/bestrate", handlers.BestRatesHandler(svc))
	r.GET("/rates/history", handlers.HistoryHandler(svc))
	r.GET("/exchangers/list", handlers.ExchangersListHandler(svc))
	r.GET("/exchangers/pairs", handlers.ExchangerPairsHandler(svc))
	r.GET("/currencies/list", handlers.CurrenciesListHandler(svc))
	r.GET("/health", handlers.HealthHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Meta    map[string]any    `json:"meta"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("ошибка разбора ответа: %v\n%s", err, w.Body.String())
	}
	return env
}

func TestBestRatesEndpoint(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/bestrate")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("success должен быть true: %s", w.Body.String())
	}

	var data []models.BestRate
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("ошибка разбора data: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("ожидали 2 пары, получили %d", len(data))
	}
	if env.Meta["total"].(float64) != 2 || env.Meta["returned"].(float64) != 2 {
		t.Errorf("неверные метаданные: %+v", env.Meta)
	}

	// EUR/UAH идёт первой (сортировка), у неё есть только buy.
	if data[0].Currency != "EUR/UAH" || data[0].SellBest != nil {
		t.Errorf("EUR/UAH должна быть без sell-полей, получили %+v", data[0])
	}
	if data[1].Currency != "USD/UAH" || *data[1].BuyBest != 41.80 || *data[1].SellBest != 41.90 {
		t.Errorf("USD/UAH: лучшие курсы 41.80/41.90, получили %+v", data[1])
	}
}

// Отсутствующая сторона не сериализуется вовсе: в JSON нет ключей sell_*.
func TestBestRatesOmitsMissingSide(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/bestrate?currencies=EUR/UAH")
	body := w.Body.String()
	for _, key := range []string{"sell_best", "sell_exchanger", "sell_trend", "sell_change_abs"} {
		if strings.Contains(body, `"`+key+`"`) {
			t.Errorf("ключ %q не должен присутствовать в ответе: %s", key, body)
		}
	}
	if !strings.Contains(body, `"buy_best"`) {
		t.Errorf("ключ buy_best должен присутствовать: %s", body)
	}
}

func TestBestRatesPagination(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/bestrate?limit=1&offset=1")
	env := decodeEnvelope(t, w)

	var data []models.BestRate
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("ошибка разбора data: %v", err)
	}
	if len(data) != 1 || data[0].Currency != "USD/UAH" {
		t.Errorf("страница limit=1 offset=1 должна содержать USD/UAH, получили %+v", data)
	}
	if env.Meta["total"].(float64) != 2 || env.Meta["offset"].(float64) != 1 || env.Meta["returned"].(float64) != 1 {
		t.Errorf("неверные метаданные пагинации: %+v", env.Meta)
	}
}

func TestBestRatesInvalidLimit(t *testing.T) {
	for _, target := range []string{
		"/rates/bestrate?limit=0",
		"/rates/bestrate?limit=101",
		"/rates/bestrate?limit=abc",
		"/rates/bestrate?offset=-1",
	} {
		w := serveRequest(testStore(), http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: ожидали 400, получили %d", target, w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Success || env.Error == "" {
			t.Errorf("%s: ожидали конверт ошибки, получили %s", target, w.Body.String())
		}
	}
}

// Пустой результат — это 200 с пустым списком, не ошибка.
func TestBestRatesEmptyResult(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/bestrate?exchangers=NoSuch")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if string(env.Data) != "[]" {
		t.Errorf("data должна быть пустым списком, получили %s", env.Data)
	}
}

func TestBestRatesStoreFailure(t *testing.T) {
	w := serveRequest(&stubStore{fail: true}, http.MethodGet, "/rates/bestrate")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("ожидали 500, получили %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Success || env.Error != "Internal server error" {
		t.Errorf("ожидали конверт ошибки, получили %s", w.Body.String())
	}
}

func TestHistoryEndpoint(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/history?currency_pair=USD/UAH&days=7&interval=hour")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)

	var history models.History
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatalf("ошибка разбора data: %v", err)
	}
	if history.Currency != "USD/UAH" || history.PeriodDays != 7 || history.Interval != "hour" {
		t.Errorf("неверные атрибуты ряда: %+v", history)
	}
	if len(history.DataPoints) == 0 {
		t.Errorf("ожидали точки данных")
	}
	if env.Meta["count"].(float64) != float64(len(history.DataPoints)) {
		t.Errorf("meta.count не совпадает с количеством точек: %+v", env.Meta)
	}
}

func TestHistoryValidation(t *testing.T) {
	for _, target := range []string{
		"/rates/history",                                  // нет пары
		"/rates/history?currency_pair=USDUAH",             // нет разделителя
		"/rates/history?currency_pair=USD/UAH&days=0",     // за границей
		"/rates/history?currency_pair=USD/UAH&days=31",    // за границей
		"/rates/history?currency_pair=USD/UAH&interval=x", // не hour/day
	} {
		w := serveRequest(testStore(), http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: ожидали 400, получили %d", target, w.Code)
		}
	}
}

// Регистр и пробелы в паре не мешают: "usd/uah" находит USD/UAH.
func TestHistoryNormalizesPair(t *testing.T) {
	w := serveRequest(testStore(), http.MethodGet, "/rates/history?currency_pair=usd/uah")
	env := decodeEnvelope(t, w)
	var history models.History
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatalf("ошибка разбора data: %v", err)
	}
	if history.Currency != "USD/UAH" || len(history.DataPoints) == 0 {
		t.Errorf("пара должна нормализоваться к USD/UAH, получили %+v", history)
	}
}
