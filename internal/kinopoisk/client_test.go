package kinopoisk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Search_HappyPath — поиск + детальный запрос, проверка заголовка
// авторизации и параметров запроса.
func Test_Search_HappyPath(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/movie/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		q := r.URL.Query()
		require.Equal(t, "Фильм А", q.Get("query"))
		require.Equal(t, "2019-2021", q.Get("year"))
		require.Equal(t, "1", q.Get("limit"))

		_, _ = w.Write([]byte(`{"docs":[{"id":301}]}`))
	})
	mux.HandleFunc("/movie/301", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		_, _ = w.Write([]byte(`{
			"id": 301,
			"rating": {"kp": 8.1},
			"description": "Описание",
			"poster": {"url": "https://cdn.example.org/p.jpg"}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.Client(), "secret", srv.URL)
	got := c.Search(context.Background(), "Фильм А", "2019-2021")

	require.Equal(t, "https://www.kinopoisk.ru/film/301", got.Link)
	require.Equal(t, 8.1, got.Rating)
	require.Equal(t, "Описание", got.Description)
	require.Equal(t, "https://cdn.example.org/p.jpg", got.Poster)
}

// Test_Search_WithoutYear — пустой год не попадает в параметры запроса.
func Test_Search_WithoutYear(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/movie/search", func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.URL.Query()["year"]
		require.False(t, ok, "параметр year не должен отправляться")
		_, _ = w.Write([]byte(`{"docs":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.Client(), "secret", srv.URL)
	got := c.Search(context.Background(), "Фильм", "")
	require.Equal(t, "Not found", got.Link)
}

// Test_Search_NoMatch — пустой docs даёт заглушку "Not found".
func Test_Search_NoMatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "secret", srv.URL)
	got := c.Search(context.Background(), "Нет такого", "2020")

	require.Equal(t, "Not found", got.Link)
	require.Zero(t, got.Rating)
	require.Empty(t, got.Description)
	require.Empty(t, got.Poster)
}

// Test_Search_Total_OnErrors — любой сбой (статус, битый JSON, сеть)
// конвертируется в заглушку "Error occurred", наружу ошибка не выходит.
func Test_Search_Total_OnErrors(t *testing.T) {
	t.Parallel()

	// 1) 500 на поиске.
	srv500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv500.Close()

	c := New(srv500.Client(), "secret", srv500.URL)
	require.Equal(t, "Error occurred", c.Search(context.Background(), "X", "").Link)

	// 2) Битый JSON на детальном запросе.
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[{"id":7}]}`))
	})
	mux.HandleFunc("/movie/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	})
	srvBad := httptest.NewServer(mux)
	defer srvBad.Close()

	c2 := New(srvBad.Client(), "secret", srvBad.URL)
	require.Equal(t, "Error occurred", c2.Search(context.Background(), "X", "").Link)

	// 3) Сервер недоступен.
	srvDead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srvDead.URL
	srvDead.Close()

	c3 := New(nil, "secret", deadURL)
	got := c3.Search(context.Background(), "X", "2020")
	require.Equal(t, "Error occurred", got.Link)
	require.Zero(t, got.Rating)
}

// Test_Search_NegativeRating_Clamped — отрицательный рейтинг из API
// не нарушает инвариант «рейтинг ≥ 0».
func Test_Search_NegativeRating_Clamped(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/movie/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs":[{"id":9}]}`))
	})
	mux.HandleFunc("/movie/9", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"rating":{"kp":-3}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.Client(), "secret", srv.URL)
	require.Zero(t, c.Search(context.Background(), "X", "").Rating)
}

// Test_New_Defaults — дефолтный baseURL и клиент с таймаутом.
func Test_New_Defaults(t *testing.T) {
	t.Parallel()

	c := New(nil, "k", "")
	require.Equal(t, "https://api.kinopoisk.dev/v1.4", c.baseURL)
	require.NotNil(t, c.client)

	c2 := New(nil, "k", "https://api.example.org/v1.4/")
	require.Equal(t, "https://api.example.org/v1.4", c2.baseURL)
}
