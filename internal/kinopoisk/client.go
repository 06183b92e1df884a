package kinopoisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-tv-guide/internal/service"
	"github.com/pribylovaa/go-tv-guide/pkg/log"
)

const (
	// defaultBaseURL — адрес API по умолчанию.
	defaultBaseURL = "https://api.kinopoisk.dev/v1.4"
	// publicFilmURL — префикс публичной ссылки на фильм.
	publicFilmURL = "https://www.kinopoisk.ru/film/"
	// headerAPIKey — заголовок авторизации API.
	headerAPIKey = "X-API-KEY"

	// linkNotFound помечает результат «совпадений нет».
	linkNotFound = "Not found"
	// linkError помечает результат «сбой запроса/разбора».
	linkError = "Error occurred"
)

// Client — HTTP-клиент api.kinopoisk.dev.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New создаёт новый клиент Кинопоиска.
// Пустой baseURL заменяется дефолтным, nil-клиент — клиентом с таймаутом.
func New(client *http.Client, apiKey, baseURL string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{baseURL: baseURL, apiKey: apiKey, client: client}
}

// Search ищет фильм по названию (и году, если он известен) и возвращает
// нормализованный результат по первому совпадению.
//
// Тотальная функция: любой сбой любого из двух запросов конвертируется
// в заглушку с меткой в Link, ошибка наружу не выходит никогда.
func (c *Client) Search(ctx context.Context, name, year string) service.MovieInfo {
	const op = "kinopoisk/Search"

	lg := log.From(ctx)

	id, err := c.searchID(ctx, name, year)
	if err != nil {
		lg.Warn("search_error",
			slog.String("op", op),
			slog.String("name", name),
			slog.String("err", err.Error()),
		)
		return placeholder(linkError)
	}
	if id == 0 {
		return placeholder(linkNotFound)
	}

	movie, err := c.movieByID(ctx, id)
	if err != nil {
		lg.Warn("movie_fetch_error",
			slog.String("op", op),
			slog.String("name", name),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)
		return placeholder(linkError)
	}

	rating := movie.Rating.KP
	if rating < 0 {
		rating = 0
	}

	return service.MovieInfo{
		Link:        publicFilmURL + strconv.FormatInt(movie.ID, 10),
		Rating:      rating,
		Description: movie.Description,
		Poster:      movie.Poster.URL,
	}
}

// searchID — GET /movie/search, limit=1; 0 означает «совпадений нет».
func (c *Client) searchID(ctx context.Context, name, year string) (int64, error) {
	const op = "kinopoisk/searchID"

	params := url.Values{}
	params.Set("query", name)
	if year != "" {
		params.Set("year", year)
	}
	params.Set("limit", "1")

	var res searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/movie/search?"+params.Encode(), &res); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if len(res.Docs) == 0 {
		return 0, nil
	}
	return res.Docs[0].ID, nil
}

// movieByID — GET /movie/{id}.
func (c *Client) movieByID(ctx context.Context, id int64) (movieResponse, error) {
	const op = "kinopoisk/movieByID"

	var res movieResponse
	if err := c.getJSON(ctx, c.baseURL+"/movie/"+strconv.FormatInt(id, 10), &res); err != nil {
		return movieResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// getJSON — GET с заголовком API-ключа и декодированием JSON-ответа.
func (c *Client) getJSON(ctx context.Context, src string, v any) error {
	const op = "kinopoisk/getJSON"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}

// placeholder — пустой результат с меткой причины в Link.
func placeholder(link string) service.MovieInfo {
	return service.MovieInfo{
		Link:   link,
		Rating: 0,
	}
}
