// kinopoisk — клиент api.kinopoisk.dev, реализует service.MovieLookup.
package kinopoisk

// searchResponse — ответ GET /movie/search (нужен только первый документ).
type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

// searchDoc — минимум из результата поиска: идентификатор фильма.
type searchDoc struct {
	ID int64 `json:"id"`
}

// movieResponse — ответ GET /movie/{id}.
type movieResponse struct {
	ID          int64       `json:"id"`
	Rating      ratingBlock `json:"rating"`
	Description string      `json:"description"`
	Poster      posterBlock `json:"poster"`
}

// ratingBlock — блок рейтингов; используется только рейтинг Кинопоиска.
type ratingBlock struct {
	KP float64 `json:"kp"`
}

// posterBlock — блок постера.
type posterBlock struct {
	URL string `json:"url"`
}
