package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-tv-guide/internal/models"
)

// finalizeShow собирает нормализованную запись из данных страницы передачи
// и результата Кинопоиска, доводя её до инвариантов домена:
//   - Time/Name обязательны (после TrimSpace) — иначе запись отбрасывается;
//   - Link — всегда из Кинопоиска (каноническая ссылка либо метка
//     "Not found"/"Error occurred");
//   - Rating — рейтинг Кинопоиска, если он > 0; иначе текст бейджа
//     со страницы передачи, разобранный как число (мусор → 0);
//   - Description/Poster — значение со страницы передачи,
//     при его отсутствии — значение из Кинопоиска;
//   - Year — только со страницы передачи; "" означает «неизвестен»;
//   - Countries/Frames — никогда не nil, Frames ≤ 3.
//
// Возвращает (запись, ok=false если запись следует отбросить).
func finalizeShow(item ScheduledShow, movie MovieInfo, channel string) (models.Show, bool) {
	showTime := strings.TrimSpace(item.Time)
	name := strings.TrimSpace(item.Name)

	if showTime == "" || name == "" {
		return models.Show{}, false
	}

	rating := movie.Rating
	if rating <= 0 {
		rating = parseRating(item.Detail.Rating)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < 0 {
		rating = 0
	}

	description := strings.TrimSpace(item.Detail.Description)
	if description == "" {
		description = strings.TrimSpace(movie.Description)
	}

	poster := strings.TrimSpace(item.Detail.Poster)
	if poster == "" {
		poster = strings.TrimSpace(movie.Poster)
	}

	countries := item.Detail.Countries
	if countries == nil {
		countries = []string{}
	}

	frames := item.Detail.Frames
	if frames == nil {
		frames = []string{}
	}
	if len(frames) > 3 {
		frames = frames[:3]
	}

	return models.Show{
		Time:        showTime,
		Name:        name,
		Rating:      rating,
		Description: description,
		Link:        movie.Link,
		Poster:      poster,
		Channel:     channel,
		Year:        strings.TrimSpace(item.Detail.Year),
		Countries:   countries,
		Frames:      frames,
	}, true
}

// parseRating разбирает текст бейджа рейтинга ("7.5"); мусор и
// отрицательные значения дают 0.
func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
