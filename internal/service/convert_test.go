package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_finalizeShow_DropsOnEmptyTimeOrName — без времени или названия
// запись отбрасывается, а не дефолтится.
func Test_finalizeShow_DropsOnEmptyTimeOrName(t *testing.T) {
	t.Parallel()

	movie := MovieInfo{Link: "Not found"}

	_, ok := finalizeShow(ScheduledShow{Time: "", Name: "Фильм"}, movie, "НСТ")
	require.False(t, ok)

	_, ok = finalizeShow(ScheduledShow{Time: "18", Name: "   "}, movie, "НСТ")
	require.False(t, ok)

	_, ok = finalizeShow(ScheduledShow{Time: " 18 ", Name: " Фильм "}, movie, "НСТ")
	require.True(t, ok)
}

// Test_finalizeShow_RatingPrecedence — рейтинг Кинопоиска выигрывает,
// при его отсутствии берётся бейдж со страницы передачи; мусор даёт 0.
func Test_finalizeShow_RatingPrecedence(t *testing.T) {
	t.Parallel()

	item := ScheduledShow{Time: "18", Name: "Фильм", Detail: ShowDetail{Rating: "7.5"}}

	// Кинопоиск нашёл фильм с рейтингом.
	got, ok := finalizeShow(item, MovieInfo{Link: "https://www.kinopoisk.ru/film/1", Rating: 8.1}, "НСТ")
	require.True(t, ok)
	require.Equal(t, 8.1, got.Rating)

	// Кинопоиск без рейтинга — фолбэк на бейдж.
	got, ok = finalizeShow(item, MovieInfo{Link: "https://www.kinopoisk.ru/film/1"}, "НСТ")
	require.True(t, ok)
	require.Equal(t, 7.5, got.Rating)

	// Мусорный бейдж.
	bad := item
	bad.Detail.Rating = "нет данных"
	got, ok = finalizeShow(bad, MovieInfo{Link: "Not found"}, "НСТ")
	require.True(t, ok)
	require.Zero(t, got.Rating)

	// Отрицательный бейдж не проходит инвариант «рейтинг ≥ 0».
	neg := item
	neg.Detail.Rating = "-2"
	got, _ = finalizeShow(neg, MovieInfo{Link: "Not found"}, "НСТ")
	require.Zero(t, got.Rating)
}

// Test_finalizeShow_DescriptionAndPosterFallback — значение со страницы
// передачи в приоритете, Кинопоиск закрывает пропуски.
func Test_finalizeShow_DescriptionAndPosterFallback(t *testing.T) {
	t.Parallel()

	item := ScheduledShow{
		Time: "18",
		Name: "Фильм",
		Detail: ShowDetail{
			Description: "Описание со страницы",
			Poster:      "",
		},
	}
	movie := MovieInfo{
		Link:        "https://www.kinopoisk.ru/film/1",
		Description: "Описание из Кинопоиска",
		Poster:      "https://cdn.example.org/kp.jpg",
	}

	got, ok := finalizeShow(item, movie, "НСТ")
	require.True(t, ok)
	require.Equal(t, "Описание со страницы", got.Description)
	require.Equal(t, "https://cdn.example.org/kp.jpg", got.Poster)
}

// Test_finalizeShow_CollectionsNeverNil — пустые коллекции вместо nil,
// кадров не больше трёх.
func Test_finalizeShow_CollectionsNeverNil(t *testing.T) {
	t.Parallel()

	got, ok := finalizeShow(ScheduledShow{Time: "18", Name: "Фильм"}, MovieInfo{Link: "Not found"}, "НСТ")
	require.True(t, ok)
	require.NotNil(t, got.Countries)
	require.NotNil(t, got.Frames)
	require.Empty(t, got.Countries)
	require.Empty(t, got.Frames)

	many := ScheduledShow{
		Time: "18",
		Name: "Фильм",
		Detail: ShowDetail{
			Frames: []string{"1", "2", "3", "4", "5"},
		},
	}
	got, _ = finalizeShow(many, MovieInfo{Link: "Not found"}, "НСТ")
	require.Equal(t, []string{"1", "2", "3"}, got.Frames)
}

// Test_finalizeShow_SearchMiss — поиск не дал совпадений, детали взяты
// со страницы передачи: рейтинг из бейджа ("7.5" → 7.5),
// ссылка — всегда из результата поиска ("Not found").
func Test_finalizeShow_SearchMiss(t *testing.T) {
	t.Parallel()

	item := ScheduledShow{
		Time: "18",
		Name: "Movie A",
		Detail: ShowDetail{
			Link:        "https://x/1/42",
			Rating:      "7.5",
			Description: "D",
		},
	}

	got, ok := finalizeShow(item, MovieInfo{Link: "Not found"}, "Test")
	require.True(t, ok)
	require.Equal(t, "18", got.Time)
	require.Equal(t, "Movie A", got.Name)
	require.Equal(t, 7.5, got.Rating)
	require.Equal(t, "D", got.Description)
	require.Equal(t, "Not found", got.Link)
	require.Equal(t, "", got.Poster)
	require.Equal(t, "Test", got.Channel)
	require.Equal(t, "", got.Year)
}
