package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Разметка tv.mail.ru неконтролируема и меняется от релиза к релизу,
// поэтому каждое поле извлекается цепочкой именованных стратегий
// с фиксированным порядком фолбэков, и каждая стратегия тотальна:
// «селектор не нашёлся» — это документированный дефолт, а не ошибка.

var yearRe = regexp.MustCompile(`\d{4}`)

// startHour — целый час из data-start; отсутствующий или нечисловой
// атрибут даёт 0 (такая передача не пройдёт фильтр по часу).
// Разбирается только ведущая последовательность цифр ("18:30" → 18).
func startHour(s string) int {
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}

	h, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return h
}

// itemName — название передачи из пункта телепрограммы.
// Сначала ссылка-название, затем запасной селектор без ссылки;
// пусто — если не сработал ни один.
func itemName(s *goquery.Selection) string {
	if name := strings.TrimSpace(s.Find(".p-programms__item__name-link").First().Text()); name != "" {
		return name
	}
	return strings.TrimSpace(s.Find(".p-programms__item-name").First().Text())
}

// extractRating — текст бейджа рейтинга; "0", если бейджа нет.
func extractRating(doc *goquery.Document) string {
	if r := strings.TrimSpace(doc.Find(".p-rate-flag__imdb-text").First().Text()); r != "" {
		return r
	}
	return "0"
}

// extractDescription — описание из блока «показать полностью».
func extractDescription(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".p-show-more__content").First().Text())
}

// extractPoster — src первого изображения постера; "" — постера нет.
func extractPoster(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".p-movie-cover__image").First().AttrOr("src", ""))
}

// extractYear — год выпуска, две стратегии по порядку:
//  1. строка таблицы метаданных с меткой «Год»/«Year» — первое
//     четырёхзначное число из значения;
//  2. тексты «чёрных ссылок» (a.link_black) — первое четырёхзначное число,
//     развёрнутое в диапазон "{y-1}-{y+1}": в списках телепрограммы часто
//     указан год переиздания, и допуск в ±1 год повышает точность поиска.
//
// Ни одна стратегия не сработала — "" («год неизвестен»).
func extractYear(doc *goquery.Document) string {
	year := ""

	doc.Find(".p-movie-info__row").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := strings.ToLower(strings.TrimSpace(s.Find(".p-movie-info__row-title").First().Text()))
		if !strings.Contains(label, "год") && !strings.Contains(label, "year") {
			return true
		}

		if m := yearRe.FindString(s.Find(".p-movie-info__row-value").First().Text()); m != "" {
			year = m
			return false
		}
		return true
	})

	if year != "" {
		return year
	}

	doc.Find("a.link_black").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if m := yearRe.FindString(a.Text()); m != "" {
			y, _ := strconv.Atoi(m)
			year = fmt.Sprintf("%d-%d", y-1, y+1)
			return false
		}
		return true
	})

	return year
}

// extractCountries — страны производства: каждая строка метаданных
// с меткой «Страна»/«Country» добавляет свой список значений через запятую.
// Порядок строк и значений внутри строки сохраняется.
func extractCountries(doc *goquery.Document) []string {
	var countries []string

	doc.Find(".p-movie-info__row").Each(func(_ int, s *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(s.Find(".p-movie-info__row-title").First().Text()))
		if !strings.Contains(label, "стран") && !strings.Contains(label, "country") {
			return
		}

		for _, c := range strings.Split(s.Find(".p-movie-info__row-value").First().Text(), ",") {
			if c = strings.TrimSpace(c); c != "" {
				countries = append(countries, c)
			}
		}
	})

	return countries
}

// extractFrames — до трёх кадров из галереи в порядке документа;
// источник — lazy-load атрибут, обычный src у таких картинок пустой.
func extractFrames(doc *goquery.Document) []string {
	var frames []string

	doc.Find(".p-picture_object-fit img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if src := strings.TrimSpace(img.AttrOr("data-lazy-block-src", "")); src != "" {
			frames = append(frames, src)
		}
		return len(frames) < 3
	})

	return frames
}
