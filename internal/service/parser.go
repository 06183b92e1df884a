package service

import (
	"context"

	"github.com/pribylovaa/go-tv-guide/internal/models"
)

// ScheduleParser описывает абстракцию источника телепрограммы,
// который разбирает страницу канала и возвращает прошедшие фильтр передачи.
//
// Требования к реализации:
//  1. Передачи возвращаются в порядке следования на странице.
//  2. Ошибка возвращается только при недоступности/нечитаемости самой
//     страницы канала; сбой на странице отдельной передачи реализация
//     обязана поглотить и просто не включать передачу в результат.
//  3. Реализация обязана уважать ctx (отмена/таймауты).
type ScheduleParser interface {
	ParseChannel(ctx context.Context, channel models.Channel) ([]ScheduledShow, error)
}

// ScheduledShow — одна передача из телепрограммы вместе с данными
// её страницы. Живёт только внутри одного прохода пайплайна.
type ScheduledShow struct {
	// Time — час начала ("18"), как в атрибуте data-start.
	Time string
	// Name — название передачи.
	Name string
	// Detail — данные страницы передачи.
	Detail ShowDetail
}

// ShowDetail — данные, извлечённые со страницы передачи.
// Каждое поле имеет безопасный дефолт: разметка источника неконтролируема,
// и отсутствие любого поля не должно ронять передачу целиком.
type ShowDetail struct {
	// Link — URL страницы передачи ({channel}/{id}).
	Link string
	// Rating — текст бейджа рейтинга; "0", если бейджа нет.
	Rating string
	// Description — описание из блока «показать полностью».
	Description string
	// Poster — ссылка на постер; "" — постера нет.
	Poster string
	// Year — год ("2020") или диапазон ("2019-2021"); "" — не найден.
	Year string
	// Countries — страны производства из таблицы метаданных.
	Countries []string
	// Frames — до трёх кадров из галереи.
	Frames []string
}

// MovieLookup описывает поиск фильма во внешней базе.
//
// Search — тотальная функция: любой сбой (сеть, статус, декодирование)
// конвертируется в заглушку, наружу ошибка не выходит никогда.
// Это позволяет оркестратору обрабатывать передачи без точечных
// обработок ошибок вокруг каждого вызова.
type MovieLookup interface {
	Search(ctx context.Context, name, year string) MovieInfo
}

// MovieInfo — нормализованный результат поиска фильма.
type MovieInfo struct {
	// Link — каноническая ссылка на фильм, либо метка
	// "Not found" (совпадений нет) / "Error occurred" (сбой запроса).
	Link string
	// Rating — числовой рейтинг; 0 — рейтинга нет.
	Rating float64
	// Description — описание фильма или "".
	Description string
	// Poster — ссылка на постер или "".
	Poster string
}
