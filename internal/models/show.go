// models содержит доменные сущности tv-guide.
// Эти типы используются слоями бизнес-логики и рендеринга.
package models

// Channel — источник телепрограммы.
//
// Статическая конфигурация: задаётся один раз при старте
// и не меняется в течение жизни процесса.
type Channel struct {
	// Title — отображаемое имя канала.
	Title string
	// Link — базовый URL страницы телепрограммы канала.
	Link string
}

// Show — итоговая, готовая к рендерингу запись об одной передаче:
// объединение данных со страницы передачи и данных Кинопоиска.
//
// Инварианты:
//   - Time и Name непустые;
//   - Rating конечен и ≥ 0;
//   - Countries и Frames никогда не nil (пустой срез — «нет данных»),
//     чтобы шаблон не делал лишних проверок;
//   - Year == "" означает «год неизвестен»: шаблон ветвится по наличию.
type Show struct {
	// Time — час начала передачи ("18").
	Time string
	// Name — название передачи.
	Name string
	// Rating — числовой рейтинг (0 — рейтинга нет).
	Rating float64
	// Description — описание передачи.
	Description string
	// Link — ссылка на страницу фильма на Кинопоиске,
	// либо метка "Not found"/"Error occurred", если поиск не дал результата.
	Link string
	// Poster — ссылка на постер.
	Poster string
	// Channel — имя канала-источника.
	Channel string
	// Year — год выпуска ("2020") или диапазон ("2019-2021"); "" — неизвестен.
	Year string
	// Countries — страны производства.
	Countries []string
	// Frames — до трёх кадров из передачи.
	Frames []string
}
