package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-tv-guide/internal/models"
	"github.com/pribylovaa/go-tv-guide/pkg/log"
)

// Collect обрабатывает все каналы из конфигурации end-to-end:
// страница телепрограммы → фильтр по часу → страница передачи → Кинопоиск.
//
// Особенности:
//   - каналы обрабатываются с ограниченным параллелизмом
//     (cfg.Fetcher.Concurrency); результат каждого канала кладётся в свой
//     слот, поэтому порядок каналов в выдаче совпадает с конфигурацией;
//   - внутри канала передачи обходятся строго последовательно и в порядке
//     документа — это политика вежливости к сайту-источнику;
//   - недоступный канал даёт пустой список передач и не мешает остальным.
func (s *Service) Collect(ctx context.Context, parser ScheduleParser, lookup MovieLookup) []ChannelResult {
	const op = "service/aggregator/Collect"

	lg := log.From(ctx).With(slog.String("run_id", uuid.NewString()))
	ctx = log.Into(ctx, lg)

	conc := s.cfg.Fetcher.Concurrency
	if conc <= 0 {
		conc = 1
	}

	lg.Info("collect_start",
		slog.String("op", op),
		slog.Int("channels", len(s.cfg.Channels)),
		slog.Int("concurrency", conc),
	)

	results := make([]ChannelResult, len(s.cfg.Channels))
	sem := make(chan struct{}, conc)

	var cancelled bool
	for i, ch := range s.cfg.Channels {
		results[i].Title = ch.Title

		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			continue
		}

		i := i
		channel := models.Channel{Title: ch.Title, Link: ch.Link}
		sem <- struct{}{}

		go func() {
			defer func() {
				<-sem
			}()

			results[i] = s.collectChannel(ctx, parser, lookup, channel)
		}()
	}

	// Дожидаемся всех каналов: слоты результатов пишутся из горутин,
	// возвращать срез до их завершения нельзя.
	for i := 0; i < cap(sem); i++ {
		sem <- struct{}{}
	}

	if cancelled {
		lg.Warn("collect_cancelled", slog.String("op", op))
		return results
	}

	var total int
	for _, r := range results {
		total += len(r.Shows)
	}
	lg.Info("collect_done",
		slog.String("op", op),
		slog.Int("shows", total),
	)

	return results
}

// collectChannel — один канал: парсинг телепрограммы, затем по каждой
// передаче поиск в Кинопоиске и доведение записи до инвариантов домена.
func (s *Service) collectChannel(ctx context.Context, parser ScheduleParser, lookup MovieLookup, channel models.Channel) ChannelResult {
	const op = "service/aggregator/collectChannel"

	lg := log.From(ctx)
	result := ChannelResult{Title: channel.Title}

	items, err := parser.ParseChannel(ctx, channel)
	if err != nil {
		lg.Warn("channel_parse_error",
			slog.String("op", op),
			slog.String("channel", channel.Title),
			slog.String("err", err.Error()),
		)
		return result
	}

	for _, item := range items {
		movie := lookup.Search(ctx, item.Name, item.Detail.Year)

		if show, ok := finalizeShow(item, movie, channel.Title); ok {
			result.Shows = append(result.Shows, show)
		}
	}

	lg.Info("channel_done",
		slog.String("op", op),
		slog.String("channel", channel.Title),
		slog.Int("shows", len(result.Shows)),
	)

	return result
}

// Flatten разворачивает результаты каналов в единый упорядоченный список:
// сначала порядок каналов из конфигурации, внутри канала — порядок документа.
func Flatten(results []ChannelResult) []models.Show {
	var shows []models.Show
	for _, r := range results {
		shows = append(shows, r.Shows...)
	}
	return shows
}
