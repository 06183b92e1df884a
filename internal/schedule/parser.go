// schedule — реализует service.ScheduleParser для страниц телепрограммы
// tv.mail.ru. Возвращает передачи с заполненным service.ShowDetail.
//
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
package schedule

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pribylovaa/go-tv-guide/internal/models"
	"github.com/pribylovaa/go-tv-guide/internal/service"
	"github.com/pribylovaa/go-tv-guide/pkg/log"
)

// Parser разбирает страницу канала и страницы отдельных передач.
type Parser struct {
	client  *http.Client
	minHour int
}

// New создаёт новый парсер телепрограммы.
// minHour — минимальный час начала передачи (включительно);
// значение вне [0, 23] заменяется дефолтными 17.
func New(client *http.Client, minHour int) *Parser {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	if minHour < 0 || minHour > 23 {
		minHour = 17
	}

	return &Parser{client: client, minHour: minHour}
}

// entry — сырые атрибуты одного пункта телепрограммы.
// Живёт только внутри одного прохода разбора страницы канала.
type entry struct {
	id    string
	start string
	name  string
}

// ParseChannel загружает страницу канала, отбирает передачи с началом
// не раньше minHour и для каждой загружает страницу с деталями.
//
// Ошибка возвращается только для самой страницы канала; сбой загрузки
// страницы отдельной передачи логируется, передача выпадает из результата.
func (p *Parser) ParseChannel(ctx context.Context, channel models.Channel) ([]service.ScheduledShow, error) {
	const op = "schedule/ParseChannel"

	lg := log.From(ctx)

	doc, err := p.fetchDoc(ctx, channel.Link)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := collectEntries(doc, p.minHour)

	var shows []service.ScheduledShow
	for _, e := range entries {
		detail, err := p.fetchDetail(ctx, channel.Link, e.id)
		if err != nil {
			lg.Warn("show_detail_error",
				slog.String("op", op),
				slog.String("channel", channel.Title),
				slog.String("id", e.id),
				slog.String("err", err.Error()),
			)
			continue
		}

		shows = append(shows, service.ScheduledShow{
			Time:   e.start,
			Name:   e.name,
			Detail: detail,
		})
	}

	return shows, nil
}

// collectEntries отбирает пункты телепрограммы:
//   - data-start разбирается как целый час (отсутствует/мусор → 0),
//     пункты с часом меньше minHour отбрасываются;
//   - название берётся по цепочке селекторов; пункт без названия пропускается;
//   - data-id обязателен — без него страницу передачи не найти.
func collectEntries(doc *goquery.Document, minHour int) []entry {
	var entries []entry

	doc.Find(".p-programms__item").Each(func(_ int, s *goquery.Selection) {
		start := strings.TrimSpace(s.AttrOr("data-start", ""))
		if startHour(start) < minHour {
			return
		}

		name := itemName(s)
		if name == "" {
			return
		}

		id := strings.TrimSpace(s.AttrOr("data-id", ""))
		if id == "" {
			return
		}

		entries = append(entries, entry{id: id, start: start, name: name})
	})

	return entries
}

// fetchDetail загружает страницу передачи и извлекает из неё все поля.
func (p *Parser) fetchDetail(ctx context.Context, channelLink, id string) (service.ShowDetail, error) {
	const op = "schedule/fetchDetail"

	link := detailURL(channelLink, id)

	doc, err := p.fetchDoc(ctx, link)
	if err != nil {
		return service.ShowDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	return service.ShowDetail{
		Link:        link,
		Rating:      extractRating(doc),
		Description: extractDescription(doc),
		Poster:      extractPoster(doc),
		Year:        extractYear(doc),
		Countries:   extractCountries(doc),
		Frames:      extractFrames(doc),
	}, nil
}

// fetchDoc — GET страницы и разбор HTML в goquery-документ.
func (p *Parser) fetchDoc(ctx context.Context, src string) (*goquery.Document, error) {
	const op = "schedule/fetchDoc"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", op, err)
	}

	return doc, nil
}

// detailURL — адрес страницы передачи: {channelLink}/{id}.
func detailURL(channelLink, id string) string {
	return strings.TrimRight(channelLink, "/") + "/" + id
}
