// telegram — отправка текстового дайджеста телепрограммы через Bot API.
// Необязательный коллаборатор: включается только при настроенном токене.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-tv-guide/internal/service"
)

// defaultBaseURL — адрес Bot API по умолчанию.
const defaultBaseURL = "https://api.telegram.org"

// Notifier — клиент Bot API для одного чата.
type Notifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// New создаёт новый Notifier.
// Пустой baseURL заменяется дефолтным, nil-клиент — клиентом с таймаутом.
func New(client *http.Client, token, chatID, baseURL string) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Notifier{token: token, chatID: chatID, baseURL: baseURL, client: client}
}

// Digest — компактное текстовое представление результатов обхода:
// заголовок канала, затем по каждой передаче две строки —
// "{час} - {название}" и "{рейтинг} | {ссылка}".
func Digest(results []service.ChannelResult) string {
	var b strings.Builder

	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Title)
		b.WriteString("\n")

		for _, s := range r.Shows {
			b.WriteString(s.Time)
			b.WriteString(" - ")
			b.WriteString(s.Name)
			b.WriteString("\n")
			b.WriteString(strconv.FormatFloat(s.Rating, 'f', -1, 64))
			b.WriteString(" | ")
			b.WriteString(s.Link)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// Send отправляет текст в настроенный чат.
func (n *Notifier) Send(ctx context.Context, text string) error {
	const op = "telegram/Send"

	params := url.Values{}
	params.Set("chat_id", n.chatID)
	params.Set("text", text)

	src := n.baseURL + "/bot" + n.token + "/sendMessage?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	return nil
}
