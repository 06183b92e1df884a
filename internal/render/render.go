// render — рендеринг итогового HTML из нормализованного списка передач.
// Коллаборатор пайплайна: без сетевого I/O и без знания о источниках данных.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/pribylovaa/go-tv-guide/internal/models"
)

//go:embed templates/guide.html
var defaultTemplate string

// Renderer — обёртка над разобранным шаблоном.
type Renderer struct {
	tmpl *template.Template
}

// New создаёт рендерер. templatePath == "" — используется встроенный шаблон.
func New(templatePath string) (*Renderer, error) {
	const op = "render/New"

	text := defaultTemplate
	if templatePath != "" {
		b, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("%s: read_template: %w", op, err)
		}
		text = string(b)
	}

	tmpl, err := template.New("guide").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: parse_template: %w", op, err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// pageData — контекст шаблона.
// Шаблон ветвится по наличию Poster/Year/Countries/Frames, поэтому
// пустые значения дают действительно отсутствующую разметку.
type pageData struct {
	GeneratedAt string
	Shows       []models.Show
}

// Render собирает HTML-документ целиком в память.
func (r *Renderer) Render(shows []models.Show, generatedAt string) ([]byte, error) {
	const op = "render/Render"

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, pageData{GeneratedAt: generatedAt, Shows: shows}); err != nil {
		return nil, fmt.Errorf("%s: execute: %w", op, err)
	}
	return buf.Bytes(), nil
}

// WriteFile атомарно записывает артефакт: временный файл + rename,
// чтобы сбой посреди записи не оставил частичный/битый HTML.
func WriteFile(path string, data []byte) error {
	const op = "render/WriteFile"

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: mkdir: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".guide-*.html")
	if err != nil {
		return fmt.Errorf("%s: create_temp: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: write: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: close: %w", op, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: chmod: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: rename: %w", op, err)
	}
	return nil
}

// monthsRU — названия месяцев в родительном падеже для Timestamp.
var monthsRU = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Timestamp — человекочитаемая отметка времени для шапки документа:
// "7 февраля 2026, 18:05".
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		t.Day(), monthsRU[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
