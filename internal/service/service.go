// service содержит бизнес-логику tv-guide: обход каналов телепрограммы,
// обогащение передач данными Кинопоиска и сборку итогового списка.
package service

import (
	"github.com/pribylovaa/go-tv-guide/internal/config"
	"github.com/pribylovaa/go-tv-guide/internal/models"
)

// Service — оркестратор пайплайна fetch → filter → extract → lookup.
type Service struct {
	cfg config.Config
}

// New создает новый экземпляр Service.
func New(cfg config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// ChannelResult — результат обработки одного канала.
// Сохраняет порядок передач как в исходной телепрограмме.
type ChannelResult struct {
	// Title — имя канала.
	Title string
	// Shows — нормализованные передачи канала; пустой список,
	// если страница канала оказалась недоступна или нечитаема.
	Shows []models.Show
}
