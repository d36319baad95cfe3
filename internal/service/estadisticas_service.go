package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SnapshotPublisher hands a serialized snapshot to the reporting side.
// worker.Dispatcher is the production implementation.
type SnapshotPublisher interface {
	EnqueueEstadisticas(ctx context.Context, payload interface{}) error
	Queue() string
}

type EstadisticasService interface {
	CalcularMargen(ctx context.Context, est dto.EstadisticasDTO) *dto.MargenResponse
	PublicarSnapshot(ctx context.Context, est dto.EstadisticasDTO) (*dto.SnapshotResponse, error)
}

type estadisticasService struct {
	publisher SnapshotPublisher
	now       func() time.Time
}

func NewEstadisticasService(publisher SnapshotPublisher) EstadisticasService {
	return &estadisticasService{publisher: publisher, now: time.Now}
}

// ── CalcularMargen ────────────────────────────────────────────────────────────
// Never fails: missing data yields a zero margin.

func (s *estadisticasService) CalcularMargen(ctx context.Context, est dto.EstadisticasDTO) *dto.MargenResponse {
	margen := est.CalcularMargenBruto()

	log.Ctx(ctx).Debug().
		Str("margen_calculado", margen.StringFixed(2)).
		Bool("margen_registrado", est.MargenPorcentaje != nil).
		Msg("margen bruto calculado")

	return &dto.MargenResponse{
		MargenBrutoCalculado: margen.StringFixed(2),
		MargenPorcentaje:     est.MargenPorcentaje,
		TotalVentas:          est.TotalVentas,
		CostoVentas:          est.CostoVentas,
		Periodo:              est.Periodo,
	}
}

// ── PublicarSnapshot ──────────────────────────────────────────────────────────
// The record is cloned before it leaves the service so the caller can keep
// mutating its copy.

func (s *estadisticasService) PublicarSnapshot(ctx context.Context, est dto.EstadisticasDTO) (*dto.SnapshotResponse, error) {
	snapshot := dto.SnapshotEstadisticas{
		ID:                   uuid.NewString(),
		PublicadoAt:          s.now().UTC().Format(time.RFC3339),
		MargenBrutoCalculado: est.CalcularMargenBruto().StringFixed(2),
		Estadisticas:         est.Clone(),
	}

	if err := s.publisher.EnqueueEstadisticas(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("publicar snapshot %s: %w", snapshot.ID, err)
	}

	log.Info().
		Str("snapshot_id", snapshot.ID).
		Str("queue", s.publisher.Queue()).
		Msg("snapshot de estadisticas publicado")

	return &dto.SnapshotResponse{
		ID:          snapshot.ID,
		Cola:        s.publisher.Queue(),
		PublicadoAt: snapshot.PublicadoAt,
	}, nil
}
