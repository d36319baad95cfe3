package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/dto"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory SnapshotPublisher ──────────────────────────────────────────────

type fakePublisher struct {
	queue     string
	published []interface{}
	err       error
}

func (p *fakePublisher) EnqueueEstadisticas(_ context.Context, payload interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

func (p *fakePublisher) Queue() string { return p.queue }

var _ service.SnapshotPublisher = (*fakePublisher)(nil)

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCalcularMargen(t *testing.T) {
	svc := service.NewEstadisticasService(&fakePublisher{queue: "q"})

	est := dto.NewEstadisticasBuilder().
		Periodo("mensual").
		TotalVentas(decimal.NewFromInt(200)).
		CostoVentas(decimal.NewFromInt(150)).
		MargenPorcentaje(decimal.RequireFromString("30.5")).
		Build()

	resp := svc.CalcularMargen(context.Background(), est)
	require.NotNil(t, resp)
	assert.Equal(t, "25.00", resp.MargenBrutoCalculado)
	require.NotNil(t, resp.MargenPorcentaje)
	assert.Equal(t, "30.5", resp.MargenPorcentaje.String(), "stored margin is echoed, not overwritten")
	assert.Equal(t, "mensual", *resp.Periodo)
}

func TestCalcularMargen_SinDatos(t *testing.T) {
	svc := service.NewEstadisticasService(&fakePublisher{queue: "q"})

	resp := svc.CalcularMargen(context.Background(), dto.EstadisticasDTO{})
	assert.Equal(t, "0.00", resp.MargenBrutoCalculado)
	assert.Nil(t, resp.MargenPorcentaje)
	assert.Nil(t, resp.TotalVentas)
}

func TestPublicarSnapshot(t *testing.T) {
	pub := &fakePublisher{queue: "jobs:estadisticas"}
	svc := service.NewEstadisticasService(pub)

	est := dto.NewEstadisticasBuilder().
		TotalVentas(decimal.NewFromInt(300)).
		CostoVentas(decimal.NewFromInt(100)).
		Build()

	resp, err := svc.PublicarSnapshot(context.Background(), est)
	require.NoError(t, err)

	_, err = uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "jobs:estadisticas", resp.Cola)
	_, err = time.Parse(time.RFC3339, resp.PublicadoAt)
	assert.NoError(t, err)

	require.Len(t, pub.published, 1)
	snap, ok := pub.published[0].(dto.SnapshotEstadisticas)
	require.True(t, ok)
	assert.Equal(t, resp.ID, snap.ID)
	assert.Equal(t, "66.67", snap.MargenBrutoCalculado)
	assert.True(t, snap.Estadisticas.Equal(est))
	assert.NotSame(t, est.TotalVentas, snap.Estadisticas.TotalVentas, "published snapshot must not alias the caller's record")
	assert.Nil(t, snap.Estadisticas.MargenPorcentaje, "publishing does not fill the stored margin")
}

func TestPublicarSnapshot_ErrorDeTransporte(t *testing.T) {
	boom := errors.New("redis down")
	svc := service.NewEstadisticasService(&fakePublisher{queue: "q", err: boom})

	resp, err := svc.PublicarSnapshot(context.Background(), dto.EstadisticasDTO{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "publicar snapshot")
}
