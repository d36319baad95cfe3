package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ── CalcularMargenBruto ──────────────────────────────────────────────────────

func TestCalcularMargenBruto_DatosFaltantesDevuelveCero(t *testing.T) {
	cases := []struct {
		name  string
		total *decimal.Decimal
		costo *decimal.Decimal
	}{
		{"sin ventas ni costo", nil, nil},
		{"sin ventas", nil, dec("150.00")},
		{"ventas en cero", dec("0"), dec("150.00")},
		{"ventas negativas", dec("-50.00"), dec("10.00")},
		{"sin costo", dec("200.00"), nil},
		{"ventas negativas sin costo", dec("-1"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est := dto.EstadisticasDTO{TotalVentas: tc.total, CostoVentas: tc.costo}
			got := est.CalcularMargenBruto()
			assert.True(t, got.IsZero())
			assert.Equal(t, int32(-2), got.Exponent())
			assert.Equal(t, "0.00", got.StringFixed(2))
		})
	}
}

func TestCalcularMargenBruto_RegistroVacio(t *testing.T) {
	var est dto.EstadisticasDTO
	got := est.CalcularMargenBruto()
	assert.True(t, got.IsZero())
	assert.Equal(t, int32(-2), got.Exponent(), "fallback has the same scale as a computed margin")
	assert.True(t, got.Equal(dto.EstadisticasDTO{TotalVentas: dec("100"), CostoVentas: dec("100")}.CalcularMargenBruto()))
}

func TestCalcularMargenBruto_Valores(t *testing.T) {
	cases := []struct {
		total, costo, want string
	}{
		{"200.00", "150.00", "25.00"},
		{"300.00", "100.00", "66.67"},
		{"100.00", "100.00", "0.00"},
		{"3", "2", "33.33"},
		{"1234.5678", "1000.1234", "18.99"},
		// cost above sales gives a negative margin
		{"100.00", "150.00", "-50.00"},
	}
	for _, tc := range cases {
		t.Run(tc.total+"/"+tc.costo, func(t *testing.T) {
			est := dto.EstadisticasDTO{TotalVentas: dec(tc.total), CostoVentas: dec(tc.costo)}
			got := est.CalcularMargenBruto()
			assert.Equal(t, tc.want, got.StringFixed(2))
			assert.Equal(t, int32(-2), got.Exponent(), "result must carry exactly 2 fractional digits")
		})
	}
}

func TestCalcularMargenBruto_RedondeoHalfUp(t *testing.T) {
	// 0.01 / 200 * 100 = 0.005 exactly
	est := dto.EstadisticasDTO{TotalVentas: dec("200.00"), CostoVentas: dec("199.99")}
	assert.Equal(t, "0.01", est.CalcularMargenBruto().StringFixed(2))

	// -0.005 rounds away from zero
	est = dto.EstadisticasDTO{TotalVentas: dec("200.00"), CostoVentas: dec("200.01")}
	assert.Equal(t, "-0.01", est.CalcularMargenBruto().StringFixed(2))
}

func TestCalcularMargenBruto_Idempotente(t *testing.T) {
	est := dto.EstadisticasDTO{TotalVentas: dec("300.00"), CostoVentas: dec("100.00")}
	first := est.CalcularMargenBruto()
	second := est.CalcularMargenBruto()
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.String(), second.String())
}

func TestCalcularMargenBruto_NoModificaMargenPorcentaje(t *testing.T) {
	stored := dec("99.99")
	est := dto.EstadisticasDTO{
		TotalVentas:      dec("200.00"),
		CostoVentas:      dec("150.00"),
		MargenPorcentaje: stored,
	}
	_ = est.CalcularMargenBruto()

	require.NotNil(t, est.MargenPorcentaje)
	assert.Same(t, stored, est.MargenPorcentaje)
	assert.Equal(t, "99.99", est.MargenPorcentaje.String())
	assert.Equal(t, "200", est.TotalVentas.String())
	assert.Equal(t, "150", est.CostoVentas.String())

	// Absent stays absent
	est.MargenPorcentaje = nil
	_ = est.CalcularMargenBruto()
	assert.Nil(t, est.MargenPorcentaje)
}

// ── Clone / Equal ────────────────────────────────────────────────────────────

func TestClone_NoComparteValores(t *testing.T) {
	inicio := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	orig := dto.NewEstadisticasBuilder().
		FechaInicio(inicio).
		Periodo("mensual").
		TotalVentas(decimal.NewFromInt(200)).
		CantidadVentas(12).
		Build()

	cp := orig.Clone()
	require.True(t, orig.Equal(cp))

	*cp.TotalVentas = decimal.NewFromInt(1)
	*cp.CantidadVentas = 99
	*cp.Periodo = "anual"
	*cp.FechaInicio = inicio.AddDate(1, 0, 0)

	assert.Equal(t, "200", orig.TotalVentas.String())
	assert.Equal(t, 12, *orig.CantidadVentas)
	assert.Equal(t, "mensual", *orig.Periodo)
	assert.True(t, orig.FechaInicio.Equal(inicio))
	assert.False(t, orig.Equal(cp))
}

func TestEqual(t *testing.T) {
	a := dto.EstadisticasDTO{TotalVentas: dec("25"), ClientesNuevos: nil}
	b := dto.EstadisticasDTO{TotalVentas: dec("25.00")}
	assert.True(t, a.Equal(b), "decimals compare by value, not scale")

	zero := 0
	c := dto.EstadisticasDTO{TotalVentas: dec("25"), ClientesNuevos: &zero}
	assert.False(t, a.Equal(c), "absent must differ from zero")
	assert.False(t, c.Equal(a))

	d := dto.EstadisticasDTO{TotalVentas: nil}
	assert.False(t, a.Equal(d))
	assert.True(t, dto.EstadisticasDTO{}.Equal(dto.EstadisticasDTO{}))
}

// ── JSON ─────────────────────────────────────────────────────────────────────

func TestJSON_AusenteSerializaComoNull(t *testing.T) {
	est := dto.EstadisticasDTO{TotalVentas: dec("200.1234")}
	raw, err := json.Marshal(est)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "200.1234", m["total_ventas"])
	v, present := m["costo_ventas"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestJSON_PreservaAusenciaYPrecision(t *testing.T) {
	body := `{
		"fecha_inicio": "2026-09-01T00:00:00Z",
		"periodo": "mensual",
		"total_ventas": "1234.5678",
		"costo_ventas": 1000.1234,
		"clientes_nuevos": 0
	}`
	var est dto.EstadisticasDTO
	require.NoError(t, json.Unmarshal([]byte(body), &est))

	require.NotNil(t, est.TotalVentas)
	assert.Equal(t, "1234.5678", est.TotalVentas.String())
	require.NotNil(t, est.CostoVentas)
	assert.Equal(t, "1000.1234", est.CostoVentas.String())
	require.NotNil(t, est.ClientesNuevos)
	assert.Equal(t, 0, *est.ClientesNuevos)
	assert.Nil(t, est.ClientesAtendidos)
	assert.Nil(t, est.MargenPorcentaje)
	assert.Equal(t, "18.99", est.CalcularMargenBruto().StringFixed(2))
}
