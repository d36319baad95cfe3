package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadisticasBuilder assembles an EstadisticasDTO field by field.
// Fields that are never set stay nil in the built record.
//
//	est := dto.NewEstadisticasBuilder().
//		Periodo("mensual").
//		TotalVentas(decimal.NewFromInt(200)).
//		CostoVentas(decimal.NewFromInt(150)).
//		Build()
type EstadisticasBuilder struct {
	e EstadisticasDTO
}

func NewEstadisticasBuilder() *EstadisticasBuilder { return &EstadisticasBuilder{} }

// Build returns a copy, so the builder can keep being used afterwards.
func (b *EstadisticasBuilder) Build() EstadisticasDTO { return b.e.Clone() }

// ─── Periodo ─────────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) FechaInicio(v time.Time) *EstadisticasBuilder {
	b.e.FechaInicio = &v
	return b
}

func (b *EstadisticasBuilder) FechaFin(v time.Time) *EstadisticasBuilder {
	b.e.FechaFin = &v
	return b
}

func (b *EstadisticasBuilder) Periodo(v string) *EstadisticasBuilder {
	b.e.Periodo = &v
	return b
}

// ─── Ventas ──────────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) TotalVentas(v decimal.Decimal) *EstadisticasBuilder {
	b.e.TotalVentas = &v
	return b
}

func (b *EstadisticasBuilder) CantidadVentas(v int) *EstadisticasBuilder {
	b.e.CantidadVentas = &v
	return b
}

func (b *EstadisticasBuilder) VentasEfectivo(v decimal.Decimal) *EstadisticasBuilder {
	b.e.VentasEfectivo = &v
	return b
}

func (b *EstadisticasBuilder) VentasTarjeta(v decimal.Decimal) *EstadisticasBuilder {
	b.e.VentasTarjeta = &v
	return b
}

func (b *EstadisticasBuilder) VentasTransferencia(v decimal.Decimal) *EstadisticasBuilder {
	b.e.VentasTransferencia = &v
	return b
}

func (b *EstadisticasBuilder) VentasCredito(v decimal.Decimal) *EstadisticasBuilder {
	b.e.VentasCredito = &v
	return b
}

// ─── Productos ───────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) ProductosVendidos(v int) *EstadisticasBuilder {
	b.e.ProductosVendidos = &v
	return b
}

func (b *EstadisticasBuilder) ProductosDiferentes(v int) *EstadisticasBuilder {
	b.e.ProductosDiferentes = &v
	return b
}

func (b *EstadisticasBuilder) CostoVentas(v decimal.Decimal) *EstadisticasBuilder {
	b.e.CostoVentas = &v
	return b
}

func (b *EstadisticasBuilder) GananciaBruta(v decimal.Decimal) *EstadisticasBuilder {
	b.e.GananciaBruta = &v
	return b
}

// ─── Clientes ────────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) ClientesAtendidos(v int) *EstadisticasBuilder {
	b.e.ClientesAtendidos = &v
	return b
}

func (b *EstadisticasBuilder) ClientesNuevos(v int) *EstadisticasBuilder {
	b.e.ClientesNuevos = &v
	return b
}

func (b *EstadisticasBuilder) TicketPromedio(v decimal.Decimal) *EstadisticasBuilder {
	b.e.TicketPromedio = &v
	return b
}

// ─── Inventario ──────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) ProductosStockBajo(v int) *EstadisticasBuilder {
	b.e.ProductosStockBajo = &v
	return b
}

func (b *EstadisticasBuilder) ProductosAgotados(v int) *EstadisticasBuilder {
	b.e.ProductosAgotados = &v
	return b
}

func (b *EstadisticasBuilder) ValorInventario(v decimal.Decimal) *EstadisticasBuilder {
	b.e.ValorInventario = &v
	return b
}

// ─── Métricas derivadas ──────────────────────────────────────────────────────

func (b *EstadisticasBuilder) MargenPorcentaje(v decimal.Decimal) *EstadisticasBuilder {
	b.e.MargenPorcentaje = &v
	return b
}

func (b *EstadisticasBuilder) CrecimientoVentas(v decimal.Decimal) *EstadisticasBuilder {
	b.e.CrecimientoVentas = &v
	return b
}

func (b *EstadisticasBuilder) CrecimientoClientes(v decimal.Decimal) *EstadisticasBuilder {
	b.e.CrecimientoClientes = &v
	return b
}

// ─── Comparativo ─────────────────────────────────────────────────────────────

func (b *EstadisticasBuilder) VentasPeriodoAnterior(v decimal.Decimal) *EstadisticasBuilder {
	b.e.VentasPeriodoAnterior = &v
	return b
}

func (b *EstadisticasBuilder) CrecimientoPorcentaje(v decimal.Decimal) *EstadisticasBuilder {
	b.e.CrecimientoPorcentaje = &v
	return b
}
