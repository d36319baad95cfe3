package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// EstadisticasDTO is a snapshot of store performance for a date range.
// Every field is optional: nil means "not reported", which is not the same as zero.
// The record is populated by the aggregation side and read by reporting; it
// carries no behaviour beyond CalcularMargenBruto.
type EstadisticasDTO struct {
	// ─── Periodo ────────────────────────────────────────────────────────────
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
	Periodo     *string    `json:"periodo"` // diario | semanal | mensual | anual

	// ─── Ventas ─────────────────────────────────────────────────────────────
	TotalVentas         *decimal.Decimal `json:"total_ventas"`
	CantidadVentas      *int             `json:"cantidad_ventas"`
	VentasEfectivo      *decimal.Decimal `json:"ventas_efectivo"`
	VentasTarjeta       *decimal.Decimal `json:"ventas_tarjeta"`
	VentasTransferencia *decimal.Decimal `json:"ventas_transferencia"`
	VentasCredito       *decimal.Decimal `json:"ventas_credito"`

	// ─── Productos ──────────────────────────────────────────────────────────
	ProductosVendidos   *int             `json:"productos_vendidos"`
	ProductosDiferentes *int             `json:"productos_diferentes"`
	CostoVentas         *decimal.Decimal `json:"costo_ventas"`
	// GananciaBruta is TotalVentas - CostoVentas as reported upstream
	GananciaBruta *decimal.Decimal `json:"ganancia_bruta"`

	// ─── Clientes ───────────────────────────────────────────────────────────
	ClientesAtendidos *int             `json:"clientes_atendidos"`
	ClientesNuevos    *int             `json:"clientes_nuevos"`
	TicketPromedio    *decimal.Decimal `json:"ticket_promedio"`

	// ─── Inventario ─────────────────────────────────────────────────────────
	ProductosStockBajo *int             `json:"productos_stock_bajo"`
	ProductosAgotados  *int             `json:"productos_agotados"`
	ValorInventario    *decimal.Decimal `json:"valor_inventario"`

	// ─── Métricas derivadas ─────────────────────────────────────────────────
	// MargenPorcentaje is set independently by whoever populates the record.
	// CalcularMargenBruto never reads or writes it.
	MargenPorcentaje    *decimal.Decimal `json:"margen_porcentaje"`
	CrecimientoVentas   *decimal.Decimal `json:"crecimiento_ventas"`
	CrecimientoClientes *decimal.Decimal `json:"crecimiento_clientes"`

	// ─── Comparativo ────────────────────────────────────────────────────────
	VentasPeriodoAnterior *decimal.Decimal `json:"ventas_periodo_anterior"`
	CrecimientoPorcentaje *decimal.Decimal `json:"crecimiento_porcentaje"`
}

// CalcularMargenBruto returns (TotalVentas - CostoVentas) / TotalVentas * 100
// rounded half-up to 2 decimal places.
// Returns 0.00 when TotalVentas is nil or not positive, or when CostoVentas is nil.
// Every result carries exactly 2 fractional digits.
func (e EstadisticasDTO) CalcularMargenBruto() decimal.Decimal {
	if e.TotalVentas == nil || !e.TotalVentas.IsPositive() || e.CostoVentas == nil {
		return decimal.New(0, -2)
	}
	ganancia := e.TotalVentas.Sub(*e.CostoVentas)
	// Round is half away from zero, which is half-up for both signs.
	return ganancia.Div(*e.TotalVentas).Mul(cien).Round(2)
}

// Clone returns a copy whose optional fields point to fresh values, so either
// side can be reassigned without affecting the other.
func (e EstadisticasDTO) Clone() EstadisticasDTO {
	return EstadisticasDTO{
		FechaInicio: clonePtr(e.FechaInicio),
		FechaFin:    clonePtr(e.FechaFin),
		Periodo:     clonePtr(e.Periodo),

		TotalVentas:         clonePtr(e.TotalVentas),
		CantidadVentas:      clonePtr(e.CantidadVentas),
		VentasEfectivo:      clonePtr(e.VentasEfectivo),
		VentasTarjeta:       clonePtr(e.VentasTarjeta),
		VentasTransferencia: clonePtr(e.VentasTransferencia),
		VentasCredito:       clonePtr(e.VentasCredito),

		ProductosVendidos:   clonePtr(e.ProductosVendidos),
		ProductosDiferentes: clonePtr(e.ProductosDiferentes),
		CostoVentas:         clonePtr(e.CostoVentas),
		GananciaBruta:       clonePtr(e.GananciaBruta),

		ClientesAtendidos: clonePtr(e.ClientesAtendidos),
		ClientesNuevos:    clonePtr(e.ClientesNuevos),
		TicketPromedio:    clonePtr(e.TicketPromedio),

		ProductosStockBajo: clonePtr(e.ProductosStockBajo),
		ProductosAgotados:  clonePtr(e.ProductosAgotados),
		ValorInventario:    clonePtr(e.ValorInventario),

		MargenPorcentaje:    clonePtr(e.MargenPorcentaje),
		CrecimientoVentas:   clonePtr(e.CrecimientoVentas),
		CrecimientoClientes: clonePtr(e.CrecimientoClientes),

		VentasPeriodoAnterior: clonePtr(e.VentasPeriodoAnterior),
		CrecimientoPorcentaje: clonePtr(e.CrecimientoPorcentaje),
	}
}

// Equal compares field values rather than pointers. Decimals are compared
// numerically, so 25 and 25.00 are equal; dates with time.Time.Equal.
func (e EstadisticasDTO) Equal(o EstadisticasDTO) bool {
	return eqTime(e.FechaInicio, o.FechaInicio) &&
		eqTime(e.FechaFin, o.FechaFin) &&
		eqComparable(e.Periodo, o.Periodo) &&
		eqDecimal(e.TotalVentas, o.TotalVentas) &&
		eqComparable(e.CantidadVentas, o.CantidadVentas) &&
		eqDecimal(e.VentasEfectivo, o.VentasEfectivo) &&
		eqDecimal(e.VentasTarjeta, o.VentasTarjeta) &&
		eqDecimal(e.VentasTransferencia, o.VentasTransferencia) &&
		eqDecimal(e.VentasCredito, o.VentasCredito) &&
		eqComparable(e.ProductosVendidos, o.ProductosVendidos) &&
		eqComparable(e.ProductosDiferentes, o.ProductosDiferentes) &&
		eqDecimal(e.CostoVentas, o.CostoVentas) &&
		eqDecimal(e.GananciaBruta, o.GananciaBruta) &&
		eqComparable(e.ClientesAtendidos, o.ClientesAtendidos) &&
		eqComparable(e.ClientesNuevos, o.ClientesNuevos) &&
		eqDecimal(e.TicketPromedio, o.TicketPromedio) &&
		eqComparable(e.ProductosStockBajo, o.ProductosStockBajo) &&
		eqComparable(e.ProductosAgotados, o.ProductosAgotados) &&
		eqDecimal(e.ValorInventario, o.ValorInventario) &&
		eqDecimal(e.MargenPorcentaje, o.MargenPorcentaje) &&
		eqDecimal(e.CrecimientoVentas, o.CrecimientoVentas) &&
		eqDecimal(e.CrecimientoClientes, o.CrecimientoClientes) &&
		eqDecimal(e.VentasPeriodoAnterior, o.VentasPeriodoAnterior) &&
		eqDecimal(e.CrecimientoPorcentaje, o.CrecimientoPorcentaje)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func eqComparable[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func eqTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
