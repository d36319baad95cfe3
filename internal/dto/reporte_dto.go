package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MargenResponse carries both margin values side by side; the caller decides
// which one to display.
type MargenResponse struct {
	// MargenBrutoCalculado is CalcularMargenBruto formatted with exactly 2 decimals.
	MargenBrutoCalculado string `json:"margen_bruto_calculado"`
	// MargenPorcentaje echoes the stored field untouched (null when absent).
	MargenPorcentaje *decimal.Decimal `json:"margen_porcentaje"`
	TotalVentas      *decimal.Decimal `json:"total_ventas"`
	CostoVentas      *decimal.Decimal `json:"costo_ventas"`
	Periodo          *string          `json:"periodo"`
}

// SnapshotResponse is returned after a snapshot is handed to the reporting queue.
type SnapshotResponse struct {
	ID          string `json:"id"`
	Cola        string `json:"cola"`
	PublicadoAt string `json:"publicado_at"`
}

// SnapshotEstadisticas is the payload enqueued for the reporting side.
type SnapshotEstadisticas struct {
	ID                   string          `json:"id"`
	PublicadoAt          string          `json:"publicado_at"`
	MargenBrutoCalculado string          `json:"margen_bruto_calculado"`
	Estadisticas         EstadisticasDTO `json:"estadisticas"`
}
