// Package pdf implementa la generación del ticket de reserva imprimible que el
// cliente presenta en tienda para recoger su pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  TICKET DE RESERVA + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CÓDIGO DE CONFIRMACIÓN (grande) + QR                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: Descripción | SKU | Cant | P.Unit | Total         │
//	│  CLIENTE: Nombre + contacto (si la reserva no es anónima)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Estado + fecha límite de recogida                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoTicketGenerator implementa reservation.TicketGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el ticket de la reserva y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(_ context.Context, r *entity.Reservation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de Reserva "+r.ConfirmationCode, true).
		WithAuthor(r.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(codeRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(productHeaderRow())
	m.AddRows(productRow(r))
	if r.CustomerName != "" || r.CustomerEmail != "" {
		m.AddRows(customerRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y título + fecha de la reserva (der).
func headerRow(r *entity.Reservation) core.Row {
	fecha := r.ReservationDate.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reserva de producto en tienda", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// codeRow: código de confirmación en grande + QR para escanear en caja.
func codeRow(r *entity.Reservation) core.Row {
	return row.New(40).Add(
		col.New(8).Add(
			text.New("CÓDIGO DE CONFIRMACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 6,
			}),
			text.New(r.ConfirmationCode, props.Text{
				Style: fontstyle.Bold, Size: 28, Color: colorPrimary, Top: 13,
			}),
			text.New("Presenta este código al recoger tu reserva.", props.Text{
				Size: 8, Top: 30, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(r.ConfirmationCode, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// productHeaderRow: cabecera de la línea de producto.
func productHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("P.Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// productRow: la línea reservada con su total.
func productRow(r *entity.Reservation) core.Row {
	total := r.UnitPrice * float64(r.Quantity)
	return row.New(8).Add(
		col.New(5).Add(text.New(r.ProductName, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(r.ProductSKU, props.Text{
			Size: 8, Align: align.Left, Top: 1, Color: colorGray,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), props.Text{
			Size: 9, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("$%.2f", r.UnitPrice), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("$%.2f", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// customerRow: datos del cliente cuando la reserva no es anónima.
func customerRow(r *entity.Reservation) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(r.CustomerName, "—"),
				nonEmpty(r.CustomerEmail, "—"),
				nonEmpty(r.CustomerPhone, "—"),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// footerRows: estado actual y fecha límite de recogida.
func footerRows(r *entity.Reservation) []core.Row {
	limite := r.ExpiryDate.Format("02/01/2006 15:04")
	return []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("Estado: "+r.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			})),
			col.New(6).Add(text.New("Recoger antes de: "+limite, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2,
			})),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"La reserva expira automáticamente en la fecha límite y el producto "+
					"vuelve a estar disponible para otros clientes.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
