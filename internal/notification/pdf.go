package notification

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/pricing"
)

const pdfDateFormat = "02.01.2006"

// BuildConfirmationPDF renders the booking confirmation attached to the
// customer and operator emails.
func BuildConfirmationPDF(booking *domain.Booking, pkg *domain.Package, brand string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("%s – Confirmación de Reserva", brand)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Paquete: "+pkg.Title), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Fecha del tour: "+booking.Date.Format(pdfDateFormat)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Pasajeros: Adultos %d / Niños %d", booking.People.Adults, booking.People.Children)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total estimado: %.2f %s", booking.TotalPrice, pkg.Currency)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr("Datos del cliente"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Nombre: "+booking.Customer.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Email: "+booking.Customer.Email), "", 1, "L", false, 0, "")
	if booking.Customer.Phone != "" {
		pdf.CellFormat(0, 7, tr("Teléfono: "+booking.Customer.Phone), "", 1, "L", false, 0, "")
	}
	if booking.Customer.Country != "" {
		pdf.CellFormat(0, 7, tr("País: "+booking.Customer.Country), "", 1, "L", false, 0, "")
	}

	if booking.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr("Notas"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, tr(booking.Notes), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, tr("Generado automáticamente por "+brand), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildBrochurePDF renders the public package brochure. Promo pricing is
// evaluated against now so the brochure always matches the catalog.
func BuildBrochurePDF(pkg *domain.Package, brand string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(pkg.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s, %s · %s · %d horas", pkg.City, pkg.Country, pkg.Category, pkg.DurationHours)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	if eff := pricing.EffectivePrice(pkg, now); eff != nil {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Oferta: %.2f %s (antes %.2f, -%d%%)",
			*eff, pkg.Currency, pkg.Price, pricing.DiscountPercent(pkg, now))), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Precio: %.2f %s", pkg.Price, pkg.Currency)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(pkg.Description), "", "L", false)

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range items {
			pdf.CellFormat(0, 6, tr("• "+item), "", 1, "L", false, 0, "")
		}
	}
	writeList("Lo más destacado", pkg.Highlights)
	writeList("Incluye", pkg.Includes)
	writeList("No incluye", pkg.Excludes)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, tr(brand), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render brochure pdf: %w", err)
	}
	return buf.Bytes(), nil
}
