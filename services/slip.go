// services/slip.go
package services

import (
	"fmt"
	"strings"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"
)

// BuildSalarySlip renders a printable salary slip for one barber and one
// window. Every figure is taken verbatim from the summary; the renderer
// performs no recomputation of its own.
func BuildSalarySlip(barberName string, window utils.Window, summary BarberSummary,
	items []models.TransactionItem, withdrawals []models.Withdrawal, generatedAt time.Time) string {

	var b strings.Builder
	line := strings.Repeat("=", 62)
	thin := strings.Repeat("-", 62)

	b.WriteString(line + "\n")
	b.WriteString("SLIP GAJI BARBER\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Barber    : %s\n", barberName)
	fmt.Fprintf(&b, "Periode   : %s s/d %s\n",
		window.From.Format("02 Jan 2006"), window.To.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Dicetak   : %s\n", generatedAt.Format("02 Jan 2006 15:04"))
	b.WriteString(thin + "\n")

	b.WriteString("PENDAPATAN\n")
	fmt.Fprintf(&b, "  Layanan          : %s\n", utils.FormatRupiah(summary.ServiceRevenue))
	fmt.Fprintf(&b, "  Produk           : %s\n", utils.FormatRupiah(summary.ProductRevenue))
	fmt.Fprintf(&b, "  Total            : %s\n", utils.FormatRupiah(summary.ServiceRevenue+summary.ProductRevenue))
	b.WriteString(thin + "\n")

	b.WriteString("KOMISI\n")
	fmt.Fprintf(&b, "  Komisi Layanan   : %s\n", utils.FormatRupiah(summary.ServiceCommission))
	fmt.Fprintf(&b, "  Komisi Produk    : %s\n", utils.FormatRupiah(summary.ProductCommission))
	fmt.Fprintf(&b, "  Total Komisi     : %s\n", utils.FormatRupiah(summary.TotalCommission))
	fmt.Fprintf(&b, "  Sudah Ditarik    : %s\n", utils.FormatRupiah(summary.TotalWithdrawn))
	fmt.Fprintf(&b, "  Sisa Saldo       : %s\n", utils.FormatRupiah(summary.Remaining))
	b.WriteString(thin + "\n")

	b.WriteString("RINCIAN TRANSAKSI\n")
	if len(items) == 0 {
		b.WriteString("  (tidak ada transaksi pada periode ini)\n")
	} else {
		fmt.Fprintf(&b, "  %-12s %-20s %3s %14s %10s\n", "Tanggal", "Item", "Qty", "Subtotal", "Komisi")
		for _, item := range items {
			fmt.Fprintf(&b, "  %-12s %-20s %3d %14s %10s\n",
				item.CreatedAt.Format("02-01-2006"),
				truncate(item.ItemName, 20),
				item.Quantity,
				utils.FormatRupiah(item.Subtotal),
				utils.FormatRupiah(item.CommissionAmount))
		}
	}
	b.WriteString(thin + "\n")

	b.WriteString("RINCIAN PENARIKAN\n")
	if len(withdrawals) == 0 {
		b.WriteString("  (tidak ada penarikan pada periode ini)\n")
	} else {
		fmt.Fprintf(&b, "  %-12s %-10s %14s  %s\n", "Tanggal", "Metode", "Jumlah", "Catatan")
		for _, w := range withdrawals {
			fmt.Fprintf(&b, "  %-12s %-10s %14s  %s\n",
				w.CreatedAt.Format("02-01-2006"),
				w.PaymentMethod,
				utils.FormatRupiah(w.Amount),
				w.Notes)
		}
	}
	b.WriteString(line + "\n")

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
