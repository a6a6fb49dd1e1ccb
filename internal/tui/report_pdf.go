package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mireldan/crystalquest/internal/engine"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/util"
)

// WriteStatementPDF writes a crystal statement for the profile into the
// working directory and returns the absolute path of the file.
func WriteStatementPDF(profile models.Profile, wallet *engine.Wallet, history []models.Activity) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Crystal Statement: %s", profile.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Member since %s", profile.JoinDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Current Balance: %s crystals", util.FormatCrystals(wallet.Balance())))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Crystal History")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(history) == 0 {
		pdf.Cell(0, 8, "  - No activity recorded.")
		pdf.Ln(8)
	}
	for _, entry := range history {
		sign := "+"
		if entry.Crystals < 0 {
			sign = ""
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s  %s%s crystals  (%s)",
			entry.Action, sign, util.FormatCrystals(entry.Crystals), entry.When))
		pdf.Ln(6)
	}

	redemptions := wallet.History()
	if len(redemptions) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Redemptions This Session")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, r := range redemptions {
			pdf.Cell(0, 8, fmt.Sprintf("  %s: %s  -%s crystals  [%s]",
				r.Kind, r.Item, util.FormatCrystals(r.Cost), r.Status))
			pdf.Ln(6)
		}
	}

	filename := fmt.Sprintf("statement_%s.pdf", time.Now().Format("2006-01-02"))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
