// Package export writes the catalog to spreadsheet form for editors who
// review the data outside the wiki.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gamewiki/internal/wiki"
)

var entityHeaders = []string{"ID", "Name", "Image", "Gear", "Tags", "Unlocked by"}

// WriteWorkbook saves one sheet per collection plus a Tags sheet to path.
func WriteWorkbook(c *wiki.Catalog, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		coll wiki.Collection
	}{
		{"Objects", c.Objects},
		{"Items", c.Items},
		{"NPCs", c.NPCs},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		if err := writeEntities(f, sh.name, sh.coll, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", sh.name, err)
		}
	}

	if _, err := f.NewSheet("Tags"); err != nil {
		return err
	}
	if err := f.SetCellValue("Tags", "A1", "Tag"); err != nil {
		return err
	}
	if err := f.SetCellStyle("Tags", "A1", "A1", headerStyle); err != nil {
		return err
	}
	for i, tag := range c.Tags {
		if err := f.SetCellValue("Tags", fmt.Sprintf("A%d", i+2), tag); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeEntities(f *excelize.File, sheet string, coll wiki.Collection, headerStyle int) error {
	for i, h := range entityHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(entityHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, e := range coll {
		row := i + 2
		values := []any{e.ID, e.Name, e.Image, gearLabel(e), wiki.JoinWithCommaSpace(e.Tags), unlockSummary(e.Unlocks)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func gearLabel(e wiki.Entity) string {
	if wiki.IsGearItem(e) {
		return "yes"
	}
	return "no"
}

func unlockSummary(locks []wiki.Lock) string {
	parts := make([]string, 0, len(locks))
	for _, l := range locks {
		parts = append(parts, l.Type+":"+l.SourceID)
	}
	return wiki.JoinWithCommaSpace(parts)
}
