package report

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/cover_client/internal/queue"
)

const (
	titleHeight = 12
	rowHeight   = 7
)

var (
	headerProps = props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5}
	cellProps   = props.Text{Size: 8, Top: 1.5}
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateReport renders the counts and one table row per entry into a PDF
// at outputPath.
func (g *Generator) GenerateReport(outputPath, title string, view queue.View) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRow(titleHeight, text.NewCol(12, title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(rowHeight, text.NewCol(12, summary(view.Counts), props.Text{Size: 9, Align: align.Center}))

	m.AddRows(tableRow(headerProps, "File", "Size", "Status", "Cover", "Pages", "Error"))
	for _, e := range view.Entries {
		pages := ""
		if e.Pages > 0 {
			pages = strconv.Itoa(e.Pages)
		}

		m.AddRows(tableRow(cellProps, e.Name, e.Size, string(e.Status), e.OutputName, pages, e.Error))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func tableRow(p props.Text, name, size, status, cover, pages, errMsg string) core.Row {
	return row.New(rowHeight).Add(
		text.NewCol(3, name, p),
		text.NewCol(1, size, p),
		text.NewCol(2, status, p),
		text.NewCol(3, cover, p),
		text.NewCol(1, pages, p),
		text.NewCol(2, errMsg, p),
	)
}

func summary(c queue.Counts) string {
	return fmt.Sprintf("total %d, succeeded %d, failed %d, pending %d, uploading %d",
		c.Total, c.Succeeded, c.Failed, c.Pending, c.Uploading)
}
