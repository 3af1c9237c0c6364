package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"eduterm/internal/modules/catalog/domain"
	catalogout "eduterm/internal/modules/catalog/port/out"
)

type LocalPDFPreviewer struct{}

func NewLocalPDFPreviewer() catalogout.Previewer {
	return &LocalPDFPreviewer{}
}

func (p *LocalPDFPreviewer) ReadPage(_ context.Context, path string, page int) (domain.PreviewPage, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.PreviewPage{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.PreviewPage{Number: 1, Total: 0}, nil
	}
	if page > total {
		page = total
	}
	pg := doc.Page(page)
	if pg.V.IsNull() {
		return domain.PreviewPage{}, fmt.Errorf("pdf page %d is null", page)
	}
	content := pg.Content()
	parts := make([]string, 0, len(content.Text))
	for _, text := range content.Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		parts = append(parts, text.S)
	}
	return domain.PreviewPage{Number: page, Total: total, Text: strings.Join(parts, " ")}, nil
}
