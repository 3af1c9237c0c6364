package out

import (
	"context"

	catalogdto "eduterm/internal/modules/catalog/dto"
	catalogin "eduterm/internal/modules/catalog/port/in"
	"eduterm/internal/modules/search/domain"
	searchout "eduterm/internal/modules/search/port/out"
)

// CatalogGateway exposes one resource collection to global search.
type CatalogGateway struct {
	catalog catalogin.Usecase
	kind    domain.Kind
}

func NewCatalogGateway(catalog catalogin.Usecase, kind domain.Kind) searchout.Gateway {
	return &CatalogGateway{catalog: catalog, kind: kind}
}

func (g *CatalogGateway) Items(ctx context.Context) ([]domain.Item, error) {
	resources, err := g.catalog.List(ctx, catalogdto.ListInput{Type: string(g.kind)})
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0, len(resources))
	for _, r := range resources {
		items = append(items, domain.Item{
			ID:          r.ID,
			Kind:        g.kind,
			Title:       r.Title,
			Description: r.Description,
			Branch:      r.Branch,
			Tags:        r.Tags,
			Year:        r.Year,
		})
	}
	return items, nil
}
