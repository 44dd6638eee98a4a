package seed

import (
	"context"
	"strings"

	"newtab/internal/logger"
	"newtab/internal/store"
)

// Importer loads the seed file into the store through its regular
// operations, so reserved groups and persistence behave exactly as for
// user edits.
type Importer struct {
	loader *Loader
	mapper *Mapper
	store  *store.Store
	log    logger.Logger
}

// NewImporter creates an importer for the given seed file.
func NewImporter(seedFile string, st *store.Store, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(seedFile),
		mapper: NewMapper(),
		store:  st,
		log:    log,
	}
}

// Run imports all seed groups and sites. Group names matching an
// existing group's name or id (so "default" and "all" hit the reserved
// groups) reuse it instead of creating a duplicate.
func (i *Importer) Run(ctx context.Context) error {
	cfg, err := i.loader.Load()
	if err != nil {
		return err
	}

	groups, err := i.mapper.Map(cfg)
	if err != nil {
		return err
	}

	sites := 0
	for _, g := range groups {
		groupID := i.resolveGroup(ctx, g.Name)
		for _, s := range g.Sites {
			i.store.AddSite(ctx, store.SiteInput{
				Name:    s.Name,
				URL:     s.URL,
				Icon:    s.Icon,
				GroupID: groupID,
			})
			sites++
		}
	}

	i.log.Info("seed import complete",
		logger.Int("groups", len(groups)),
		logger.Int("sites", sites))
	return nil
}

func (i *Importer) resolveGroup(ctx context.Context, name string) string {
	for _, g := range i.store.Groups() {
		if strings.EqualFold(g.Name, name) || strings.EqualFold(g.ID, name) {
			return g.ID
		}
	}
	return i.store.AddGroup(ctx, name).ID
}
