package handlers

import (
	"ecycle/internal/repos"
	"ecycle/internal/services"
	"ecycle/internal/store"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	ThemeHandler     *ThemeHandler
	FavoritesHandler *FavoritesHandler
	SellHandler      *SellHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)

	var kv store.KV = repos.NewKVRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(kv)
	themeSvc := services.NewThemeService(kv)
	favSvc := services.NewFavoritesService(kv)
	valSvc := services.NewValuationService()
	sellSvc := services.NewSellService(valSvc, nil)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		ThemeHandler:     &ThemeHandler{Theme: themeSvc},
		FavoritesHandler: &FavoritesHandler{Favs: favSvc},
		SellHandler:      &SellHandler{Sell: sellSvc},
	}
}
