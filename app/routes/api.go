package routes

import (
	"github.com/shashiranjanraj/warehouse/app/controllers"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/router"
)

// RegisterAPI mounts the inventory endpoints. Entities are addressed by
// query string (?id=, ?product_id=&supplier_id=) rather than path segments.
func RegisterAPI(r *router.Router, svc *services.WarehouseService) {
	products := controllers.NewProductController(svc)
	suppliers := controllers.NewSupplierController(svc)
	storages := controllers.NewStorageController(svc)
	links := controllers.NewRelationshipController(svc)

	product := r.Group("/product")
	product.Get("/", "product.index", products.Index)
	product.Post("/", "product.store", products.Store)
	product.Put("/", "product.update", products.Update)
	product.Delete("/", "product.destroy", products.Destroy)

	supplier := r.Group("/supplier")
	supplier.Get("/", "supplier.index", suppliers.Index)
	supplier.Post("/", "supplier.store", suppliers.Store)
	supplier.Put("/", "supplier.update", suppliers.Update)
	supplier.Delete("/", "supplier.destroy", suppliers.Destroy)
	supplier.Get("/with_products", "supplier.with_products", suppliers.WithProducts)
	supplier.Get("/supplied_products", "supplier.supplied_products", suppliers.SuppliedProducts)

	storage := r.Group("/storage")
	storage.Get("/", "storage.index", storages.Index)
	storage.Post("/", "storage.store", storages.Store)
	storage.Put("/", "storage.update", storages.Update)
	storage.Delete("/", "storage.destroy", storages.Destroy)
	storage.Get("/leftovers", "storage.leftovers", storages.Leftovers)

	supply := r.Group("/supply")
	supply.Post("/", "supply.store", links.StoreSupply)
	supply.Delete("/", "supply.destroy", links.DestroySupply)

	purchase := r.Group("/purchase")
	purchase.Post("/", "purchase.store", links.StorePurchase)
	purchase.Put("/", "purchase.update", links.UpdatePurchase)
	purchase.Delete("/", "purchase.destroy", links.DestroyPurchase)
}
