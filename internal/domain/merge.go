package domain

// Explicit field merges used by the update operations. Each one whitelists
// exactly the mutable field set so identity and audit fields on the target
// are never overwritten.

// MergeProduct copies the mutable product fields from src onto dst.
func MergeProduct(src, dst *Product) {
	dst.Name = src.Name
	dst.Description = src.Description
	dst.UnitOfMeasureID = src.UnitOfMeasureID
	dst.Quantity = src.Quantity
	dst.Tags = src.Tags
	dst.Variant = src.Variant
}

// MergeShop copies the mutable shop fields from src onto dst.
func MergeShop(src, dst *Shop) {
	dst.Name = src.Name
	dst.LocationID = src.LocationID
}

// MergePrice copies the mutable price fields from src onto dst. Kind is
// not part of the set: a price never changes variant.
func MergePrice(src, dst *Price) {
	dst.Amount = src.Amount
	dst.URL = src.URL
	dst.ProductID = src.ProductID
	dst.ShopID = src.ShopID
	dst.PriceDate = src.PriceDate
	dst.IsPack = src.IsPack
	dst.UnitsPerPack = src.UnitsPerPack
}
