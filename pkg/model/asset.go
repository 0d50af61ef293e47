package model

// AssetRef points at a blob hosted by the external asset store. PublicID is the
// store's handle used for deletion, URL is the externally servable address. A
// ref carries no guarantee by itself; it is only meaningful while the backing
// blob exists.
// swagger:model
type AssetRef struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}
