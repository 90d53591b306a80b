package models

import "github.com/propertysales/collection-service/internal/collection"

// CollectionItem pairs a consumer with their derived snapshot for the
// collection priority queue
type CollectionItem struct {
	Consumer Consumer            `json:"consumer"`
	Snapshot collection.Snapshot `json:"snapshot"`
}

// AgingReport represents aging-bucket counts across active contracts
type AgingReport struct {
	Under30    int `json:"under_30"`
	Days30to60 int `json:"days_30_to_60"`
	Days60to90 int `json:"days_60_to_90"`
	Over90     int `json:"over_90"`
	Settled    int `json:"settled"`
}
