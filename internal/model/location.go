package model

// GeoLocation pins a supplier or supply-chain stage on the map
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Country   string  `json:"country"`
}
