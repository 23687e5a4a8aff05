package catalog

// Sydney returns the sample catalog the assistants ship with.
func Sydney() *Catalog {
	c, err := New(DefaultCurrency, []Attraction{
		{
			ID:       "luna_park",
			Name:     "Luna Park",
			ClosedOn: MustParseDate("2025-11-01"),
			Price:    54,
			Location: "Milsons Point",
			Hours:    map[string]string{"weekday": "11:00 AM - 6:00 PM", "weekend": "11:00 AM - 10:00 PM"},
		},
		{
			ID:       "opera_house",
			Name:     "Sydney Opera House",
			Price:    42,
			Location: "Circular Quay",
			Hours:    map[string]string{"daily": "9:00 AM - 8:30 PM"},
		},
		{
			ID:       "harbour_bridge",
			Name:     "Sydney Harbour Bridge",
			Price:    0,
			Location: "The Rocks",
			Note:     "Free to walk across, BridgeClimb tours available",
			Hours:    map[string]string{"daily": "24/7"},
		},
		{
			ID:       "bondi_beach",
			Name:     "Bondi Beach",
			Price:    0,
			Location: "Bondi",
			Note:     "Free public beach, famous for surfing and coastal walk",
			Hours:    map[string]string{"daily": "24/7"},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
