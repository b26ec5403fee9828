package main

import (
	"flag"
	"fmt"
	"time"

	"citytwin/internal/data"
	"citytwin/internal/model"
)

// Writes a sample city topology JSON so the CLI and API have something to
// chew on out of the box.
func main() {
	out := flag.String("out", "./data/stations.json", "Output path for the topology JSON")
	city := flag.String("city", "Delhi NCR", "City label for the topology file")
	flag.Parse()

	tf := &data.TopologyFile{
		City:      *city,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Stations: []model.Station{
			{ID: "BS-001", Name: "Central Plaza", TotalSlots: 20, Chargers: 15, InitialInventory: 18,
				Location: model.Location{Lat: 28.6139, Lon: 77.2090}},
			{ID: "BS-002", Name: "Riverside Market", TotalSlots: 15, Chargers: 8, InitialInventory: 10,
				Location: model.Location{Lat: 28.5829, Lon: 77.1520}},
			{ID: "BS-003", Name: "North Depot", TotalSlots: 12, Chargers: 6, InitialInventory: 8,
				Location: model.Location{Lat: 28.6692, Lon: 77.1170}},
			{ID: "BS-004", Name: "Airport Road", TotalSlots: 25, Chargers: 20, InitialInventory: 22,
				Location: model.Location{Lat: 28.5562, Lon: 77.1000}},
			{ID: "BS-005", Name: "Tech Park East", TotalSlots: 15, Chargers: 12, InitialInventory: 10,
				Location: model.Location{Lat: 28.6280, Lon: 77.2789}},
		},
	}

	if err := data.SaveTopology(tf, *out); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d stations to %s\n", len(tf.Stations), *out)
}
