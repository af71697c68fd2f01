package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"chaletbook/config"
	"chaletbook/database"
	"chaletbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the chalet catalog with simulated listings for local development.
func main() {
	config.LoadConfig()
	database.InitDB()
	chaletColl := database.DB().Collection("chalets")

	// Clear existing chalets.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := chaletColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear chalets collection: %v", err)
	}

	skiAreas := []string{"Les Arcs", "Val Thorens", "Chamonix", "Verbier"}
	amenities := [][]string{
		{"sauna", "fireplace", "wifi"},
		{"hot tub", "ski-in ski-out", "wifi"},
		{"fireplace", "parking", "wifi"},
	}
	chaletsPerArea := 8

	var chalets []interface{}
	id := 1
	for _, area := range skiAreas {
		for i := 0; i < chaletsPerArea; i++ {
			capacity := 2 + rand.Intn(10)
			chalets = append(chalets, models.Chalet{
				ID:            id,
				OwnerID:       fmt.Sprintf("owner-%d", 1+id%5),
				Name:          fmt.Sprintf("Chalet %s %d", area, i+1),
				SkiArea:       area,
				Description:   fmt.Sprintf("A cosy %d-guest chalet in %s.", capacity, area),
				Capacity:      capacity,
				Bedrooms:      1 + capacity/2,
				PricePerNight: float64(150 + rand.Intn(450)),
				Currency:      "EUR",
				Amenities:     amenities[rand.Intn(len(amenities))],
				Active:        true,
				CreatedAt:     time.Now().UTC(),
			})
			id++
		}
	}

	res, err := chaletColl.InsertMany(ctx, chalets)
	if err != nil {
		log.Fatalf("Failed to insert chalets: %v", err)
	}
	log.Printf("Seeded %d chalets across %d ski areas", len(res.InsertedIDs), len(skiAreas))
}
