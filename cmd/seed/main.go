package main

import (
	"log"
	"os"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Product Catalog...")

	products := []entity.Product{
		{
			Id: uuid.New(), ExternalId: "p-1001", Sku: "CH-100",
			Title:       "Ergonomic Office Chair Black",
			Description: "Mesh-backed office chair with lumbar support and adjustable armrests",
			Category:    "Chairs", Subcategory: "Office Chairs",
			Tags:  datatypes.JSON([]byte(`["Color_Black","Material_Mesh","Style_Modern","Room_Office"]`)),
			Price: 249.00, Currency: "USD", InventoryQuantity: 32, Available: true,
		},
		{
			Id: uuid.New(), ExternalId: "p-1002", Sku: "CH-101",
			Title:       "Fabric Lounge Chair Grey",
			Description: "Wide-seat lounge chair upholstered in woven grey fabric",
			Category:    "Chairs", Subcategory: "Lounge Chairs",
			Tags:  datatypes.JSON([]byte(`["Color_Grey","Material_Fabric","Style_Scandinavian","Room_Living Room"]`)),
			Price: 320.00, Currency: "USD", InventoryQuantity: 12, Available: true,
		},
		{
			Id: uuid.New(), ExternalId: "p-2001", Sku: "DK-200",
			Title:       "Standing Desk Walnut",
			Description: "Height-adjustable standing desk with a walnut veneer top",
			Category:    "Desks", Subcategory: "Standing Desks",
			Tags:  datatypes.JSON([]byte(`["Color_Brown","Material_Wood","Style_Modern","Room_Office"]`)),
			Price: 199.00, Currency: "USD", InventoryQuantity: 18, Available: true,
		},
		{
			Id: uuid.New(), ExternalId: "p-3001", Sku: "SF-300",
			Title:       "Three Seater Sofa Navy",
			Description: "Deep-cushion three seater sofa in navy velvet",
			Category:    "Sofas", Subcategory: "Three Seaters",
			Tags:  datatypes.JSON([]byte(`["Color_Navy","Material_Velvet","Style_Contemporary","Room_Living Room"]`)),
			Price: 899.00, Currency: "USD", InventoryQuantity: 5, Available: true,
		},
		{
			Id: uuid.New(), ExternalId: "p-4001", Sku: "TB-400",
			Title:       "Round Dining Table Oak",
			Description: "Solid oak dining table seating four comfortably",
			Category:    "Tables", Subcategory: "Dining Tables",
			Tags:  datatypes.JSON([]byte(`["Color_Natural","Material_Wood","Style_Rustic","Room_Dining Room"]`)),
			Price: 450.00, Currency: "USD", InventoryQuantity: 0, Available: false,
		},
	}

	for _, p := range products {
		// Skip SKUs that already exist
		var existing entity.Product
		if err := db.Where("sku = ?", p.Sku).First(&existing).Error; err == nil {
			log.Printf("Product '%s' already exists, skipping...", p.Sku)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating product '%s': %v", p.Sku, err)
		} else {
			log.Printf("Created product: %s (%s)", p.Title, p.Sku)
		}
	}

	log.Println("Product seeding completed!")
}
