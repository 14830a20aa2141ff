package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/config"
	"github.com/nordmart/storefront-backend/pkg/db"
	"github.com/nordmart/storefront-backend/pkg/db/models"
	"github.com/nordmart/storefront-backend/pkg/logger"
)

// Demo catalog data for local development. Mirrors what the storefront client
// expects on its home and browse pages.

type seedProduct struct {
	id                int64
	name              string
	description       string
	price             float64
	primaryCategoryID int64
	rating            float64
	reviews           int
	badge             string
	images            []seedImage
}

type seedImage struct {
	path      string
	isPrimary bool
	sortOrder int
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := run(ctx, dbClient.DB()); err != nil {
		logg.Error(ctx, "seed failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "database seeded")
}

func run(ctx context.Context, conn *gorm.DB) error {
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(tx); err != nil {
			return err
		}
		if err := seedProducts(tx); err != nil {
			return err
		}
		if err := seedUsers(tx); err != nil {
			return err
		}
		if err := seedReviews(tx); err != nil {
			return err
		}
		if err := seedHeroProducts(tx); err != nil {
			return err
		}
		return seedPromotions(tx)
	})
}

func seedCategories(tx *gorm.DB) error {
	parent := func(id int64, name, icon string) models.Category {
		return models.Category{ID: id, Name: name, Icon: &icon}
	}
	child := func(id int64, name string, parentID int64) models.Category {
		return models.Category{ID: id, Name: name, ParentID: &parentID}
	}

	categories := []models.Category{
		parent(1, "Computers & Accessories", "Laptop"),
		parent(2, "Video Games", "Gamepad"),
		parent(3, "Toys & Games", "ToyBox"),
		parent(4, "Electronics", "Cpu"),
		parent(5, "Home & Kitchen", "Home"),
		parent(6, "Fashion", "Shirt"),
		child(7, "Laptops", 1),
		child(8, "Keyboards", 1),
		child(9, "VR", 2),
		child(10, "Consoles", 2),
		child(11, "Headphones", 4),
		child(12, "Smart Watches", 4),
		child(13, "Coffee & Espresso", 5),
		child(14, "Home Decor", 5),
		child(15, "Jackets", 6),
	}
	return tx.Create(&categories).Error
}

// leaf categories that filler products rotate through
var leafCategoryIDs = []int64{7, 8, 9, 10, 11, 12, 13, 14, 15}

func seedProducts(tx *gorm.DB) error {
	items := []seedProduct{
		{
			id:   1,
			name: "ZenBook Pro Ultra",
			description: "Designed for productivity and creatives. Featuring a 4K OLED display " +
				"and a high-end processor.",
			price:             1899.99,
			primaryCategoryID: 7,
			rating:            4.9,
			reviews:           1240,
			badge:             "#1 in Computers",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
				{path: "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?auto=format&fit=crop&q=80&w=600&h=600", sortOrder: 1},
			},
		},
		{
			id:                2,
			name:              "Aether Noise-Canceling Headphones",
			description:       "Pure sound with 30+ hours battery and industry-leading noise cancellation.",
			price:             349.0,
			primaryCategoryID: 11,
			rating:            4.8,
			reviews:           850,
			badge:             "Must Have",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
				{path: "https://images.unsplash.com/photo-1546435770-a3e426ff472b?auto=format&fit=crop&q=80&w=600&h=600", sortOrder: 1},
			},
		},
		{
			id:                3,
			name:              "Artisan Barista Espresso Machine",
			description:       "Cafe-quality espresso at home with precision temperature control and steam wand.",
			price:             599.5,
			primaryCategoryID: 13,
			rating:            4.7,
			reviews:           430,
			badge:             "Top Gift",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1510551310160-589462daf284?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
				{path: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&q=80&w=600&h=600", sortOrder: 1},
			},
		},
		{
			id:                4,
			name:              "Nova Core Smart Watch S7",
			description:       "Advanced health sensors, GPS, and a stunning Sapphire glass display.",
			price:             299.0,
			primaryCategoryID: 12,
			rating:            4.6,
			reviews:           2100,
			badge:             "New Arrival",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
			},
		},
		{
			id:                5,
			name:              "QuestMaster VR Pro 3",
			description:       "Wireless VR with high-resolution lenses and spatial audio for immersive gaming.",
			price:             499.0,
			primaryCategoryID: 9,
			rating:            4.9,
			reviews:           670,
			badge:             "Best in Gaming",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
			},
		},
		{
			id:                6,
			name:              "Mechanical Force RGB Keyboard",
			description:       "Custom tactile switches and per-key RGB lighting built for gamers.",
			price:             129.99,
			primaryCategoryID: 8,
			rating:            4.5,
			reviews:           1200,
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
			},
		},
		{
			id:                7,
			name:              "Leather Knight Signature Jacket",
			description:       "Handcrafted full-grain leather jacket with a timeless silhouette.",
			price:             450.0,
			primaryCategoryID: 15,
			rating:            4.9,
			reviews:           150,
			badge:             "Luxury Select",
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1551028719-00167b16eac5?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
			},
		},
		{
			id:                8,
			name:              "Velvet Dream Sofa Cushion Set",
			description:       "Soft velvet cushions in jewel tones. Perfect pop of color for boutique living.",
			price:             75.0,
			primaryCategoryID: 14,
			rating:            4.4,
			reviews:           80,
			images: []seedImage{
				{path: "https://images.unsplash.com/photo-1584132967334-10e028bd69f7?auto=format&fit=crop&q=80&w=600&h=600", isPrimary: true},
			},
		},
	}

	rng := rand.New(rand.NewSource(42))
	for i := int64(9); i <= 35; i++ {
		filler := seedProduct{
			id:   i,
			name: fmt.Sprintf("Premium Item #%d", i),
			description: fmt.Sprintf("A high-quality boutique item from our curated collection. "+
				"Item %d represents peak craftsmanship and design.", i),
			price:             float64(int((20+rng.Float64()*200)*100)) / 100,
			primaryCategoryID: leafCategoryIDs[int(i)%len(leafCategoryIDs)],
			rating:            float64(int((4+rng.Float64())*10)) / 10,
			reviews:           rng.Intn(500),
			images: []seedImage{
				{path: fmt.Sprintf("https://picsum.photos/seed/prod%d/600/600", i), isPrimary: true},
			},
		}
		if i%7 == 0 {
			filler.badge = "Trending"
		}
		if i%3 == 0 {
			filler.images = append(filler.images, seedImage{
				path:      fmt.Sprintf("https://picsum.photos/seed/prod%d-b/600/600", i),
				sortOrder: 1,
			})
		}
		items = append(items, filler)
	}

	for _, item := range items {
		description := item.description
		product := models.Product{
			ID:            item.id,
			Name:          item.name,
			Description:   &description,
			Price:         item.price,
			AverageRating: item.rating,
			ReviewCount:   item.reviews,
		}
		if item.badge != "" {
			badge := item.badge
			product.Badge = &badge
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		link := models.ProductCategory{ProductID: item.id, CategoryID: item.primaryCategoryID, IsPrimary: true}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		for _, img := range item.images {
			image := models.ProductImage{
				ProductID: item.id,
				ImagePath: img.path,
				IsPrimary: img.isPrimary,
				SortOrder: img.sortOrder,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedUsers(tx *gorm.DB) error {
	user := func(deviceID, username, email, phone, avatar, location string) models.User {
		return models.User{
			DeviceID:    deviceID,
			Username:    username,
			Email:       email,
			PhoneNumber: phone,
			AvatarURL:   &avatar,
			Location:    &location,
			IsConfirmed: true,
		}
	}

	users := []models.User{
		user("user-01", "Alex Sterling", "alex@example.com", "123-456-7890",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Felix", "London, UK"),
		user("user-02", "Sophia Valentine", "sophia@example.com", "234-567-8901",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka", "Paris, FR"),
		user("user-03", "Marco Rossi", "marco@example.com", "345-678-9012",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Aiden", "Milan, IT"),
		user("user-04", "Elena Gilbert", "elena@example.com", "456-789-0123",
			"https://api.dicebear.com/7.x/avataaars/svg?seed=Zoe", "New York, USA"),
	}
	return tx.Create(&users).Error
}

func seedReviews(tx *gorm.DB) error {
	reviews := []models.Review{
		{ProductID: 1, DeviceID: "user-01", Rating: 5, Comment: "Absolutely breathtaking performance. Worth every penny.", LikesCount: 125},
		{ProductID: 2, DeviceID: "user-02", Rating: 5, Comment: "Noise canceling is on another level. Super premium build.", LikesCount: 98},
		{ProductID: 3, DeviceID: "user-03", Rating: 5, Comment: "Cafe-quality at home. Easy to clean and looks stunning.", LikesCount: 110},
		{ProductID: 4, DeviceID: "user-04", Rating: 4, Comment: "Great watch, battery lasts for days even with GPS.", LikesCount: 45},
	}
	return tx.Create(&reviews).Error
}

func seedHeroProducts(tx *gorm.DB) error {
	hero := func(productID int64, detail string, order int) models.HeroProduct {
		return models.HeroProduct{ProductID: productID, DetailText: &detail, DisplayOrder: order, IsActive: true}
	}

	heroes := []models.HeroProduct{
		hero(1, "M3 Max Chip | 128GB Unified Memory", 1),
		hero(2, "40mm Drivers | 60h Battery Life", 2),
		hero(3, "Barista-grade Pressure | Steam Wand", 3),
	}
	return tx.Create(&heroes).Error
}

func seedPromotions(tx *gorm.DB) error {
	str := func(v string) *string { return &v }

	promotions := []models.Promotion{
		{
			ID:            1,
			Title:         "New Year Mega Sale",
			Subtitle:      str("Up to 20% off selected items"),
			Description:   str("Fresh year, fresh gear. Limited time discounts on top picks."),
			ImagePath:     str("https://images.unsplash.com/photo-1512436991641-6745cdb1723f?auto=format&fit=crop&q=80&w=1200&h=500"),
			PromoType:     "percent",
			DiscountValue: 20,
			CouponCode:    str("NY2026"),
			Priority:      10,
			IsActive:      true,
		},
		{
			ID:            2,
			Title:         "Electronics Flash Deal",
			Subtitle:      str("Headphones + Watches specials"),
			Description:   str("Blink and it's gone. Best deals for your daily tech."),
			ImagePath:     str("https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=1200&h=500"),
			PromoType:     "percent",
			DiscountValue: 15,
			Priority:      5,
			IsActive:      true,
		},
	}
	if err := tx.Create(&promotions).Error; err != nil {
		return err
	}

	categoryLinks := [][2]int64{{2, 4}, {2, 11}, {2, 12}}
	for _, link := range categoryLinks {
		if err := tx.Exec(
			`INSERT INTO promotion_categories (promotion_id, category_id) VALUES (?, ?)`,
			link[0], link[1],
		).Error; err != nil {
			return err
		}
	}

	productLinks := [][2]int64{{1, 1}, {1, 2}, {2, 2}, {2, 4}}
	for _, link := range productLinks {
		if err := tx.Exec(
			`INSERT INTO promotion_products (promotion_id, product_id) VALUES (?, ?)`,
			link[0], link[1],
		).Error; err != nil {
			return err
		}
	}
	return nil
}
