package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

// SeedAdmin creates the initial dashboard login from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.Admin{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a starter menu so a fresh install has something to show.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 299, Category: "Main Course", IsAvailable: true},
		{Name: "Pasta Alfredo", Description: "Creamy fettuccine with parmesan", Price: 249, Category: "Main Course", IsAvailable: true},
		{Name: "Caesar Salad", Description: "Romaine, croutons, caesar dressing", Price: 179, Category: "Starters", IsAvailable: true},
		{Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Price: 99, Category: "Starters", IsAvailable: true},
		{Name: "Tiramisu", Description: "Espresso-soaked layers, mascarpone", Price: 149, Category: "Desserts", IsAvailable: true},
		{Name: "Fresh Lime Soda", Description: "Sweet or salted", Price: 69, Category: "Beverages", IsAvailable: true},
		{Name: "Cold Coffee", Description: "Blended iced coffee", Price: 119, Category: "Beverages", IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("seeded %d menu items", len(items))
	return nil
}
