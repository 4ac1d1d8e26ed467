// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/domain/order"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/domain/wishlist"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Migration handles database migrations
type Migration struct {
	db *DB
}

// NewMigration creates a new migration instance
func NewMigration(db *DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: base tables first, then tables with foreign keys
	models := []interface{}{
		&user.User{},
		&alien.Alien{},

		&cart.Cart{},
		&cart.Item{},

		&order.Order{},
		&order.Item{},

		&wishlist.Item{},
	}

	for _, model := range models {
		if err := m.db.GetDB().AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		"CREATE INDEX IF NOT EXISTS idx_aliens_faction ON aliens(faction)",
		"CREATE INDEX IF NOT EXISTS idx_aliens_planet ON aliens(planet)",
		"CREATE INDEX IF NOT EXISTS idx_aliens_rarity ON aliens(rarity)",
		"CREATE INDEX IF NOT EXISTS idx_aliens_price ON aliens(price)",
		"CREATE INDEX IF NOT EXISTS idx_aliens_featured_stock ON aliens(featured, in_stock)",
		"CREATE INDEX IF NOT EXISTS idx_aliens_created_at ON aliens(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_cart_items_cart_alien ON cart_items(cart_id, alien_id)",

		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_alien ON order_items(alien_id)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.GetDB().Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
		}
	}

	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData(bcryptCost int) error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(bcryptCost); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedTestUser(bcryptCost); err != nil {
		return fmt.Errorf("failed to seed test user: %w", err)
	}

	if err := m.seedAliens(); err != nil {
		return fmt.Errorf("failed to seed aliens: %w", err)
	}

	log.Println("✅ Initial data seeded")
	return nil
}

func (m *Migration) seedAdminUser(bcryptCost int) error {
	var existing user.User
	result := m.db.GetDB().Where("email = ?", "admin@beammart.dev").First(&existing)
	if result.Error == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := user.User{
		Email:     "admin@beammart.dev",
		Password:  string(hashedPassword),
		FirstName: "Admin",
		LastName:  "User",
		IsActive:  true,
		IsAdmin:   true,
	}

	if err := m.db.GetDB().Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("✅ Created admin user: admin@beammart.dev (password: admin123)")
	return nil
}

func (m *Migration) seedTestUser(bcryptCost int) error {
	var existing user.User
	result := m.db.GetDB().Where("email = ?", "test@beammart.dev").First(&existing)
	if result.Error == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("test123"), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	testUser := user.User{
		Email:     "test@beammart.dev",
		Password:  string(hashedPassword),
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
		IsAdmin:   false,
	}

	if err := m.db.GetDB().Create(&testUser).Error; err != nil {
		return err
	}

	log.Println("✅ Created test user: test@beammart.dev (password: test123)")
	return nil
}

// seedAliens creates the starter catalog
func (m *Migration) seedAliens() error {
	var count int64
	m.db.GetDB().Model(&alien.Alien{}).Count(&count)
	if count > 0 {
		return nil
	}

	aliens := []alien.Alien{
		{
			Name:      "Zorblax the Magnificent",
			Faction:   "Galactic Senate",
			Planet:    "Kepler-442b",
			Rarity:    alien.RarityLegendary,
			Price:     4999.99,
			Backstory: "A distinguished senator from the outer rim, known for resolving three interstellar wars with a single telepathic address.",
			Abilities: pq.StringArray{"Telepathy", "Diplomatic Immunity", "Mass Persuasion"},
			Image:     "/uploads/zorblax.png",
			Featured:  true,
			InStock:   true,
		},
		{
			Name:      "Krel Vex",
			Faction:   "Void Raiders",
			Planet:    "Proxima Centauri b",
			Rarity:    alien.RarityEpic,
			Price:     1299.50,
			Backstory: "A battle-scarred raider captain who has plundered more than two hundred cargo convoys.",
			Abilities: pq.StringArray{"Phase Shift", "Plasma Resistance"},
			Image:     "/uploads/krel-vex.png",
			Featured:  true,
			InStock:   true,
		},
		{
			Name:      "Mip",
			Faction:   "Nebula Nomads",
			Planet:    "TRAPPIST-1e",
			Rarity:    alien.RarityCommon,
			Price:     49.99,
			Backstory: "A small, friendly wanderer that hums in ultraviolet frequencies when content.",
			Abilities: pq.StringArray{"UV Song"},
			Image:     "/uploads/mip.png",
			Featured:  false,
			InStock:   true,
		},
		{
			Name:      "Queen Xanthea",
			Faction:   "Hive Ascendancy",
			Planet:    "Gliese 667 Cc",
			Rarity:    alien.RarityLegendary,
			Price:     7500.00,
			Backstory: "Sovereign of the crystalline hives, whose exoskeleton refracts starlight into defensive plasma.",
			Abilities: pq.StringArray{"Hive Mind", "Crystal Armor", "Starlight Refraction"},
			Image:     "/uploads/xanthea.png",
			Featured:  true,
			InStock:   true,
		},
		{
			Name:      "Grubnar",
			Faction:   "Void Raiders",
			Planet:    "Kepler-442b",
			Rarity:    alien.RarityRare,
			Price:     349.00,
			Backstory: "A demolitions specialist with an unfortunate habit of eating unexploded ordnance.",
			Abilities: pq.StringArray{"Blast Absorption", "Iron Stomach"},
			Image:     "/uploads/grubnar.png",
			Featured:  false,
			InStock:   true,
		},
		{
			Name:      "Sylphir",
			Faction:   "Nebula Nomads",
			Planet:    "HD 40307 g",
			Rarity:    alien.RarityEpic,
			Price:     899.99,
			Backstory: "A gaseous cartographer who maps dark-matter currents by taste.",
			Abilities: pq.StringArray{"Gaseous Form", "Dark Matter Sense"},
			Image:     "/uploads/sylphir.png",
			Featured:  false,
			InStock:   true,
		},
		{
			Name:      "Thorgak the Unmoved",
			Faction:   "Hive Ascendancy",
			Planet:    "Proxima Centauri b",
			Rarity:    alien.RarityRare,
			Price:     425.00,
			Backstory: "A sentry who has stood guard at the same hive gate for four hundred years without blinking.",
			Abilities: pq.StringArray{"Stone Skin", "Eternal Vigil"},
			Image:     "/uploads/thorgak.png",
			Featured:  false,
			InStock:   false,
		},
		{
			Name:      "Blip-Blop",
			Faction:   "Galactic Senate",
			Planet:    "TRAPPIST-1e",
			Rarity:    alien.RarityCommon,
			Price:     29.99,
			Backstory: "A junior clerk in the senate archives who communicates exclusively in binary chirps.",
			Abilities: pq.StringArray{"Binary Chirp", "Perfect Recall"},
			Image:     "/uploads/blip-blop.png",
			Featured:  false,
			InStock:   true,
		},
	}

	for _, a := range aliens {
		if err := m.db.GetDB().Create(&a).Error; err != nil {
			log.Printf("⚠️ Failed to seed alien %s: %v", a.Name, err)
		}
	}

	log.Printf("✅ Seeded %d aliens", len(aliens))
	return nil
}
