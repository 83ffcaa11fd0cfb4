// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Admin@123"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order
	models := []interface{}{
		&user.User{},
		&product.Product{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
		&order.OrderStatusHistory{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_created_at_desc ON products(created_at DESC, id)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand_lower ON products(LOWER(brand))",
		"CREATE INDEX IF NOT EXISTS idx_products_gender_lower ON products(LOWER(gender))",
		"CREATE INDEX IF NOT EXISTS idx_products_name_lower ON products(LOWER(name))",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",

		// Order items indexes
		"CREATE INDEX IF NOT EXISTS idx_order_items_order_product ON order_items(order_id, product_id)",

		// Order status history indexes
		"CREATE INDEX IF NOT EXISTS idx_order_status_history_order ON order_status_history(order_id, created_at DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts the admin account and the starter catalogue
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedAdminUser creates the back-office account, or restores its role and password
func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var existing user.User
	err = m.db.Where("LOWER(email) = LOWER(?)", adminEmail).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := user.User{
			Email:     adminEmail,
			Password:  string(hashedPassword),
			FirstName: "Admin",
			LastName:  "Account",
			Role:      user.RoleAdmin,
		}
		if err := m.db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Printf("✅ Created admin user: %s", adminEmail)

	case err != nil:
		return fmt.Errorf("failed to look up admin user: %w", err)

	default:
		updates := map[string]interface{}{
			"role":     user.RoleAdmin,
			"password": string(hashedPassword),
		}
		if err := m.db.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to reset admin user: %w", err)
		}
		log.Printf("⏭️ Admin user already exists with ID: %d, role and password reset", existing.ID)
	}

	return nil
}

// seedProducts loads the starter catalogue into an empty products table
func (m *Migration) seedProducts() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ Products already exist, skipping seed")
		return nil
	}

	log.Println("⌚ Seeding products...")

	products := seedCatalogue()

	// Later entries are newer so the "latest" listing has a stable order
	base := time.Now().UTC().Add(-time.Duration(len(products)) * time.Minute)
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	if err := m.db.CreateInBatches(products, 50).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d products", len(products))
	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"order_status_history",
		"order_items",
		"orders",
		"cart_items",
		"carts",
		"products",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo logs the row count of every table
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
