package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the refurbished catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog (immutable after seeding)
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  condition TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  original_price NUMERIC CHECK (original_price IS NULL OR original_price >= price),
  image TEXT,
  discount NUMERIC NOT NULL DEFAULT 0 CHECK (discount >= 0 AND discount <= 1),
  rating NUMERIC NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_brand    ON products(brand);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Session documents (cart / theme / favorites), one JSON value per key
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting refurbished catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,category,brand,condition,price,original_price,image,discount,rating,stock,featured) VALUES
	  (1,'iPhone 13 Pro','Smartphones','Apple','Excellent',649.99,999.99,'https://images.unsplash.com/photo-1632661674596-df8be070a5c5?q=80&w=800&auto=format&fit=crop',0.35,4.7,5,1),
	  (2,'MacBook Air M1','Laptops','Apple','Good',749.99,999.99,'https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?q=80&w=800&auto=format&fit=crop',0.25,4.9,3,1),
	  (3,'Samsung Galaxy Tab S7','Tablets','Samsung','Very Good',399.99,649.99,'https://images.unsplash.com/photo-1587033411391-5d9e51cce126?q=80&w=800&auto=format&fit=crop',0.38,4.5,8,1),
	  (4,'Sony WH-1000XM4','Audio','Sony','Like New',199.99,349.99,'https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?q=80&w=800&auto=format&fit=crop',0.43,4.8,12,1),
	  (5,'Dell XPS 13','Laptops','Dell','Good',849.99,1299.99,'https://images.unsplash.com/photo-1593642632823-8f785ba67e45?q=80&w=800&auto=format&fit=crop',0.35,4.4,2,0),
	  (6,'Samsung Galaxy S21','Smartphones','Samsung','Very Good',499.99,799.99,'https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?q=80&w=800&auto=format&fit=crop',0.38,4.6,7,0),
	  (7,'iPad Pro 11-inch','Tablets','Apple','Excellent',649.99,899.99,'https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?q=80&w=800&auto=format&fit=crop',0.28,4.7,4,0),
	  (8,'Bose QuietComfort 45','Audio','Bose','Excellent',229.99,329.99,'https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop',0.3,4.6,9,0),
	  (9,'Google Pixel 6 Pro','Smartphones','Google','Like New',549.99,899.99,'https://images.unsplash.com/photo-1635870723802-e88d76ae324e?q=80&w=800&auto=format&fit=crop',0.39,4.5,6,0),
	  (10,'Lenovo ThinkPad X1','Laptops','Lenovo','Good',899.99,1499.99,'https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?q=80&w=800&auto=format&fit=crop',0.4,4.7,3,0),
	  (11,'Microsoft Surface Pro 8','Tablets','Microsoft','Very Good',749.99,1099.99,'https://images.unsplash.com/photo-1617529497471-9218633199c0?q=80&w=800&auto=format&fit=crop',0.32,4.6,5,0),
	  (12,'Apple Watch Series 7','Wearables','Apple','Excellent',299.99,399.99,'https://images.unsplash.com/photo-1546868871-7041f2a55e12?q=80&w=800&auto=format&fit=crop',0.25,4.8,8,0)`)

	return tx.Commit()
}
