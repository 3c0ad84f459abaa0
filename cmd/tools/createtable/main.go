package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "navlun:navlun@tcp(localhost:3306)/navlun_go?parseTime=true&multiStatements=true&loc=Local"
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS accounts (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(191) NOT NULL,
	  password_hash VARCHAR(100) NOT NULL,
	  company_name VARCHAR(191) NULL,
	  role VARCHAR(30) NOT NULL DEFAULT 'shipper',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_accounts_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS inspection_pricings (
	  id CHAR(36) NOT NULL,
	  service_provider_id CHAR(36) NOT NULL,
	  product VARCHAR(191) NOT NULL,
	  city VARCHAR(191) NOT NULL,
	  inspection_type VARCHAR(64) NOT NULL,
	  price DECIMAL(12,2) NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'USD',
	  note TEXT NULL,
	  status VARCHAR(20) NOT NULL DEFAULT 'active',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_inspection_pricings_provider_created (service_provider_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS freight_rates (
	  id CHAR(36) NOT NULL,
	  service_provider_id CHAR(36) NOT NULL,
	  origin VARCHAR(191) NOT NULL,
	  destination VARCHAR(191) NOT NULL,
	  mode VARCHAR(32) NOT NULL,
	  rate DECIMAL(12,2) NOT NULL,
	  unit VARCHAR(32) NOT NULL DEFAULT 'container',
	  currency CHAR(3) NOT NULL DEFAULT 'USD',
	  note TEXT NULL,
	  status VARCHAR(20) NOT NULL DEFAULT 'active',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_freight_rates_provider_created (service_provider_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS token_records (
	  client_key CHAR(36) NOT NULL,
	  access_token CHAR(64) NOT NULL,
	  refresh_token CHAR(64) NOT NULL,
	  account_id CHAR(36) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (client_key),
	  UNIQUE KEY ux_token_records_access (access_token),
	  KEY ix_token_records_account (account_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ accounts table created successfully")
	log.Println("✓ inspection_pricings table created successfully")
	log.Println("✓ freight_rates table created successfully")
	log.Println("✓ token_records table created successfully")
}
