package migrate

import (
	"context"

	"github.com/Vld439/vinovault/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	CreateExtensions bool // pgcrypto
	CreateChecks     bool // CHECK constraints
	CreateIndexes    bool // composite uniques beyond gorm tags
	CreateFKsViaSQL  bool // FKs via Exec after AutoMigrate
}

func DefaultOptions() Options {
	return Options{
		CreateExtensions: true,
		CreateChecks:     true,
		CreateIndexes:    true,
		CreateFKsViaSQL:  true,
	}
}

// Run migrates the full schema. The raw-SQL layers (extensions, checks, FKs)
// are Postgres-only; on sqlite AutoMigrate alone is applied.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, opt Options) error {
	log.Info("starting schema migration")

	isPostgres := db.Dialector.Name() == "postgres"

	if opt.CreateExtensions && isPostgres {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("pgcrypto error", zap.Error(err))
			return err
		}
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Warehouse{},
		&models.Stock{},
		&models.StockMovement{},
		&models.Sale{},
		&models.SaleItem{},
	); err != nil {
		log.Error("AutoMigrate error", zap.Error(err))
		return err
	}

	if !isPostgres {
		log.Info("schema migration finished (sqlite, base tables only)")
		return nil
	}

	if opt.CreateChecks {
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE products
	DROP CONSTRAINT IF EXISTS chk_products_prices_non_negative,
	ADD CONSTRAINT chk_products_prices_non_negative
	CHECK (purchase_price_cents >= 0 AND sale_price_cents >= 0);
`).Error; err != nil {
			log.Error("chk products prices", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE sale_items
	DROP CONSTRAINT IF EXISTS chk_sale_items_quantity_gt_zero,
	ADD CONSTRAINT chk_sale_items_quantity_gt_zero
	CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("chk sale_items.quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE stock_movements
	DROP CONSTRAINT IF EXISTS chk_stock_movements_delta_nonzero,
	ADD CONSTRAINT chk_stock_movements_delta_nonzero
	CHECK (delta <> 0);
`).Error; err != nil {
			log.Error("chk stock_movements.delta", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE stock_movements
	DROP CONSTRAINT IF EXISTS chk_stock_movements_kind_allowed,
	ADD CONSTRAINT chk_stock_movements_kind_allowed
	CHECK (kind IN ('manual-in','manual-out','adjustment','sale-out','sale-reversal-in'));
`).Error; err != nil {
			log.Error("chk stock_movements.kind", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE sales
	DROP CONSTRAINT IF EXISTS chk_sales_status_allowed,
	ADD CONSTRAINT chk_sales_status_allowed
	CHECK (status IN ('active','voided'));
`).Error; err != nil {
			log.Error("chk sales.status", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE sales
	DROP CONSTRAINT IF EXISTS chk_sales_currency_allowed,
	ADD CONSTRAINT chk_sales_currency_allowed
	CHECK (currency IN ('USD','PYG','BRL'));
`).Error; err != nil {
			log.Error("chk sales.currency", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		// SKU uniqueness case-insensitive.
		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_products_sku_lower
ON products (lower(sku));
`).Error; err != nil {
			log.Error("ux products sku", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_stock_movements_pair_created
ON stock_movements (product_id, warehouse_id, created_at DESC);
`).Error; err != nil {
			log.Error("ix movements pair_created", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_sales_created
ON sales (created_at DESC);
`).Error; err != nil {
			log.Error("ix sales created", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		fks := []string{
			`ALTER TABLE stocks
  DROP CONSTRAINT IF EXISTS fk_stocks_product,
  ADD CONSTRAINT fk_stocks_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE`,
			`ALTER TABLE stocks
  DROP CONSTRAINT IF EXISTS fk_stocks_warehouse,
  ADD CONSTRAINT fk_stocks_warehouse
    FOREIGN KEY (warehouse_id) REFERENCES warehouses(id) ON DELETE RESTRICT`,
			`ALTER TABLE stock_movements
  DROP CONSTRAINT IF EXISTS fk_stock_movements_product,
  ADD CONSTRAINT fk_stock_movements_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT`,
			`ALTER TABLE stock_movements
  DROP CONSTRAINT IF EXISTS fk_stock_movements_warehouse,
  ADD CONSTRAINT fk_stock_movements_warehouse
    FOREIGN KEY (warehouse_id) REFERENCES warehouses(id) ON DELETE RESTRICT`,
			`ALTER TABLE stock_movements
  DROP CONSTRAINT IF EXISTS fk_stock_movements_user,
  ADD CONSTRAINT fk_stock_movements_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT`,
			`ALTER TABLE sales
  DROP CONSTRAINT IF EXISTS fk_sales_client,
  ADD CONSTRAINT fk_sales_client
    FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT`,
			`ALTER TABLE sales
  DROP CONSTRAINT IF EXISTS fk_sales_user,
  ADD CONSTRAINT fk_sales_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT`,
			`ALTER TABLE sales
  DROP CONSTRAINT IF EXISTS fk_sales_warehouse,
  ADD CONSTRAINT fk_sales_warehouse
    FOREIGN KEY (warehouse_id) REFERENCES warehouses(id) ON DELETE RESTRICT`,
			`ALTER TABLE sale_items
  DROP CONSTRAINT IF EXISTS fk_sale_items_sale,
  ADD CONSTRAINT fk_sale_items_sale
    FOREIGN KEY (sale_id) REFERENCES sales(id) ON DELETE CASCADE`,
			`ALTER TABLE sale_items
  DROP CONSTRAINT IF EXISTS fk_sale_items_product,
  ADD CONSTRAINT fk_sale_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT`,
		}
		for _, stmt := range fks {
			if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
				log.Error("fk error", zap.Error(err))
				return err
			}
		}
	}

	log.Info("schema migration finished")
	return nil
}
