package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'addon_status') THEN
			CREATE TYPE addon_status AS ENUM ('PROPOSED', 'ACCEPTED', 'REJECTED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'addon_review_status') THEN
			CREATE TYPE addon_review_status AS ENUM ('pending', 'approved', 'rejected');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'signature_method') THEN
			CREATE TYPE signature_method AS ENUM ('digital_certificate', 'external_platform');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contractors (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name TEXT NOT NULL,
		document VARCHAR(32) NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicle_settings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL,
		purchase_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		current_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		annual_ipva NUMERIC(14,2) NOT NULL DEFAULT 0,
		annual_insurance NUMERIC(14,2) NOT NULL DEFAULT 0,
		annual_maintenance NUMERIC(14,2) NOT NULL DEFAULT 0,
		depreciation_rate NUMERIC(6,2) NOT NULL DEFAULT 0,
		annual_mileage NUMERIC(12,2) NOT NULL CHECK (annual_mileage > 0),
		fuel_consumption NUMERIC(8,2) NOT NULL DEFAULT 0,
		fuel_price NUMERIC(8,3) NOT NULL DEFAULT 0,
		default_employee_id UUID,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicle_settings_owner ON vehicle_settings (owner_id);`,
	`CREATE TABLE IF NOT EXISTS employee_costs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL,
		name TEXT NOT NULL,
		salary NUMERIC(14,2) NOT NULL DEFAULT 0,
		benefits NUMERIC(14,2) NOT NULL DEFAULT 0,
		taxes NUMERIC(14,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_employee_costs_owner ON employee_costs (owner_id);`,
	`CREATE TABLE IF NOT EXISTS technical_visit_services (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL,
		name TEXT NOT NULL,
		pricing_type VARCHAR(16) NOT NULL CHECK (pricing_type IN ('hourly', 'fixed')),
		fixed_price NUMERIC(14,2) NOT NULL DEFAULT 0,
		estimated_hours NUMERIC(8,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_visit_services_owner ON technical_visit_services (owner_id);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL,
		contractor_id UUID NOT NULL REFERENCES contractors(id),
		number VARCHAR(64) NOT NULL,
		title TEXT NOT NULL,
		plan_name TEXT NOT NULL DEFAULT '',
		monthly_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		start_at DATE NOT NULL,
		end_at DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_number ON contracts (number);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_contractor ON contracts (contractor_id);`,
	`CREATE TABLE IF NOT EXISTS signed_contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		contractor_id UUID NOT NULL REFERENCES contractors(id),
		signer_name TEXT NOT NULL,
		signer_email TEXT NOT NULL DEFAULT '',
		method signature_method NOT NULL,
		fingerprint VARCHAR(64) NOT NULL DEFAULT '',
		cancelled BOOLEAN NOT NULL DEFAULT FALSE,
		signed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_signed_contracts_active ON signed_contracts (contract_id, contractor_id) WHERE cancelled = FALSE;`,
	`CREATE TABLE IF NOT EXISTS admin_signatures (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		admin_user_id UUID NOT NULL,
		signer_name TEXT NOT NULL DEFAULT '',
		signed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_admin_signatures_contract ON admin_signatures (contract_id);`,
	`CREATE TABLE IF NOT EXISTS external_signatures (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		document_id TEXT NOT NULL,
		public_id TEXT NOT NULL,
		signer_name TEXT NOT NULL,
		signer_email TEXT NOT NULL,
		signed_at TIMESTAMPTZ NOT NULL,
		notes TEXT,
		file_key TEXT,
		uploaded_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS plan_addons (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		description TEXT NOT NULL DEFAULT '',
		new_plan_name TEXT NOT NULL,
		new_monthly_value NUMERIC(14,2) NOT NULL,
		status addon_status NOT NULL DEFAULT 'PROPOSED',
		rejection_reason TEXT,
		rejected_at TIMESTAMPTZ,
		review_status addon_review_status,
		review_explanation TEXT,
		reviewed_by_user_id UUID,
		reviewed_at TIMESTAMPTZ,
		created_by_user_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_plan_addons_contract ON plan_addons (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_plan_addons_review ON plan_addons (review_status) WHERE review_status IS NOT NULL;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
