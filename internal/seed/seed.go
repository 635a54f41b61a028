package seed

import (
	"context"
	"errors"
	"time"

	settingdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	"gorm.io/gorm"
)

// SequenceRowID is the id of the single invoice_sequences row.
const SequenceRowID = 1

// Ensure creates the invoice sequence row and the default settings keys.
// Existing rows are left untouched, so it is safe to run on every start.
func Ensure(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureInvoiceSequenceTx(ctx, tx); err != nil {
			return err
		}
		return ensureSettingsTx(ctx, tx)
	})
}

func ensureInvoiceSequenceTx(ctx context.Context, tx *gorm.DB) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO invoice_sequences (id, next_number, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		SequenceRowID,
		1,
		time.Now().UTC(),
	).Error
}

func ensureSettingsTx(ctx context.Context, tx *gorm.DB) error {
	now := time.Now().UTC()
	for _, key := range settingdomain.DefaultKeys {
		err := tx.WithContext(ctx).Exec(
			`INSERT INTO settings (key, value, updated_at)
			 VALUES (?, '', ?)
			 ON CONFLICT (key) DO NOTHING`,
			key,
			now,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
