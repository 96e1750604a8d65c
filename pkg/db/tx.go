package db

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"dacops.xyz/dac-monitor-service/pkg/common"
)

// RunInTransaction executes body against a scoped transaction handle.
// It commits when body returns nil and rolls back otherwise, so no partial
// write from body is ever observable by concurrent readers.
func (d *DB) RunInTransaction(body func(tx *gorm.DB) error) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDACCore,
		zap.String(common.LoggerFieldDACCategory, common.LoggerCategoryDACTx),
	)

	err := d.Conn.Transaction(body)
	if err != nil {
		logger.Error("Transaction rolled back due to error", zap.Error(err))
		return err
	}

	logger.Debug("Transaction committed successfully")
	return nil
}
