package repositories

import "gorm.io/gorm"

// updatedOrMissing отличает "строки нет" от "значения не изменились":
// MySQL по умолчанию считает в RowsAffected только измененные строки.
func updatedOrMissing(db *gorm.DB, model interface{}, id uint, rowsAffected int64, notFound error) error {
	if rowsAffected > 0 {
		return nil
	}
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}
