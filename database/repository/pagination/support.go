package pagination

import "gorm.io/gorm"

func Count[T *int64](numItems T, query *gorm.DB, session *gorm.Session, distinct string) error {
	sql := query.
		Session(session).  // clone the base query.
		Distinct(distinct) // count each row once.

	if err := sql.Count(numItems).Error; err != nil {
		return err
	}

	return nil
}
