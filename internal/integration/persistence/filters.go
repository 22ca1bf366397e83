package persistence

import "gorm.io/gorm"

// wherePeriod narrows a query to a calendar year and/or month on the given
// date column. The integration suite runs on sqlite, which has no EXTRACT,
// so the predicate is chosen per dialect.
func wherePeriod(query *gorm.DB, column string, year, month *int) *gorm.DB {
	sqlite := query.Dialector.Name() == "sqlite"
	if year != nil {
		if sqlite {
			query = query.Where("CAST(strftime('%Y', "+column+") AS INTEGER) = ?", *year)
		} else {
			query = query.Where("EXTRACT(YEAR FROM "+column+") = ?", *year)
		}
	}
	if month != nil {
		if sqlite {
			query = query.Where("CAST(strftime('%m', "+column+") AS INTEGER) = ?", *month)
		} else {
			query = query.Where("EXTRACT(MONTH FROM "+column+") = ?", *month)
		}
	}
	return query
}
