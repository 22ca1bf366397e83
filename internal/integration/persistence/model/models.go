package model

// AllModels lists every model for schema migration and reset.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&PaymentMethodModel{},
		&InvestmentTypeModel{},
		&TransactionModel{},
		&InvestmentModel{},
		&GoalModel{},
	}
}
