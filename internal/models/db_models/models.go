package db_models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&City{},
		&Activity{},
		&Trip{},
		&TripStop{},
		&TripActivity{},
	}
}
