package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Class{},
		&Student{},
		&MarkingPrinciple{},
		&Test{},
		&Question{},
		&Answer{},
	}
}
