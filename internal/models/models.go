package models

// All returns every model managed by the schema migration, parents first.
func All() []interface{} {
	return []interface{}{
		&Department{},
		&Instructor{},
		&Formation{},
		&Schedule{},
		&Calendar{},
		&Event{},
		&Course{},
		&Student{},
		&Grade{},
		&Enrollment{},
		&Attendance{},
		&Admin{},
		&TrainingRequest{},
		&ActivityLog{},
	}
}
