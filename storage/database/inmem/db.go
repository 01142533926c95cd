package inmemdb

import (
	"sync"

	"github.com/trezcool/progress/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	studentTable struct {
		sync.RWMutex
		table  map[int]*student.Student
		order  []int // IDs in registration order
		nextID int
	}
)

// Open creates an empty database whose first student ID is `idStart`.
func Open(idStart int) (*DB, error) {
	db := &DB{
		student: &studentTable{
			table:  make(map[int]*student.Student),
			nextID: idStart,
		},
	}
	return db, nil
}
