// Package inmemdb provides map-backed repositories used in tests and
// local development.
package inmemdb

import (
	"sync"

	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

// queryLimit caps every list read, matching the store-backed repositories.
const queryLimit = 1000

type (
	DB struct {
		tutor   *tutorTable
		student *studentTable
		lesson  *lessonTable
	}

	tutorTable struct {
		table map[string]*tutor.Tutor
		mutex sync.RWMutex
	}

	studentTable struct {
		table map[string]*student.Student
		mutex sync.RWMutex
	}

	lessonTable struct {
		table map[string]*lesson.Lesson
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		tutor:   &tutorTable{table: make(map[string]*tutor.Tutor)},
		student: &studentTable{table: make(map[string]*student.Student)},
		lesson:  &lessonTable{table: make(map[string]*lesson.Lesson)},
	}
}

// Reset empties all tables.
func (db *DB) Reset() {
	db.tutor.mutex.Lock()
	db.tutor.table = make(map[string]*tutor.Tutor)
	db.tutor.mutex.Unlock()

	db.student.mutex.Lock()
	db.student.table = make(map[string]*student.Student)
	db.student.mutex.Unlock()

	db.lesson.mutex.Lock()
	db.lesson.table = make(map[string]*lesson.Lesson)
	db.lesson.mutex.Unlock()
}
