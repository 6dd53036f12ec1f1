package database

import (
	"sync"
	"sync/atomic"

	"go-healthcare-records/internal/domain/entity"
)

// Store owns every table of the service. Each test or process builds its own.
type Store struct {
	Users          *Table[entity.User] // key: email
	Patients       *Table[entity.Patient]
	Doctors        *Table[entity.Doctor]
	MedicalRecords *Table[entity.MedicalRecord]
	Appointments   *Table[entity.Appointment]

	// PatientSeq backs patient id allocation; see repository.PatientRepository.NextID.
	PatientSeq atomic.Int64

	txMu sync.Mutex
}

// NewStore initializes an empty store.
func NewStore() *Store {
	return &Store{
		Users:          NewTable[entity.User](),
		Patients:       NewTable[entity.Patient](),
		Doctors:        NewTable[entity.Doctor](),
		MedicalRecords: NewTable[entity.MedicalRecord](),
		Appointments:   NewTable[entity.Appointment](),
	}
}

// Transaction serializes multi-table writers. fn must check its preconditions before
// writing anything; there is no rollback.
func (s *Store) Transaction(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn()
}
