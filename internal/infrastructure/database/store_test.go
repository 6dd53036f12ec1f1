package database

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsSampleData(t *testing.T) {
	s := NewStore()
	Seed(s, nullLogger())

	assert.Equal(t, 4, s.Doctors.Len())
	assert.Equal(t, 2, s.Patients.Len())
	assert.Equal(t, 6, s.Users.Len())
	assert.Equal(t, 3, s.MedicalRecords.Len())
	assert.Equal(t, 2, s.Appointments.Len())

	user, ok := s.Users.Get("arjun.mehta@email.com")
	require.True(t, ok)
	assert.Equal(t, "pat1", user.ID)

	doctor, ok := s.Doctors.Get("doc1")
	require.True(t, ok)
	assert.Equal(t, "Dr. Rajesh Sharma", doctor.Name)
}

func TestSeededUsersMatchProfiles(t *testing.T) {
	s := NewStore()
	Seed(s, nullLogger())

	for _, u := range s.Users.Scan(nil) {
		if u.Role == "patient" {
			assert.True(t, s.Patients.Has(u.ID), u.ID)
		} else {
			assert.True(t, s.Doctors.Has(u.ID), u.ID)
		}
	}
}

func TestTransactionReturnsFnError(t *testing.T) {
	s := NewStore()
	want := errors.New("stop")

	assert.ErrorIs(t, s.Transaction(func() error { return want }), want)
	assert.NoError(t, s.Transaction(func() error { return nil }))
}

func TestStoresAreIsolated(t *testing.T) {
	a, b := NewStore(), NewStore()
	Seed(a, nullLogger())

	assert.Equal(t, 0, b.Patients.Len())
}

func TestSeedLogsThroughInjectedLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	Seed(NewStore(), log)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Sample data seeded", entry.Message)
	assert.Equal(t, 4, entry.Data["doctors"])
}

func nullLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}
