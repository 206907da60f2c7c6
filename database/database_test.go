package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "x", true)
	assert.Error(t, err)
}

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	for _, table := range []string{"users", "bookings", "preferences", "consents", "feedback", "destination_searches"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Feedback{}, "uq_feedback_user_item"))
}

func TestDuplicateKeyIsTranslated(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	first := models.User{ID: "user:1", FirstName: "Amal", LastName: "I", Email: "amal@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(&first).Error)

	dup := models.User{ID: "user:2", FirstName: "Amal", LastName: "I", Email: "amal@example.com", HashedPassword: "x"}
	err = db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSeedDemoBookingsOnce(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	today, _ := models.ParseDate("2026-05-10")

	n, err := SeedDemoBookings(db, today)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = SeedDemoBookings(db, today)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var consent models.Consent
	require.NoError(t, db.First(&consent, "user_id = ?", DemoOwnerID).Error)
	assert.True(t, consent.DestinationRecosEnabled)
}
