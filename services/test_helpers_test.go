package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JavaChrist/in-shape/config"
	"github.com/JavaChrist/in-shape/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the production
// schema. Also installs it as config.DB for the package-level services.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return db
}

func createStudent(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "x",
		Name:     "Test Student",
		Role:     models.RoleStudent,
		Age:      25,
		Sex:      models.SexMale,
		HeightCm: 175,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCoach(t *testing.T, db *gorm.DB, email, code string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "x",
		Name:      "Test Coach",
		Role:      models.RoleCoach,
		CoachCode: code,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func linkStudent(t *testing.T, db *gorm.DB, student, coach *models.User) {
	t.Helper()
	student.CoachID = &coach.ID
	require.NoError(t, db.Save(student).Error)
}
