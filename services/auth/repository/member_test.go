package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumnNames = []string{
	"id", "phone", "full_name", "membership_number", "balance", "branch_name", "status", "role", "is_active",
	"password_hash", "has_password", "password_updated_at", "must_change_password",
	"face_id_hash", "has_face_id", "face_id_enabled_at",
	"joined_at", "last_login_at", "last_login_method",
}

func setupMemberRepoTest(t *testing.T) (*MemberRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := NewMemberRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func memberRow(id, phone string, joined time.Time) []driver.Value {
	return []driver.Value{
		id, phone, "Fahad Al-Shuail", "M-1001", 250.5, "Riyadh", "active", "member", true,
		"$2a$12$hash", true, joined, false,
		nil, false, nil,
		joined, nil, nil,
	}
}

func TestPhoneVariants(t *testing.T) {
	assert.Equal(t, []string{"966501234567", "+966501234567", "0501234567"}, PhoneVariants("966501234567"))
	assert.Equal(t, []string{"96550123456", "+96550123456", "50123456"}, PhoneVariants("96550123456"))
	assert.Equal(t, []string{"12025550123", "+12025550123"}, PhoneVariants("12025550123"))
}

func TestGetMemberByPhone(t *testing.T) {
	joined := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, member *models.Member, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(memberColumnNames).AddRow(memberRow("m-1", "0501234567", joined)...)
				mock.ExpectQuery("^SELECT (.+) FROM members WHERE phone IN").
					WithArgs("966501234567", "+966501234567", "0501234567").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, member *models.Member, err error) {
				require.NoError(t, err)
				assert.Equal(t, "m-1", member.ID)
				assert.Equal(t, "M-1001", member.MembershipNumber.String)
				assert.True(t, member.HasPassword)
				assert.False(t, member.FaceIDHash.Valid)
				assert.Equal(t, joined, member.JoinedAt.Time)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM members WHERE phone IN").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, member *models.Member, err error) {
				assert.Nil(t, member)
				assert.True(t, apperror.Is(err, apperror.KindNotFound))
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM members WHERE phone IN").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, member *models.Member, err error) {
				assert.Nil(t, member)
				require.Error(t, err)
				assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
				assert.Contains(t, err.Error(), "connection reset")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMemberRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			member, err := repo.GetMemberByPhone(context.Background(), "966501234567")

			tc.assertFunc(t, member, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMemberByID(t *testing.T) {
	repo, mock, cleanup := setupMemberRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(memberColumnNames).AddRow(memberRow("m-2", "966501234567", time.Now())...)
	mock.ExpectQuery("^SELECT (.+) FROM members WHERE id = \\$1").
		WithArgs("m-2").
		WillReturnRows(rows)

	member, err := repo.GetMemberByID(context.Background(), "m-2")

	require.NoError(t, err)
	assert.Equal(t, "m-2", member.ID)
	assert.Equal(t, "Riyadh", member.Profile().BranchName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberCredentialUpdates(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		args  []driver.Value
		call  func(repo *MemberRepo) error
	}{
		{
			name:  "Record login",
			query: "UPDATE members SET last_login_at = NOW\\(\\), last_login_method = \\$2",
			args:  []driver.Value{"m-1", "password"},
			call:  func(repo *MemberRepo) error { return repo.RecordLogin(context.Background(), "m-1", "password") },
		},
		{
			name:  "Set password",
			query: "UPDATE members SET password_hash = \\$2, has_password = TRUE",
			args:  []driver.Value{"m-1", "$2a$12$new"},
			call:  func(repo *MemberRepo) error { return repo.SetPasswordHash(context.Background(), "m-1", "$2a$12$new") },
		},
		{
			name:  "Clear password",
			query: "UPDATE members SET password_hash = NULL, has_password = FALSE",
			args:  []driver.Value{"m-1"},
			call:  func(repo *MemberRepo) error { return repo.ClearPassword(context.Background(), "m-1") },
		},
		{
			name:  "Set face id",
			query: "UPDATE members SET face_id_hash = \\$2, has_face_id = TRUE",
			args:  []driver.Value{"m-1", "digest"},
			call:  func(repo *MemberRepo) error { return repo.SetFaceIDHash(context.Background(), "m-1", "digest") },
		},
		{
			name:  "Clear face id",
			query: "UPDATE members SET face_id_hash = NULL, has_face_id = FALSE",
			args:  []driver.Value{"m-1"},
			call:  func(repo *MemberRepo) error { return repo.ClearFaceID(context.Background(), "m-1") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMemberRepoTest(t)
			defer cleanup()

			mock.ExpectExec(tc.query).
				WithArgs(tc.args...).
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, tc.call(repo))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemberUpdate_NoRows(t *testing.T) {
	repo, mock, cleanup := setupMemberRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE members").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearFaceID(context.Background(), "missing")

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberUpdate_ExecError(t *testing.T) {
	repo, mock, cleanup := setupMemberRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE members").
		WillReturnError(errors.New("deadlock detected"))

	err := repo.RecordLogin(context.Background(), "m-1", "otp")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record login")
}
