package auth_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz/internal/domain/models"
	"quiz/internal/lib/logger/handlers/slogdiscard"
	"quiz/internal/services/auth"
	"quiz/internal/storage"
	"quiz/internal/storage/memory"
)

const passDefaultLen = 10

func newAuth(t *testing.T, usersCap int) *auth.Auth {
	t.Helper()

	st, err := memory.New(usersCap, 1, 0)
	require.NoError(t, err)

	a := auth.New(slogdiscard.NewDiscardLogger(), st, st)
	require.NoError(t, a.Seed(context.Background()))

	return a
}

func randomFakePassword() string {
	return gofakeit.Password(true, true, true, true, false, passDefaultLen)
}

func TestLogin_SeededUsers(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	tests := []struct {
		username string
		password string
		role     models.Role
	}{
		{"user1", "pass1", models.RoleStudent},
		{"user2", "pass2", models.RoleTeacher},
		{"user3", "pass3", models.RoleStudent},
		{"user4", "pass4", models.RoleStudent},
		{"user5", "pass5", models.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			u, err := a.Login(ctx, tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.role, u.Role)
			assert.Equal(t, tt.username, u.Username)
		})
	}
}

func TestLogin_FailCases(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "Wrong password", username: "user2", password: "pass1"},
		{name: "Wrong username", username: "user9", password: "pass2"},
		{name: "Case differs", username: "USER2", password: "pass2"},
		{name: "Password case differs", username: "user2", password: "PASS2"},
		{name: "Both empty", username: "", password: ""},
		{name: "Random", username: gofakeit.Username(), password: randomFakePassword()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Login(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.ErrorContains(t, err, "user not found")
		})
	}
}

func TestRegisterLogin_HappyPath(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	username := gofakeit.Username()
	pass := randomFakePassword()

	require.NoError(t, a.RegisterNewUser(ctx, username, pass))

	u, err := a.Login(ctx, username, pass)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, u.Role)
}

func TestRegisterLogin_DuplicatedRegistration(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	err := a.RegisterNewUser(ctx, "user1", randomFakePassword())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrUserExists)
	assert.ErrorContains(t, err, "user already exists")

	// the original password still works
	_, err = a.Login(ctx, "user1", "pass1")
	require.NoError(t, err)
}

func TestRegister_UsernamesStayUnique(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	pool := []string{gofakeit.Username() + "a", gofakeit.Username() + "b", gofakeit.Username() + "c"}
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		name := pool[gofakeit.Number(0, len(pool)-1)]

		err := a.RegisterNewUser(ctx, name, randomFakePassword())
		if seen[name] {
			assert.ErrorIs(t, err, auth.ErrUserExists)
		} else {
			assert.NoError(t, err)
		}
		seen[name] = true
	}
}

func TestRegister_FailCases(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 10)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "Register with Empty Password", username: gofakeit.Username(), password: ""},
		{name: "Register with Empty Username", username: "", password: randomFakePassword()},
		{name: "Register with Both Empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.RegisterNewUser(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, auth.ErrEmptyCredentials)
		})
	}
}

func TestRegister_DirectoryFull(t *testing.T) {
	ctx := context.Background()
	a := newAuth(t, 6)

	require.NoError(t, a.RegisterNewUser(ctx, "first", "p"))

	err := a.RegisterNewUser(ctx, "second", "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)

	_, err = a.Login(ctx, "second", "p")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSeed_DirectoryTooSmall(t *testing.T) {
	st, err := memory.New(3, 1, 0)
	require.NoError(t, err)

	a := auth.New(slogdiscard.NewDiscardLogger(), st, st)

	err = a.Seed(context.Background())
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
}
