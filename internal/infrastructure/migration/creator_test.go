package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add users table", "add_users_table"},
		{"Add-Users--Table", "add_users_table"},
		{"  add users  ", "add_users"},
		{"v2!@#schema", "v2schema"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in))
	}
}

func TestCreateAndListMigrations(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add invoices table")
	require.NoError(t, err)
	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "add_invoices_table")
}

func TestListMigrations_MissingDirIsEmpty(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
