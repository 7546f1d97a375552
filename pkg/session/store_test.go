package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	t.Parallel()

	st := NewMemoryStore()

	creds, err := st.Load()
	require.NoError(t, err)
	require.True(t, creds.Empty())

	want := Credentials{AccessToken: "acc-1", RefreshToken: "ref-1"}
	require.NoError(t, st.Save(want))

	got, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, st.Clear())

	got, err = st.Load()
	require.NoError(t, err)
	require.True(t, got.Empty())
}

func TestFileStore_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	st := NewFileStore(path)

	want := Credentials{AccessToken: "acc-1", RefreshToken: "ref-1"}
	require.NoError(t, st.Save(want))

	got, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Повторное сохранение перезаписывает файл целиком.
	want.AccessToken = "acc-2"
	require.NoError(t, st.Save(want))

	got, err = st.Load()
	require.NoError(t, err)
	require.Equal(t, "acc-2", got.AccessToken)
	require.Equal(t, "ref-1", got.RefreshToken)
}

// Отсутствующий файл - пустая сессия, а не ошибка: так выглядит первый
// запуск приложения.
func TestFileStore_MissingFile_EmptyCredentials(t *testing.T) {
	t.Parallel()

	st := NewFileStore(filepath.Join(t.TempDir(), "nope", "session.json"))

	creds, err := st.Load()
	require.NoError(t, err)
	require.True(t, creds.Empty())

	// Clear по отсутствующему файлу тоже не ошибка.
	require.NoError(t, st.Clear())
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "session.json")
	st := NewFileStore(path)

	require.NoError(t, st.Save(Credentials{AccessToken: "acc"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

// Токены - секрет: файл не должен читаться другими пользователями.
func TestFileStore_FilePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	st := NewFileStore(path)
	require.NoError(t, st.Save(Credentials{AccessToken: "acc"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptFile_Error(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
}

func TestFileStore_Clear_RemovesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	st := NewFileStore(path)
	require.NoError(t, st.Save(Credentials{AccessToken: "acc"}))

	require.NoError(t, st.Clear())

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
