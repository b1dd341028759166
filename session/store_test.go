package session

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/Bios-Marcel/donatehub/data"
	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestLoadUnknownTokenIsDefault(t *testing.T) {
	store, _ := openStore(t)

	session, err := store.Load(store.Create())
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
	assert.Equal(t, data.ModeDefault, session.Mode)
	assert.Nil(t, session.User)
	assert.Nil(t, session.Ngo)

	_, err = store.Load("")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoginUser(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	user := data.UserProfile{ID: "7", Name: "Ann", Email: "ann@example.com"}
	require.NoError(t, store.Login(token, user, data.ModeUser))

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)
	assert.Equal(t, data.ModeUser, session.Mode)
	require.NotNil(t, session.User)
	assert.Equal(t, user, *session.User)
	assert.Nil(t, session.Ngo)

	keys, err := store.Keys(token)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{KeyIsLoggedIn, KeyMode, KeyUser, KeyUserID}, keys)
}

func TestLoginNgoReplacesUser(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	require.NoError(t, store.Login(token, data.UserProfile{ID: "7"}, data.ModeUser))
	ngo := data.NgoProfile{ID: "3", Name: "Helping Hands", Phone: "9876543210"}
	require.NoError(t, store.Login(token, ngo, data.ModeNgo))

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.Equal(t, data.ModeNgo, session.Mode)
	assert.Nil(t, session.User)
	require.NotNil(t, session.Ngo)
	assert.Equal(t, ngo, *session.Ngo)

	keys, err := store.Keys(token)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{KeyIsLoggedIn, KeyMode, KeyNgo, KeyNgoID}, keys)
}

func TestLoginRejectsRoleMismatch(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	err := store.Login(token, data.UserProfile{ID: "7"}, data.ModeNgo)
	assert.ErrorIs(t, err, ErrRoleMismatch)

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
}

func TestLogoutClearsEverything(t *testing.T) {
	for _, mode := range []data.Mode{data.ModeUser, data.ModeNgo} {
		t.Run(string(mode), func(t *testing.T) {
			store, _ := openStore(t)
			token := store.Create()

			var profile data.Profile = data.UserProfile{ID: "1"}
			if mode == data.ModeNgo {
				profile = data.NgoProfile{ID: "2"}
			}
			require.NoError(t, store.Login(token, profile, mode))
			require.NoError(t, store.Logout(token))

			keys, err := store.Keys(token)
			require.NoError(t, err)
			assert.Empty(t, keys)

			session, err := store.Load(token)
			require.NoError(t, err)
			assert.False(t, session.IsLoggedIn)
			assert.Equal(t, data.ModeDefault, session.Mode)
			assert.Nil(t, session.User)
			assert.Nil(t, session.Ngo)
		})
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	store, _ := openStore(t)
	assert.NoError(t, store.Logout(store.Create()))
}

func TestSetModeKeepsLoginState(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	require.NoError(t, store.SetMode(token, data.ModeNgo))
	session, err := store.Load(token)
	require.NoError(t, err)
	assert.Equal(t, data.ModeNgo, session.Mode)
	assert.False(t, session.IsLoggedIn)

	require.NoError(t, store.Login(token, data.UserProfile{ID: "1"}, data.ModeUser))
	require.NoError(t, store.SetMode(token, data.ModeNgo))
	session, err = store.Load(token)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)
	assert.Equal(t, data.ModeNgo, session.Mode)
}

func TestUpdateUser(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	assert.ErrorIs(t, store.UpdateUser(token, data.UserProfile{ID: "1"}), ErrInvalidSession)

	require.NoError(t, store.Login(token, data.UserProfile{ID: "1", Name: "Ann"}, data.ModeUser))
	require.NoError(t, store.UpdateUser(token, data.UserProfile{ID: "1", Name: "Anna", Email: "anna@example.com"}))

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.Equal(t, "Anna", session.User.Name)
	assert.Equal(t, "anna@example.com", session.User.Email)
}

func TestLoadCorruptProfile(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()
	require.NoError(t, store.Login(token, data.UserProfile{ID: "1", Name: "Ann"}, data.ModeUser))
	require.NoError(t, store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Bucket([]byte(token)).Put([]byte(KeyUser), []byte("{not json"))
	}))

	_, err := store.Load(token)
	assert.ErrorIs(t, err, ErrCorruptSession)

	require.NoError(t, store.Logout(token))
	session, err := store.Load(token)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
}

func TestSessionsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := Open(path)
	require.NoError(t, err)
	token := store.Create()
	require.NoError(t, store.Login(token, data.NgoProfile{ID: "3"}, data.ModeNgo))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)
	assert.Equal(t, data.ModeNgo, session.Mode)
	assert.Equal(t, data.ID("3"), session.Ngo.ID)
}

func TestListAndPurge(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SetMode(store.Create(), data.ModeUser))
	require.NoError(t, store.Login(store.Create(), data.NgoProfile{ID: "3"}, data.ModeNgo))

	sessions, err := store.List()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	count, err := store.Purge()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	sessions, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestConcurrentWritesLastWins(t *testing.T) {
	store, _ := openStore(t)
	token := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := data.ModeUser
			if i%2 == 0 {
				mode = data.ModeNgo
			}
			assert.NoError(t, store.SetMode(token, mode))
		}(i)
	}
	wg.Wait()

	session, err := store.Load(token)
	require.NoError(t, err)
	assert.Contains(t, []data.Mode{data.ModeUser, data.ModeNgo}, session.Mode)
}
