// Package session persists the per browser state (login flag, mode and
// profile) in a bolt database. Entries never expire on their own, they live
// until the browser logs out or an operator purges them.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Bios-Marcel/donatehub/data"
	"github.com/boltdb/bolt"
	"github.com/gofrs/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrRoleMismatch   = errors.New("profile does not belong to role")
	// ErrCorruptSession means a stored profile can't be decoded anymore.
	ErrCorruptSession = errors.New("corrupt session")
)

var sessionsBucket = []byte("Sessions")

// The keys a browser session is made of.
const (
	KeyIsLoggedIn = "isLoggedIn"
	KeyMode       = "mode"
	KeyUser       = "user"
	KeyUserID     = "userId"
	KeyNgo        = "ngo"
	KeyNgoID      = "ngoId"
)

// Store is safe for concurrent use. bolt serializes writers, so concurrent
// writes to the same browser session resolve as last write wins.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cant open session database: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, errCreate := tx.CreateBucketIfNotExists(sessionsBucket)
		return errCreate
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("cant create session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (store *Store) Close() error {
	return store.db.Close()
}

// Create mints a token for a browser that has none yet. Nothing is written
// until the browser switches mode or logs in.
func (store *Store) Create() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Load reads the persisted state of a browser. Unknown tokens load as a
// logged out session in the default mode. A stored profile that can't be
// decoded fails with ErrCorruptSession.
func (store *Store) Load(token string) (*data.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session := data.NewSession(token)
	err := store.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket).Bucket([]byte(token))
		if bucket == nil {
			return nil
		}
		return readSession(bucket, session)
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func readSession(bucket *bolt.Bucket, session *data.Session) error {
	session.IsLoggedIn = string(bucket.Get([]byte(KeyIsLoggedIn))) == "true"
	session.Mode = data.ParseMode(string(bucket.Get([]byte(KeyMode))))

	if rawUser := bucket.Get([]byte(KeyUser)); rawUser != nil {
		var user data.UserProfile
		if errParse := json.Unmarshal(rawUser, &user); errParse != nil {
			return fmt.Errorf("%w: cant parse user: %w", ErrCorruptSession, errParse)
		}
		session.User = &user
	}

	if rawNgo := bucket.Get([]byte(KeyNgo)); rawNgo != nil {
		var ngo data.NgoProfile
		if errParse := json.Unmarshal(rawNgo, &ngo); errParse != nil {
			return fmt.Errorf("%w: cant parse ngo: %w", ErrCorruptSession, errParse)
		}
		session.Ngo = &ngo
	}

	return nil
}

// Login stores a successful login. All keys are written in one transaction,
// so readers either see the previous state or the complete new one. The
// profile of the other role is dropped.
func (store *Store) Login(token string, profile data.Profile, role data.Mode) error {
	if token == "" {
		return ErrInvalidSession
	}
	if profile == nil || profile.Role() != role {
		return ErrRoleMismatch
	}

	rawProfile, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	profileKey, idKey := KeyUser, KeyUserID
	staleKey, staleIDKey := KeyNgo, KeyNgoID
	if role == data.ModeNgo {
		profileKey, idKey = KeyNgo, KeyNgoID
		staleKey, staleIDKey = KeyUser, KeyUserID
	}

	return store.db.Update(func(tx *bolt.Tx) error {
		bucket, errCreate := tx.Bucket(sessionsBucket).CreateBucketIfNotExists([]byte(token))
		if errCreate != nil {
			return errCreate
		}

		for _, key := range []string{staleKey, staleIDKey} {
			if errDelete := bucket.Delete([]byte(key)); errDelete != nil {
				return errDelete
			}
		}

		return putAll(bucket, map[string][]byte{
			KeyIsLoggedIn: []byte("true"),
			KeyMode:       []byte(role),
			profileKey:    rawProfile,
			idKey:         []byte(profile.ProfileID()),
		})
	})
}

// SetMode records the role a browser intends to navigate as. It does not
// touch the login state.
func (store *Store) SetMode(token string, mode data.Mode) error {
	if token == "" {
		return ErrInvalidSession
	}

	return store.db.Update(func(tx *bolt.Tx) error {
		bucket, errCreate := tx.Bucket(sessionsBucket).CreateBucketIfNotExists([]byte(token))
		if errCreate != nil {
			return errCreate
		}
		return bucket.Put([]byte(KeyMode), []byte(mode))
	})
}

// UpdateUser replaces the stored donor profile after a profile edit.
func (store *Store) UpdateUser(token string, user data.UserProfile) error {
	if token == "" {
		return ErrInvalidSession
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket).Bucket([]byte(token))
		if bucket == nil {
			return ErrInvalidSession
		}
		return putAll(bucket, map[string][]byte{
			KeyUser:   rawUser,
			KeyUserID: []byte(user.ID),
		})
	})
}

// Logout removes every key of the browser session. The next Load reports a
// logged out session in the default mode.
func (store *Store) Logout(token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	return store.db.Update(func(tx *bolt.Tx) error {
		errDelete := tx.Bucket(sessionsBucket).DeleteBucket([]byte(token))
		if errDelete == bolt.ErrBucketNotFound {
			return nil
		}
		return errDelete
	})
}

// Keys lists the keys currently stored for a browser session.
func (store *Store) Keys(token string) ([]string, error) {
	var keys []string
	err := store.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket).Bucket([]byte(token))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(key, _ []byte) error {
			keys = append(keys, string(key))
			return nil
		})
	})
	return keys, err
}

// List returns every stored browser session.
func (store *Store) List() ([]*data.Session, error) {
	var sessions []*data.Session
	err := store.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(sessionsBucket)
		return root.ForEach(func(token, value []byte) error {
			// Only nested buckets are sessions.
			if value != nil {
				return nil
			}
			session := data.NewSession(string(token))
			if errRead := readSession(root.Bucket(token), session); errRead != nil {
				return fmt.Errorf("session %s: %w", token, errRead)
			}
			sessions = append(sessions, session)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Purge drops all stored browser sessions and reports how many there were.
func (store *Store) Purge() (int, error) {
	var count int
	err := store.db.Update(func(tx *bolt.Tx) error {
		if errCount := tx.Bucket(sessionsBucket).ForEach(func(_, value []byte) error {
			if value == nil {
				count++
			}
			return nil
		}); errCount != nil {
			return errCount
		}
		if errDelete := tx.DeleteBucket(sessionsBucket); errDelete != nil {
			return errDelete
		}
		_, errCreate := tx.CreateBucket(sessionsBucket)
		return errCreate
	})
	return count, err
}

func putAll(bucket *bolt.Bucket, values map[string][]byte) error {
	for key, value := range values {
		if errPut := bucket.Put([]byte(key), value); errPut != nil {
			return errPut
		}
	}
	return nil
}
