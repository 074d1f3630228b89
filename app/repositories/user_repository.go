package repositories

import (
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create persists a new user, enforcing email and username uniqueness.
func (r *BadgerUserRepository) Create(user *models.User) error {
	user.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		if err := claimIndex(txn, UserEmailIndexPrefix+user.Email, user.ID); err != nil {
			return err
		}
		if err := claimIndex(txn, UserNameIndexPrefix+user.Username, user.ID); err != nil {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set([]byte(UserKeyPrefix+user.ID), data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(UserKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail resolves the email index, then loads the user record.
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var id string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(UserEmailIndexPrefix + email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Update rewrites an existing user, moving the email and username indexes
// when those fields changed.
func (r *BadgerUserRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()

	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(UserKeyPrefix + user.ID)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.User
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		})
		if err != nil {
			return err
		}

		if existing.Email != user.Email {
			if err := claimIndex(txn, UserEmailIndexPrefix+user.Email, user.ID); err != nil {
				return err
			}
			if err := txn.Delete([]byte(UserEmailIndexPrefix + existing.Email)); err != nil {
				return err
			}
		}
		if existing.Username != user.Username {
			if err := claimIndex(txn, UserNameIndexPrefix+user.Username, user.ID); err != nil {
				return err
			}
			if err := txn.Delete([]byte(UserNameIndexPrefix + existing.Username)); err != nil {
				return err
			}
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a user and its index keys by ID
func (r *BadgerUserRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(UserKeyPrefix + id)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var user models.User
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
		if err != nil {
			return err
		}

		if err := txn.Delete([]byte(UserEmailIndexPrefix + user.Email)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(UserNameIndexPrefix + user.Username)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
