package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix = "post:"
	UserKeyPrefix = "user:"

	// Index keys enforcing uniqueness; the value is the owning entity's ID.
	PostSlugIndexPrefix  = "idx:post-slug:"
	PostTitleIndexPrefix = "idx:post-title:"
	UserEmailIndexPrefix = "idx:user-email:"
	UserNameIndexPrefix  = "idx:user-name:"
)

// claimIndex reserves an index key inside txn, failing with ErrDuplicate when
// the key is already held by a different entity.
func claimIndex(txn *badger.Txn, key, id string) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return txn.Set([]byte(key), []byte(id))
	}
	if err != nil {
		return err
	}
	var holder string
	err = item.Value(func(val []byte) error {
		holder = string(val)
		return nil
	})
	if err != nil {
		return err
	}
	if holder != id {
		return ErrDuplicate
	}
	return nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
