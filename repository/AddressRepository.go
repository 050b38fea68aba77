package repository

import (
	"errors"
	"log"
	"tradehub/entities"

	"github.com/google/uuid"
)

const addressesKey = "userAddresses"

// legacyAddressKey held a single address before the collection existed.
// It is read once for migration and then removed; nothing writes it back.
const legacyAddressKey = "userAddress"

type AddressRepository interface {
	LoadAddresses() (addrs []entities.Address, err error)
	SaveAddresses(addrs []entities.Address) (err error)
}

type AddressRepo struct {
	store StoreRepository
}

func NewAddressRepository(store StoreRepository) (AddressRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &AddressRepo{
		store: store,
	}, nil
}

func (a *AddressRepo) LoadAddresses() (addrs []entities.Address, err error) {
	exists, err := a.store.Get(addressesKey, &addrs)
	if err != nil {
		return
	}
	if exists {
		return
	}

	var legacy entities.Address
	exists, err = a.store.Get(legacyAddressKey, &legacy)
	if err != nil || !exists {
		return
	}
	log.Printf("LoadAddresses: migrating legacy single address")
	legacy.Id = uuid.NewString()
	legacy.IsDefault = true
	addrs = []entities.Address{legacy}
	err = a.store.Set(addressesKey, addrs)
	if err != nil {
		return
	}
	err = a.store.Delete(legacyAddressKey)
	return
}

func (a *AddressRepo) SaveAddresses(addrs []entities.Address) (err error) {
	err = a.store.Set(addressesKey, addrs)
	return
}
