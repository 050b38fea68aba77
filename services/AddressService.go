package services

import (
	"log"
	"regexp"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"

	"github.com/google/uuid"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

var addressTypes = map[string]bool{
	"home":   true,
	"office": true,
	"other":  true,
}

type AddressService struct {
	ar repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return AddressService{
		ar: addressRepo,
	}
}

func (as *AddressService) ListAddresses() (addrs []entities.Address, err error) {
	addrs, err = as.ar.LoadAddresses()
	if addrs == nil {
		addrs = []entities.Address{}
	}
	return
}

func (as *AddressService) AddAddress(req models.AddressRequest) (addr entities.Address, err error) {
	err = validateAddress(req)
	if err != nil {
		return
	}
	addrs, e := as.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	addr = entities.Address{
		Id:          uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		Pincode:     req.Pincode,
		City:        req.City,
		State:       req.State,
		Street:      req.Street,
		Landmark:    req.Landmark,
		AddressType: req.AddressType,
		IsDefault:   len(addrs) == 0,
	}
	addrs = append(addrs, addr)
	err = as.ar.SaveAddresses(addrs)
	return
}

func (as *AddressService) UpdateAddress(addressId string, req models.AddressRequest) (addr entities.Address, err error) {
	err = validateAddress(req)
	if err != nil {
		return
	}
	addrs, e := as.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	for i := range addrs {
		if addrs[i].Id == addressId {
			addrs[i].Name = req.Name
			addrs[i].Phone = req.Phone
			addrs[i].Pincode = req.Pincode
			addrs[i].City = req.City
			addrs[i].State = req.State
			addrs[i].Street = req.Street
			addrs[i].Landmark = req.Landmark
			addrs[i].AddressType = req.AddressType
			addr = addrs[i]
			err = as.ar.SaveAddresses(addrs)
			return
		}
	}
	log.Printf("UpdateAddress: address does not exist")
	err = models.ErrNotFoundError
	return
}

// DeleteAddress refuses to remove the only remaining address. Deleting the
// default promotes the first remaining entry.
func (as *AddressService) DeleteAddress(addressId string) (err error) {
	addrs, e := as.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	idx := -1
	for i := range addrs {
		if addrs[i].Id == addressId {
			idx = i
			break
		}
	}
	if idx < 0 {
		err = models.ErrNotFoundError
		return
	}
	if len(addrs) == 1 {
		log.Printf("DeleteAddress: refusing to delete the last address")
		err = models.ErrLastAddress
		return
	}
	wasDefault := addrs[idx].IsDefault
	addrs = append(addrs[:idx], addrs[idx+1:]...)
	if wasDefault {
		addrs[0].IsDefault = true
	}
	err = as.ar.SaveAddresses(addrs)
	return
}

func (as *AddressService) SetDefaultAddress(addressId string) (err error) {
	addrs, e := as.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	found := false
	for i := range addrs {
		addrs[i].IsDefault = addrs[i].Id == addressId
		if addrs[i].IsDefault {
			found = true
		}
	}
	if !found {
		err = models.ErrNotFoundError
		return
	}
	err = as.ar.SaveAddresses(addrs)
	return
}

// DefaultAddress is derived on read; there is no separately stored
// "current address" copy to drift out of sync.
func (as *AddressService) DefaultAddress() (addr entities.Address, exists bool, err error) {
	addrs, e := as.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	addr, exists = pickDefault(addrs)
	return
}

func pickDefault(addrs []entities.Address) (addr entities.Address, exists bool) {
	for _, a := range addrs {
		if a.IsDefault {
			return a, true
		}
	}
	if len(addrs) > 0 {
		return addrs[0], true
	}
	return
}

func validateAddress(req models.AddressRequest) (err error) {
	if req.Name == "" || req.City == "" || req.State == "" || req.Street == "" {
		log.Printf("validateAddress: required field missing")
		err = models.ErrValidation
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		log.Printf("validateAddress: phone must be 10 digits")
		err = models.ErrValidation
		return
	}
	if !pincodePattern.MatchString(req.Pincode) {
		log.Printf("validateAddress: pincode must be 6 digits")
		err = models.ErrValidation
		return
	}
	if !addressTypes[req.AddressType] {
		log.Printf("validateAddress: unknown address type %q", req.AddressType)
		err = models.ErrValidation
		return
	}
	return
}
