package services

import (
	"errors"
	"testing"
	"tradehub/entities"
	"tradehub/models"
)

func newAddressService() (AddressService, *fakeAddressRepo) {
	ar := &fakeAddressRepo{}
	return NewAddressService(ar), ar
}

func validAddressReq(name string) models.AddressRequest {
	return models.AddressRequest{
		Name:        name,
		Phone:       "9876543210",
		Pincode:     "110001",
		City:        "New Delhi",
		State:       "Delhi",
		Street:      "12 Market Road",
		AddressType: "home",
	}
}

func countDefaults(addrs []entities.Address) (n int) {
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return
}

func TestAddFirstAddressBecomesDefault(t *testing.T) {
	as, _ := newAddressService()

	addr, err := as.AddAddress(validAddressReq("First"))
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if !addr.IsDefault {
		t.Fatal("first address must be the default")
	}
	if addr.Id == "" {
		t.Fatal("address id must be assigned")
	}
}

func TestAddSecondAddressKeepsSingleDefault(t *testing.T) {
	as, _ := newAddressService()
	as.AddAddress(validAddressReq("First"))

	second, err := as.AddAddress(validAddressReq("Second"))
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if second.IsDefault {
		t.Fatal("second address must not steal the default")
	}
	addrs, _ := as.ListAddresses()
	if countDefaults(addrs) != 1 {
		t.Fatalf("expected exactly one default, got %d", countDefaults(addrs))
	}
}

func TestSetDefaultAddress(t *testing.T) {
	as, _ := newAddressService()
	as.AddAddress(validAddressReq("First"))
	second, _ := as.AddAddress(validAddressReq("Second"))

	if err := as.SetDefaultAddress(second.Id); err != nil {
		t.Fatalf("SetDefaultAddress: %v", err)
	}
	addrs, _ := as.ListAddresses()
	if countDefaults(addrs) != 1 {
		t.Fatalf("expected exactly one default, got %d", countDefaults(addrs))
	}
	def, ok := pickDefault(addrs)
	if !ok || def.Id != second.Id {
		t.Fatalf("default is %+v, want id %s", def, second.Id)
	}
}

func TestSetDefaultAddressMissing(t *testing.T) {
	as, _ := newAddressService()
	as.AddAddress(validAddressReq("First"))

	err := as.SetDefaultAddress("nope")
	if !errors.Is(err, models.ErrNotFoundError) {
		t.Fatalf("expected ErrNotFoundError, got %v", err)
	}
}

func TestDeleteDefaultPromotesFirstRemaining(t *testing.T) {
	as, _ := newAddressService()
	first, _ := as.AddAddress(validAddressReq("First"))
	second, _ := as.AddAddress(validAddressReq("Second"))
	as.AddAddress(validAddressReq("Third"))

	if err := as.DeleteAddress(first.Id); err != nil {
		t.Fatalf("DeleteAddress: %v", err)
	}
	addrs, _ := as.ListAddresses()
	if len(addrs) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(addrs))
	}
	if countDefaults(addrs) != 1 {
		t.Fatalf("expected exactly one default, got %d", countDefaults(addrs))
	}
	if !addrs[0].IsDefault || addrs[0].Id != second.Id {
		t.Fatalf("expected %s promoted to default, got %+v", second.Id, addrs[0])
	}
}

func TestDeleteNonDefaultKeepsDefault(t *testing.T) {
	as, _ := newAddressService()
	first, _ := as.AddAddress(validAddressReq("First"))
	second, _ := as.AddAddress(validAddressReq("Second"))

	if err := as.DeleteAddress(second.Id); err != nil {
		t.Fatalf("DeleteAddress: %v", err)
	}
	addrs, _ := as.ListAddresses()
	if len(addrs) != 1 || !addrs[0].IsDefault || addrs[0].Id != first.Id {
		t.Fatalf("unexpected addresses after delete: %+v", addrs)
	}
}

func TestDeleteLastAddressRejected(t *testing.T) {
	as, _ := newAddressService()
	only, _ := as.AddAddress(validAddressReq("Only"))

	err := as.DeleteAddress(only.Id)
	if !errors.Is(err, models.ErrLastAddress) {
		t.Fatalf("expected ErrLastAddress, got %v", err)
	}
	addrs, _ := as.ListAddresses()
	if len(addrs) != 1 {
		t.Fatalf("address list must be unchanged, got %+v", addrs)
	}
}

func TestDeleteMissingAddress(t *testing.T) {
	as, _ := newAddressService()
	as.AddAddress(validAddressReq("Only"))

	err := as.DeleteAddress("nope")
	if !errors.Is(err, models.ErrNotFoundError) {
		t.Fatalf("expected ErrNotFoundError, got %v", err)
	}
}

func TestUpdateAddressKeepsDefaultFlag(t *testing.T) {
	as, _ := newAddressService()
	first, _ := as.AddAddress(validAddressReq("First"))

	req := validAddressReq("Renamed")
	req.AddressType = "office"
	updated, err := as.UpdateAddress(first.Id, req)
	if err != nil {
		t.Fatalf("UpdateAddress: %v", err)
	}
	if updated.Name != "Renamed" || updated.AddressType != "office" {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if !updated.IsDefault {
		t.Fatal("editing must not clear the default flag")
	}
}

func TestUpdateMissingAddress(t *testing.T) {
	as, _ := newAddressService()

	_, err := as.UpdateAddress("nope", validAddressReq("X"))
	if !errors.Is(err, models.ErrNotFoundError) {
		t.Fatalf("expected ErrNotFoundError, got %v", err)
	}
}

func TestAddAddressValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AddressRequest)
	}{
		{"missing name", func(r *models.AddressRequest) { r.Name = "" }},
		{"missing street", func(r *models.AddressRequest) { r.Street = "" }},
		{"short phone", func(r *models.AddressRequest) { r.Phone = "12345" }},
		{"bad pincode", func(r *models.AddressRequest) { r.Pincode = "11000" }},
		{"unknown type", func(r *models.AddressRequest) { r.AddressType = "warehouse" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as, _ := newAddressService()
			req := validAddressReq("X")
			tt.mutate(&req)
			_, err := as.AddAddress(req)
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestListAddressesEmpty(t *testing.T) {
	as, _ := newAddressService()

	addrs, err := as.ListAddresses()
	if err != nil {
		t.Fatalf("ListAddresses: %v", err)
	}
	if addrs == nil {
		t.Fatal("list must not be nil when empty")
	}
}
