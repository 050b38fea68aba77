package models

import (
	"errors"
)

var ErrBadRequest = errors.New("bad request")
var ErrUnautorized = errors.New("unautorized")
var ErrServerError = errors.New("server error")
var ErrNotFoundError = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")
var ErrValidation = errors.New("validation failed")
var ErrLastAddress = errors.New("cannot delete last address")

var ErrLocationDenied = errors.New("location permission denied")
var ErrLocationUnavailable = errors.New("location unavailable")
var ErrLocationTimeout = errors.New("location timeout")
var ErrLocationUnknown = errors.New("location unknown error")

type PhoneRequest struct {
	Phone string `json:"phone"`
}

type OtpRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type CartRequest struct {
	ProductId string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type AddressRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Pincode     string `json:"pincode"`
	City        string `json:"city"`
	State       string `json:"state"`
	Street      string `json:"street"`
	Landmark    string `json:"landmark,omitempty"`
	AddressType string `json:"addressType"`
}

type NavigateRequest struct {
	Screen    string `json:"screen"`
	ProductId string `json:"product_id,omitempty"`
	Category  string `json:"category,omitempty"`
}

type AddressPrefill struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type ProfileData struct {
	Phone     string `json:"phone"`
	Addresses int    `json:"addresses"`
}
