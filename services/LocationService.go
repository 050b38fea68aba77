package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

const locationKey = "userLocation"
const locationAskedKey = "locationPermissionAsked"

type LocationService struct {
	str     repository.StoreRepository
	delay   time.Duration
	outcome string
}

// outcome selects what the simulated device reports: success, denied,
// unavailable, timeout or unknown.
func NewLocationService(store repository.StoreRepository, delay time.Duration, outcome string) LocationService {
	return LocationService{
		str:     store,
		delay:   delay,
		outcome: outcome,
	}
}

// DetectLocation simulates the device location request. On success the
// coordinates are persisted and the permission-asked flag is set; on any
// of the four failure kinds nothing is written so the user can retry.
func (ls *LocationService) DetectLocation(ctx context.Context) (loc entities.Location, err error) {
	err = waitFor(ctx, ls.delay)
	if err != nil {
		return
	}
	switch ls.outcome {
	case "denied":
		err = models.ErrLocationDenied
	case "unavailable":
		err = models.ErrLocationUnavailable
	case "timeout":
		err = models.ErrLocationTimeout
	case "success":
		loc = entities.Location{Lat: 28.6139, Lng: 77.2090}
		loc.Address = fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lng)
	default:
		err = models.ErrLocationUnknown
	}
	if err != nil {
		log.Printf("DetectLocation: %v", err)
		return
	}
	err = ls.str.Set(locationKey, loc)
	if err != nil {
		return
	}
	err = ls.str.Set(locationAskedKey, true)
	return
}

func (ls *LocationService) SkipLocation() (err error) {
	err = ls.str.Set(locationAskedKey, true)
	return
}

func (ls *LocationService) LastLocation() (loc entities.Location, exists bool, err error) {
	exists, err = ls.str.Get(locationKey, &loc)
	return
}

func (ls *LocationService) LocationAsked() (asked bool, err error) {
	_, err = ls.str.Get(locationAskedKey, &asked)
	return
}

// PrefillAddress fakes the reverse lookup used by the address form's
// "use current location" button.
func (ls *LocationService) PrefillAddress(ctx context.Context) (prefill models.AddressPrefill, err error) {
	err = waitFor(ctx, ls.delay)
	if err != nil {
		return
	}
	prefill = models.AddressPrefill{
		City:    "New Delhi",
		State:   "Delhi",
		Pincode: "110001",
	}
	return
}

// LocationErrorMessage maps each failure kind to the message the screen
// shows; callers treat all of them as recoverable.
func LocationErrorMessage(err error) string {
	switch err {
	case models.ErrLocationDenied:
		return "Location access denied. You can enable it later in settings."
	case models.ErrLocationUnavailable:
		return "Location information is unavailable."
	case models.ErrLocationTimeout:
		return "Location request timed out. Please try again."
	default:
		return "An unknown error occurred while retrieving location."
	}
}
