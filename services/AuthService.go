package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"
	"tradehub/models"
	"tradehub/repository"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

type AuthService struct {
	sr          repository.SessionRepository
	cr          repository.CartRepository
	nr          repository.NavRepository
	otpDelay    time.Duration
	verifyDelay time.Duration
	strict      bool
}

func NewAuthService(sessionRepo repository.SessionRepository, cartRepo repository.CartRepository, navRepo repository.NavRepository, otpDelay, verifyDelay time.Duration, strict bool) AuthService {
	return AuthService{
		sr:          sessionRepo,
		cr:          cartRepo,
		nr:          navRepo,
		otpDelay:    otpDelay,
		verifyDelay: verifyDelay,
		strict:      strict,
	}
}

// SendOtp issues a 6-digit code for the phone number. The code is only
// logged, never returned to the client; its bcrypt hash is stored with a
// short expiry.
func (as *AuthService) SendOtp(ctx context.Context, phone string) (err error) {
	if !phonePattern.MatchString(phone) {
		log.Printf("SendOtp: phone must be 10 digits")
		err = models.ErrValidation
		return
	}
	err = waitFor(ctx, as.otpDelay)
	if err != nil {
		return
	}
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	var hash string
	hash, err = as.sr.HashCode(code)
	if err != nil {
		return
	}
	err = as.sr.SetOtp(phone, hash)
	if err != nil {
		return
	}
	log.Printf("SendOtp: code %s issued for +91 %s", code, phone)
	return
}

// VerifyOtp checks the submitted code and opens a 24-hour session. In mock
// mode any well-formed code passes, matching the demo behaviour; strict
// mode compares against the stored hash.
func (as *AuthService) VerifyOtp(ctx context.Context, phone string, code string) (sessionId string, err error) {
	if !phonePattern.MatchString(phone) || !otpPattern.MatchString(code) {
		log.Printf("VerifyOtp: malformed phone or code")
		err = models.ErrValidation
		return
	}
	err = waitFor(ctx, as.verifyDelay)
	if err != nil {
		return
	}
	if as.strict {
		hash, exists, e := as.sr.GetOtp(phone)
		if e != nil {
			err = e
			return
		}
		if !exists || !as.sr.VerifyCode(hash, code) {
			log.Printf("VerifyOtp: code rejected")
			err = models.ErrUnautorized
			return
		}
	}
	as.sr.DeleteOtp(phone)
	sessionId, err = as.sr.CreateSession(phone)
	return
}

func (as *AuthService) CheckAuth(sessionId string) (bool, error) {
	autorized, err := as.sr.CheckSession(sessionId)
	return autorized, err
}

func (as *AuthService) Phone(sessionId string) (phone string, exists bool, err error) {
	phone, exists, err = as.sr.GetSessionPhone(sessionId)
	return
}

// Logout drops the session and every piece of transient state tied to it.
// Durable store data (addresses, location) survives.
func (as *AuthService) Logout(sessionId string) (err error) {
	err = as.sr.DeleteSession(sessionId)
	if err != nil {
		return
	}
	err = as.cr.ClearCart(sessionId)
	if err != nil {
		return
	}
	err = as.nr.ClearState(sessionId)
	return
}
