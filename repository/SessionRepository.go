package repository

import (
	"context"
	"errors"
	"log"
	"time"
	"tradehub/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Login sessions are valid for 24 hours from login time.
const SessionTTL = 24 * time.Hour

const otpTTL = 5 * time.Minute

type SessionRepository interface {
	CreateSession(phone string) (sessionId string, err error)
	CheckSession(sessionId string) (bool, error)
	GetSessionPhone(sessionId string) (phone string, exists bool, err error)
	DeleteSession(sessionId string) (err error)
	SetOtp(phone string, codeHash string) (err error)
	GetOtp(phone string) (codeHash string, exists bool, err error)
	DeleteOtp(phone string) (err error)
	HashCode(code string) (codeHash string, err error)
	VerifyCode(codeHash string, sentCode string) bool
}

type SessionRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSessionRepository(redis_conn *redis.Client, _ctx context.Context) (SessionRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &SessionRepo{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (s *SessionRepo) CreateSession(phone string) (sessionId string, err error) {
	sessionId = uuid.NewString()
	err = s.rdb.HSet(s.ctx, sessionId, "phone", phone, "loginTime", time.Now().UnixMilli()).Err()
	if err != nil {
		log.Printf("CreateSession: %v", err)
		err = models.ErrServerError
		return
	}
	s.rdb.Expire(s.ctx, sessionId, SessionTTL)
	return
}

func (s *SessionRepo) CheckSession(sessionId string) (bool, error) {
	exists, err := s.rdb.Exists(s.ctx, sessionId).Result()
	if err != nil {
		log.Printf("CheckSession: %v", err)
		err = models.ErrServerError
		return false, err
	}
	if exists > 0 {
		return true, nil
	}
	return false, nil
}

func (s *SessionRepo) GetSessionPhone(sessionId string) (phone string, exists bool, err error) {
	exists, err = s.CheckSession(sessionId)
	if err != nil || !exists {
		return
	}

	val, err := s.rdb.HGetAll(s.ctx, sessionId).Result()
	if err != nil {
		log.Printf("GetSessionPhone: %v", err)
		err = models.ErrServerError
		return
	}
	phone = val["phone"]
	exists = true
	return
}

func (s *SessionRepo) DeleteSession(sessionId string) (err error) {
	err = s.rdb.Del(s.ctx, sessionId).Err()
	if err != nil {
		log.Printf("DeleteSession: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *SessionRepo) SetOtp(phone string, codeHash string) (err error) {
	err = s.rdb.Set(s.ctx, "otp:"+phone, codeHash, otpTTL).Err()
	if err != nil {
		log.Printf("SetOtp: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *SessionRepo) GetOtp(phone string) (codeHash string, exists bool, err error) {
	val, e := s.rdb.Get(s.ctx, "otp:"+phone).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetOtp: %v", e)
		err = models.ErrServerError
		return
	}
	codeHash = val
	exists = true
	return
}

func (s *SessionRepo) DeleteOtp(phone string) (err error) {
	err = s.rdb.Del(s.ctx, "otp:"+phone).Err()
	if err != nil {
		log.Printf("DeleteOtp: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *SessionRepo) HashCode(code string) (codeHash string, err error) {
	var hashed []byte
	hashed, err = bcrypt.GenerateFromPassword([]byte(code), 8)
	if err != nil {
		log.Printf("HashCode: %v", err)
		err = models.ErrServerError
		return
	}
	codeHash = string(hashed)
	return
}

func (s *SessionRepo) VerifyCode(codeHash string, sentCode string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(codeHash), []byte(sentCode))
	if err != nil {
		log.Printf("VerifyCode: %v", err)
	}
	return err == nil
}
