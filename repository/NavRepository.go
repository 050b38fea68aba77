package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"
	"tradehub/entities"
	"tradehub/models"

	"github.com/redis/go-redis/v9"
)

// NavRepository keeps the per-session navigation state and the transient
// order-confirmation payload. Both expire with the login session.
type NavRepository interface {
	SetState(sessionId string, state entities.NavState) (err error)
	GetState(sessionId string) (state entities.NavState, exists bool, err error)
	ClearState(sessionId string) (err error)
	SetOrder(sessionId string, order entities.OrderSummary) (err error)
	GetOrder(sessionId string) (order entities.OrderSummary, exists bool, err error)
}

type NavRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewNavRepository(redis_conn *redis.Client, _ctx context.Context) (NavRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &NavRepo{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (n *NavRepo) SetState(sessionId string, state entities.NavState) (err error) {
	jsonData, err := json.Marshal(state)
	if err != nil {
		log.Printf("SetState: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	err = n.rdb.Set(n.ctx, "nav:"+sessionId, jsonData, 24*time.Hour).Err()
	if err != nil {
		log.Printf("SetState: %v", err)
		err = models.ErrServerError
	}
	return
}

func (n *NavRepo) GetState(sessionId string) (state entities.NavState, exists bool, err error) {
	val, e := n.rdb.Get(n.ctx, "nav:"+sessionId).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetState: %v", e)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), &state)
	if err != nil {
		log.Printf("GetState: Unmarshal err: %v", err)
		err = models.ErrServerError
		return
	}
	exists = true
	return
}

func (n *NavRepo) ClearState(sessionId string) (err error) {
	err = n.rdb.Del(n.ctx, "nav:"+sessionId, "order:"+sessionId).Err()
	if err != nil {
		log.Printf("ClearState: %v", err)
		err = models.ErrServerError
	}
	return
}

func (n *NavRepo) SetOrder(sessionId string, order entities.OrderSummary) (err error) {
	jsonData, err := json.Marshal(order)
	if err != nil {
		log.Printf("SetOrder: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	err = n.rdb.Set(n.ctx, "order:"+sessionId, jsonData, 24*time.Hour).Err()
	if err != nil {
		log.Printf("SetOrder: %v", err)
		err = models.ErrServerError
	}
	return
}

func (n *NavRepo) GetOrder(sessionId string) (order entities.OrderSummary, exists bool, err error) {
	val, e := n.rdb.Get(n.ctx, "order:"+sessionId).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetOrder: %v", e)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), &order)
	if err != nil {
		log.Printf("GetOrder: Unmarshal err: %v", err)
		err = models.ErrServerError
		return
	}
	exists = true
	return
}
