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

type CartRepository interface {
	SetCart(sessionId string, cart entities.Cart) (err error)
	GetCart(sessionId string) (res entities.Cart, err error)
	ClearCart(sessionId string) (err error)
}

type CartRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewCartRepository(redis_conn *redis.Client, _ctx context.Context) (CartRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &CartRepo{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (c *CartRepo) SetCart(sessionId string, cart entities.Cart) (err error) {
	jsonData, err := json.Marshal(cart)
	if err != nil {
		log.Printf("SetCart: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	err = c.rdb.Set(c.ctx, "cart:"+sessionId, jsonData, 24*time.Hour).Err()
	if err != nil {
		log.Printf("SetCart: %v", err)
		err = models.ErrServerError
	}
	return
}

func (c *CartRepo) GetCart(sessionId string) (res entities.Cart, err error) {
	res = entities.Cart{}
	val, e := c.rdb.Get(c.ctx, "cart:"+sessionId).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetCart: %v", e)
		err = models.ErrServerError
		return
	}
	err = json.Unmarshal([]byte(val), &res)
	if err != nil {
		log.Printf("GetCart: Unmarshal err: %v", err)
		err = models.ErrServerError
	}
	return
}

func (c *CartRepo) ClearCart(sessionId string) (err error) {
	err = c.rdb.Del(c.ctx, "cart:"+sessionId).Err()
	if err != nil {
		log.Printf("ClearCart: %v", err)
		err = models.ErrServerError
	}
	return
}
