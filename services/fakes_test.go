package services

import (
	"encoding/json"
	"fmt"
	"tradehub/entities"
)

// In-memory stand-ins for the redis and sqlite backed repositories.

type fakeCartRepo struct {
	carts map[string]entities.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]entities.Cart{}}
}

func (f *fakeCartRepo) SetCart(sessionId string, cart entities.Cart) error {
	f.carts[sessionId] = cart
	return nil
}

func (f *fakeCartRepo) GetCart(sessionId string) (entities.Cart, error) {
	cart := f.carts[sessionId]
	items := make([]entities.CartItem, len(cart.Items))
	copy(items, cart.Items)
	if cart.Items == nil {
		items = nil
	}
	return entities.Cart{Items: items}, nil
}

func (f *fakeCartRepo) ClearCart(sessionId string) error {
	delete(f.carts, sessionId)
	return nil
}

type fakeNavRepo struct {
	states map[string]entities.NavState
	orders map[string]entities.OrderSummary
}

func newFakeNavRepo() *fakeNavRepo {
	return &fakeNavRepo{
		states: map[string]entities.NavState{},
		orders: map[string]entities.OrderSummary{},
	}
}

func (f *fakeNavRepo) SetState(sessionId string, state entities.NavState) error {
	f.states[sessionId] = state
	return nil
}

func (f *fakeNavRepo) GetState(sessionId string) (entities.NavState, bool, error) {
	state, ok := f.states[sessionId]
	return state, ok, nil
}

func (f *fakeNavRepo) ClearState(sessionId string) error {
	delete(f.states, sessionId)
	delete(f.orders, sessionId)
	return nil
}

func (f *fakeNavRepo) SetOrder(sessionId string, order entities.OrderSummary) error {
	f.orders[sessionId] = order
	return nil
}

func (f *fakeNavRepo) GetOrder(sessionId string) (entities.OrderSummary, bool, error) {
	order, ok := f.orders[sessionId]
	return order, ok, nil
}

type fakeSessionRepo struct {
	sessions map[string]string
	otps     map[string]string
	nextId   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: map[string]string{},
		otps:     map[string]string{},
	}
}

func (f *fakeSessionRepo) CreateSession(phone string) (string, error) {
	f.nextId++
	sessionId := fmt.Sprintf("session-%d", f.nextId)
	f.sessions[sessionId] = phone
	return sessionId, nil
}

func (f *fakeSessionRepo) CheckSession(sessionId string) (bool, error) {
	_, ok := f.sessions[sessionId]
	return ok, nil
}

func (f *fakeSessionRepo) GetSessionPhone(sessionId string) (string, bool, error) {
	phone, ok := f.sessions[sessionId]
	return phone, ok, nil
}

func (f *fakeSessionRepo) DeleteSession(sessionId string) error {
	delete(f.sessions, sessionId)
	return nil
}

func (f *fakeSessionRepo) SetOtp(phone string, codeHash string) error {
	f.otps[phone] = codeHash
	return nil
}

func (f *fakeSessionRepo) GetOtp(phone string) (string, bool, error) {
	hash, ok := f.otps[phone]
	return hash, ok, nil
}

func (f *fakeSessionRepo) DeleteOtp(phone string) error {
	delete(f.otps, phone)
	return nil
}

func (f *fakeSessionRepo) HashCode(code string) (string, error) {
	return "hash:" + code, nil
}

func (f *fakeSessionRepo) VerifyCode(codeHash string, sentCode string) bool {
	return codeHash == "hash:"+sentCode
}

type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(key string, dest any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeStore) Delete(key string) error {
	delete(f.data, key)
	return nil
}

type fakeAddressRepo struct {
	addrs []entities.Address
}

func (f *fakeAddressRepo) LoadAddresses() ([]entities.Address, error) {
	addrs := make([]entities.Address, len(f.addrs))
	copy(addrs, f.addrs)
	if f.addrs == nil {
		return nil, nil
	}
	return addrs, nil
}

func (f *fakeAddressRepo) SaveAddresses(addrs []entities.Address) error {
	f.addrs = addrs
	return nil
}
